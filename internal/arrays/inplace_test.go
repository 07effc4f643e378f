package arrays

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveZeroes(t *testing.T) {
	tests := []struct {
		name string
		nums []int
		want []int
	}{
		{"empty", []int{}, []int{}},
		{"no zeroes", []int{1, 2, 3}, []int{1, 2, 3}},
		{"only zeroes", []int{0, 0}, []int{0, 0}},
		{"classic", []int{0, 1, 0, 3, 12}, []int{1, 3, 12, 0, 0}},
		{"zero at end", []int{4, -2, 0}, []int{4, -2, 0}},
		{"leading zeroes", []int{0, 0, 5, -1}, []int{5, -1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			MoveZeroes(tt.nums)
			assert.Equal(t, tt.want, tt.nums)
		})
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name string
		nums []int
		want []int
	}{
		{"empty", []int{}, []int{}},
		{"single", []int{1}, []int{1}},
		{"even", []int{1, 2, 3, 4}, []int{4, 3, 2, 1}},
		{"odd", []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, []int{9, 8, 7, 6, 5, 4, 3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reverse(tt.nums)
			assert.Equal(t, tt.want, tt.nums)
		})
	}
}
