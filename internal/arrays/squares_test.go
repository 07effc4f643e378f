package arrays

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedSquares(t *testing.T) {
	tests := []struct {
		name string
		nums []int
		want []int
	}{
		{"empty", []int{}, []int{}},
		{"single negative", []int{-3}, []int{9}},
		{"single zero", []int{0}, []int{0}},
		{"mixed", []int{-4, -1, 0, 3, 10}, []int{0, 1, 9, 16, 100}},
		{"all negative", []int{-7, -3, -1}, []int{1, 9, 49}},
		{"all positive", []int{1, 2, 3}, []int{1, 4, 9}},
		{"equal magnitudes", []int{-2, -2, 2, 2}, []int{4, 4, 4, 4}},
		{"left heavy", []int{-7, -3, 2, 3, 11}, []int{4, 9, 9, 49, 121}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SortedSquares(tt.nums))
		})
	}
}

func TestSortedSquares_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 200; round++ {
		nums := make([]int, rng.Intn(40))
		for i := range nums {
			nums[i] = rng.Intn(201) - 100
		}
		sort.Ints(nums)

		got := SortedSquares(nums)

		assert.True(t, sort.IntsAreSorted(got), "not sorted: %v", got)

		want := make([]int, len(nums))
		for i, v := range nums {
			want[i] = v * v
		}
		assert.ElementsMatch(t, want, got, "input %v", nums)
	}
}
