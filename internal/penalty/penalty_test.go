package penalty

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestClosingHour(t *testing.T) {
	tests := []struct {
		name string
		log  string
		want Result
	}{
		{"empty", "", Result{0, 0}},
		{"sample", "YNNYYNY", Result{Hour: 1, Penalty: 3}},
		{"all yes stays open", "YYYY", Result{Hour: 4, Penalty: 0}},
		{"all no closes at once", "NNNN", Result{Hour: 0, Penalty: 0}},
		{"leetcode example", "YYNY", Result{Hour: 2, Penalty: 1}},
		{"tie keeps earliest", "YN", Result{Hour: 1, Penalty: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BestClosingHour(tt.log)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBestClosingHour_Brute(t *testing.T) {
	for _, log := range []string{"Y", "N", "NY", "YNYNNY", "NNYYNYYN", "YYNNYYNN"} {
		got, err := BestClosingHour(log)
		require.NoError(t, err)
		assert.Equal(t, bruteForce(log), got, "log %q", log)
	}
}

func TestBestClosingHour_InvalidMarker(t *testing.T) {
	_, err := BestClosingHour("YNx")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRequest))
	assert.Contains(t, err.Error(), "position 2")

	_, err = BestClosingHour("yn")
	assert.True(t, errors.Is(err, ErrInvalidRequest))
}

func bruteForce(log string) Result {
	best := Result{Hour: -1}
	for k := 0; k <= len(log); k++ {
		p := 0
		for i := 0; i < len(log); i++ {
			if i < k && log[i] == 'N' {
				p++
			}
			if i >= k && log[i] == 'Y' {
				p++
			}
		}
		if best.Hour < 0 || p < best.Penalty {
			best = Result{Hour: k, Penalty: p}
		}
	}
	return best
}
