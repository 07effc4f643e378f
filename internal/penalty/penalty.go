// Package penalty picks the hour at which to close a shop given a log of
// whether customers arrived each hour.
//
// The log is a string of 'Y' (a customer came) and 'N' (nobody came).
// Closing at hour k costs one for every 'N' before k (open and idle) and one
// for every 'Y' at or after k (closed while customers arrive).
package penalty

import (
	"errors"
	"fmt"

	"drillbook/internal/logging"
)

// ErrInvalidRequest is returned for log characters other than 'Y' and 'N'.
var ErrInvalidRequest = errors.New("invalid request marker")

// Result is the earliest hour with the minimum penalty.
type Result struct {
	Hour    int `json:"hour" yaml:"hour"`
	Penalty int `json:"penalty" yaml:"penalty"`
}

// BestClosingHour scans the log once to count arrivals, then walks it again
// keeping the running penalty of closing after each hour. Ties resolve to
// the earliest hour.
func BestClosingHour(log string) (Result, error) {
	arrivals := 0
	for i := 0; i < len(log); i++ {
		switch log[i] {
		case 'Y':
			arrivals++
		case 'N':
		default:
			return Result{}, fmt.Errorf("%w %q at position %d", ErrInvalidRequest, log[i], i)
		}
	}

	best := Result{Hour: 0, Penalty: arrivals}
	current := arrivals
	for i := 0; i < len(log); i++ {
		if log[i] == 'Y' {
			current--
		} else {
			current++
		}
		if current < best.Penalty {
			best = Result{Hour: i + 1, Penalty: current}
		}
	}

	logging.Get(logging.CategoryPenalty).Debug("best closing hour %d of %d (penalty %d)", best.Hour, len(log), best.Penalty)
	return best, nil
}
