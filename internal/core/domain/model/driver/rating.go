package driver

import (
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// RatingSummary is the canonical form of a driver's rating: the number of rated trips
// and the sum of their ratings. The average is derived on read, so repeated updates
// never accumulate rounding error.
type RatingSummary struct {
	count int
	sum   int
}

// NewRatingSummary rebuilds a summary from stored counters. sum must lie within the
// range reachable with count ratings of 1..5.
func NewRatingSummary(count, sum int) (RatingSummary, error) {
	if count < 0 {
		return RatingSummary{}, errs.NewValueIsOutOfRangeError("rating count", count, 0, "unbounded")
	}
	if sum < count*kernel.MinRating || sum > count*kernel.MaxRating {
		return RatingSummary{}, errs.NewValueIsInvalidErrorWithCause("rating sum",
			fmt.Errorf("%d is not reachable with %d ratings", sum, count))
	}
	return RatingSummary{count: count, sum: sum}, nil
}

func (r RatingSummary) Count() int { return r.count }
func (r RatingSummary) Sum() int   { return r.sum }

// Average returns sum/count, or 0 for a driver without ratings.
func (r RatingSummary) Average() float64 {
	if r.count == 0 {
		return 0
	}
	return float64(r.sum) / float64(r.count)
}

// Add returns the summary with one more rating folded in.
func (r RatingSummary) Add(rating kernel.Rating) RatingSummary {
	return RatingSummary{count: r.count + 1, sum: r.sum + rating.Value()}
}
