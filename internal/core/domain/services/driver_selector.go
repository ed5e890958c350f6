package services

import (
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/order"
)

// ErrDriverNotFound is returned when none of the candidates can take the order.
var ErrDriverNotFound = errors.New("no eligible driver available")

// DriverSelector picks a driver for a Pending order and assigns it.
//
// Candidates are expected to be free, meaning they hold no Assigned or InProgress order;
// the repository query that loads them enforces that. Among eligible candidates the
// selector prefers the highest average rating, then the larger number of rated trips,
// then the earliest registration, so that the choice is deterministic.
//
// Example usage:
//
//	selector := services.NewDriverSelector()
//	chosen, err := selector.Dispatch(pendingOrder, freeDrivers)
//	if errors.Is(err, services.ErrDriverNotFound) {
//	    // leave the order Pending until the next run
//	}
type DriverSelector struct{}

func NewDriverSelector() DriverSelector {
	return DriverSelector{}
}

// Dispatch assigns the best candidate to o and returns it. The order is left unchanged
// on any error.
func (s DriverSelector) Dispatch(o *order.Order, candidates []*driver.Driver) (*driver.Driver, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if _, err := o.Status().Assign(); err != nil {
		return nil, err
	}

	best, err := s.findBest(candidates)
	if err != nil {
		return nil, err
	}

	if err := o.Assign(best.ID()); err != nil {
		return nil, err
	}
	return best, nil
}

func (s DriverSelector) findBest(candidates []*driver.Driver) (*driver.Driver, error) {
	var best *driver.Driver

	for _, d := range candidates {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if !d.IsEligible() {
			continue
		}
		if best == nil || better(d, best) {
			best = d
		}
	}

	if best == nil {
		return nil, ErrDriverNotFound
	}
	return best, nil
}

func better(a, b *driver.Driver) bool {
	ra, rb := a.Rating(), b.Rating()
	if ra.Average() != rb.Average() {
		return ra.Average() > rb.Average()
	}
	if ra.Count() != rb.Count() {
		return ra.Count() > rb.Count()
	}
	return a.CreatedAt().Before(b.CreatedAt())
}
