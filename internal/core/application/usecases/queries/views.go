// Package queries holds the read side of the application. Each query has a handler
// that loads aggregates through a reader port and returns flat views, so callers never
// see password hashes or the guarded write state of an aggregate.
package queries

import (
	"time"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

type OrderView struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	DriverID         *kernel.UUID
	Status           string
	Price            kernel.Money
	PickupLocation   string
	DeliveryLocation string
	Rating           *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func newOrderView(o *order.Order) OrderView {
	v := OrderView{
		ID:               o.ID(),
		CustomerID:       o.CustomerID(),
		DriverID:         o.DriverID(),
		Status:           o.Status().String(),
		Price:            o.Price(),
		PickupLocation:   o.PickupLocation().String(),
		DeliveryLocation: o.DeliveryLocation().String(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
	}
	if r := o.Rating(); r != nil {
		value := r.Value()
		v.Rating = &value
	}
	return v
}

// DriverView is a driver without credentials. Rating is the derived average.
type DriverView struct {
	ID                kernel.UUID
	Name              string
	Email             string
	Phone             string
	Vehicle           string
	Status            string
	DocumentsVerified bool
	Eligible          bool
	Rating            float64
	RatingCount       int
	CreatedAt         time.Time
}

func newDriverView(d *driver.Driver) DriverView {
	return DriverView{
		ID:                d.ID(),
		Name:              d.Name().String(),
		Email:             d.Email().String(),
		Phone:             d.Phone().String(),
		Vehicle:           d.Vehicle().String(),
		Status:            d.Status().String(),
		DocumentsVerified: d.DocumentsVerified(),
		Eligible:          d.IsEligible(),
		Rating:            d.Rating().Average(),
		RatingCount:       d.Rating().Count(),
		CreatedAt:         d.CreatedAt(),
	}
}

type CustomerView struct {
	ID        kernel.UUID
	Name      string
	Email     string
	Phone     string
	Address   string
	Status    string
	CreatedAt time.Time
}

func newCustomerView(c *customer.Customer) CustomerView {
	return CustomerView{
		ID:        c.ID(),
		Name:      c.Name().String(),
		Email:     c.Email().String(),
		Phone:     c.Phone().String(),
		Address:   c.Address().String(),
		Status:    c.Status().String(),
		CreatedAt: c.CreatedAt(),
	}
}
