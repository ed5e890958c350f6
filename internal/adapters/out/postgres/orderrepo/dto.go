// Package orderrepo persists the order aggregate with GORM. Statuses are stored by
// their canonical names so the table stays readable without the Go enum.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	DriverID         *uuid.UUID      `gorm:"type:uuid;index"`
	Status           string          `gorm:"type:varchar(16);not null;index"`
	Price            decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PickupLocation   string          `gorm:"type:varchar(255);not null"`
	DeliveryLocation string          `gorm:"type:varchar(255);not null"`
	Rating           *int            `gorm:"type:smallint"`
	CreatedAt        time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt        time.Time       `gorm:"not null;autoUpdateTime:false"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := o.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var rating *int
	if r := o.Rating(); r != nil {
		value := r.Value()
		rating = &value
	}

	return OrderDTO{
		ID:               o.ID().Bytes(),
		CustomerID:       o.CustomerID().Bytes(),
		DriverID:         driverID,
		Status:           o.Status().String(),
		Price:            o.Price().Decimal(),
		PickupLocation:   o.PickupLocation().String(),
		DeliveryLocation: o.DeliveryLocation().String(),
		Rating:           rating,
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
	}
}

// mutableColumns lists what a lifecycle operation may change. Update writes exactly
// these, including NULLs, which a struct based gorm update would skip.
func (dto OrderDTO) mutableColumns() map[string]any {
	return map[string]any{
		"driver_id":  dto.DriverID,
		"status":     dto.Status,
		"rating":     dto.Rating,
		"updated_at": dto.UpdatedAt,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromGoogle(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromGoogle(*dto.DriverID)
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	pickup, err := kernel.NewAddress("pickupLocation", dto.PickupLocation)
	if err != nil {
		return nil, err
	}
	delivery, err := kernel.NewAddress("deliveryLocation", dto.DeliveryLocation)
	if err != nil {
		return nil, err
	}

	var rating *kernel.Rating
	if dto.Rating != nil {
		r, ratingErr := kernel.NewRating(*dto.Rating)
		if ratingErr != nil {
			return nil, ratingErr
		}
		rating = &r
	}

	return order.RestoreOrder(order.Snapshot{
		ID:               id,
		CustomerID:       customerID,
		DriverID:         driverID,
		Status:           status,
		Price:            price,
		PickupLocation:   pickup,
		DeliveryLocation: delivery,
		Rating:           rating,
		CreatedAt:        dto.CreatedAt,
		UpdatedAt:        dto.UpdatedAt,
	})
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
