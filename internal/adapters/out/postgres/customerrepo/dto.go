// Package customerrepo persists customers with GORM.
package customerrepo

import (
	"time"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CustomerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(254);not null;uniqueIndex"`
	Phone        string    `gorm:"type:varchar(32);not null"`
	Address      string    `gorm:"type:varchar(255);not null"`
	PasswordHash string    `gorm:"type:varchar(100);not null"`
	Status       string    `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           c.ID().Bytes(),
		Name:         c.Name().String(),
		Email:        c.Email().String(),
		Phone:        c.Phone().String(),
		Address:      c.Address().String(),
		PasswordHash: c.PasswordHash(),
		Status:       c.Status().String(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	name, err := kernel.NewName(dto.Name)
	if err != nil {
		return nil, err
	}
	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}
	phone, err := kernel.NewPhone(dto.Phone)
	if err != nil {
		return nil, err
	}
	address, err := kernel.NewAddress("address", dto.Address)
	if err != nil {
		return nil, err
	}
	status, err := customer.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(customer.Snapshot{
		ID:           id,
		Name:         name,
		Email:        email,
		Phone:        phone,
		Address:      address,
		PasswordHash: dto.PasswordHash,
		Status:       status,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	})
}
