// Package driverrepo persists drivers with GORM. The rating is stored as its
// canonical count and sum; the average is derived when read.
package driverrepo

import (
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DriverDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(100);not null"`
	Email             string    `gorm:"type:varchar(254);not null;uniqueIndex"`
	Phone             string    `gorm:"type:varchar(32);not null"`
	PasswordHash      string    `gorm:"type:varchar(100);not null"`
	Vehicle           string    `gorm:"type:varchar(16);not null"`
	Status            string    `gorm:"type:varchar(16);not null;index"`
	DocumentsVerified bool      `gorm:"not null;default:false"`
	RatingCount       int       `gorm:"not null;default:0"`
	RatingSum         int       `gorm:"not null;default:0"`
	CreatedAt         time.Time `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt         time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:                d.ID().Bytes(),
		Name:              d.Name().String(),
		Email:             d.Email().String(),
		Phone:             d.Phone().String(),
		PasswordHash:      d.PasswordHash(),
		Vehicle:           d.Vehicle().String(),
		Status:            d.Status().String(),
		DocumentsVerified: d.DocumentsVerified(),
		RatingCount:       d.Rating().Count(),
		RatingSum:         d.Rating().Sum(),
		CreatedAt:         d.CreatedAt(),
		UpdatedAt:         d.UpdatedAt(),
	}
}

func (dto DriverDTO) mutableColumns() map[string]any {
	return map[string]any{
		"status":             dto.Status,
		"documents_verified": dto.DocumentsVerified,
		"rating_count":       dto.RatingCount,
		"rating_sum":         dto.RatingSum,
		"updated_at":         dto.UpdatedAt,
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
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
	vehicle, err := driver.ParseVehicle(dto.Vehicle)
	if err != nil {
		return nil, err
	}
	status, err := driver.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	rating, err := driver.NewRatingSummary(dto.RatingCount, dto.RatingSum)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(driver.Snapshot{
		ID:                id,
		Name:              name,
		Email:             email,
		Phone:             phone,
		PasswordHash:      dto.PasswordHash,
		Vehicle:           vehicle,
		Status:            status,
		DocumentsVerified: dto.DocumentsVerified,
		Rating:            rating,
		CreatedAt:         dto.CreatedAt,
		UpdatedAt:         dto.UpdatedAt,
	})
}

func toDomainList(dtos []DriverDTO) ([]*driver.Driver, error) {
	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, nil
}
