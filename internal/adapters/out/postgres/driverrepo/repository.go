package driverrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormDriverRepository struct {
	db *gorm.DB
}

func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("email", aggregate.Email().String(), err)
		}
		return errs.NewStoreUnavailableError("add driver", err)
	}

	aggregate.MarkPersisted()
	return nil
}

// Update is guarded on the status, verification flag and rating count the driver
// was loaded with. Two ratings folded in concurrently therefore cannot both land.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Where("status = ?", aggregate.PersistedStatus().String()).
		Where("documents_verified = ?", aggregate.PersistedDocumentsVerified()).
		Where("rating_count = ?", aggregate.PersistedRatingCount()).
		Updates(dto.mutableColumns())
	if result.Error != nil {
		return errs.NewStoreUnavailableError("update driver", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&DriverDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return errs.NewStoreUnavailableError("update driver", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("driverId", aggregate.ID().String())
		}
		return errs.NewConflictError("driverId", aggregate.ID().String())
	}

	aggregate.MarkPersisted()
	return nil
}

func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	return getDriver(ctx, r.db, id)
}

func (r *GormDriverRepository) GetByEmail(ctx context.Context, email kernel.Email) (*driver.Driver, error) {
	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email.String())
		}
		return nil, errs.NewStoreUnavailableError("get driver by email", err)
	}
	return toDomain(dto)
}

// GetAllFreeEligible returns Active, verified drivers with no Assigned or
// InProgress order.
func (r *GormDriverRepository) GetAllFreeEligible(ctx context.Context) ([]*driver.Driver, error) {
	busy := r.db.Table("orders").
		Select("1").
		Where("orders.driver_id = drivers.id").
		Where("orders.status IN ?", []string{order.Assigned.String(), order.InProgress.String()})

	var dtos []DriverDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND documents_verified", driver.StatusActive.String()).
		Where("NOT EXISTS (?)", busy).
		Order("created_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError("get free drivers", err)
	}

	return toDomainList(dtos)
}

func getDriver(ctx context.Context, db *gorm.DB, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driverId", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get driver", err)
	}
	return toDomain(dto)
}
