package customerrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("email", aggregate.Email().String(), err)
		}
		return errs.NewStoreUnavailableError("add customer", err)
	}

	aggregate.MarkPersisted()
	return nil
}

// Update is guarded on the status the customer was loaded with.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).
		Where("id = ? AND status = ?", dto.ID, aggregate.PersistedStatus().String()).
		Updates(map[string]any{"status": dto.Status, "updated_at": dto.UpdatedAt})
	if result.Error != nil {
		return errs.NewStoreUnavailableError("update customer", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&CustomerDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return errs.NewStoreUnavailableError("update customer", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("customerId", aggregate.ID().String())
		}
		return errs.NewConflictError("customerId", aggregate.ID().String())
	}

	aggregate.MarkPersisted()
	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerId", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get customer", err)
	}
	return toDomain(dto)
}

func (r *GormCustomerRepository) GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email.String())
		}
		return nil, errs.NewStoreUnavailableError("get customer by email", err)
	}
	return toDomain(dto)
}

// GormCustomerReader implements ports.CustomerReader.
type GormCustomerReader struct {
	db *gorm.DB
}

func NewGormCustomerReader(db *gorm.DB) *GormCustomerReader {
	return &GormCustomerReader{db: db}
}

func (r *GormCustomerReader) FindCustomers(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&dtos).Error; err != nil {
		return nil, errs.NewStoreUnavailableError("find customers", err)
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func (r *GormCustomerReader) CountCustomers(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&CustomerDTO{}).Count(&count).Error; err != nil {
		return 0, errs.NewStoreUnavailableError("count customers", err)
	}
	return int(count), nil
}
