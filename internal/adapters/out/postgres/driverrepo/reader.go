package driverrepo

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GormDriverReader struct {
	db *gorm.DB
}

func NewGormDriverReader(db *gorm.DB) *GormDriverReader {
	return &GormDriverReader{db: db}
}

func (r *GormDriverReader) FindDrivers(ctx context.Context, filter ports.DriverFilter) ([]*driver.Driver, error) {
	tx := r.db.WithContext(ctx).Model(&DriverDTO{})
	if len(filter.Statuses) > 0 {
		names := make(pq.StringArray, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			names = append(names, s.String())
		}
		tx = tx.Where("status = ANY(?)", names)
	}
	if filter.Verified != nil {
		tx = tx.Where("documents_verified = ?", *filter.Verified)
	}

	var dtos []DriverDTO
	if err := tx.Order("created_at DESC, id DESC").Find(&dtos).Error; err != nil {
		return nil, errs.NewStoreUnavailableError("find drivers", err)
	}
	return toDomainList(dtos)
}

func (r *GormDriverReader) GetDriver(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	return getDriver(ctx, r.db, id)
}

func (r *GormDriverReader) CountDriversByStatus(ctx context.Context) (map[driver.Status]int, error) {
	var rows []struct {
		Status string
		Total  int
	}
	err := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError("count drivers", err)
	}

	counts := make(map[driver.Status]int, len(rows))
	for _, row := range rows {
		status, parseErr := driver.ParseStatus(row.Status)
		if parseErr != nil {
			return nil, parseErr
		}
		counts[status] = row.Total
	}
	return counts, nil
}
