package orderrepo

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormOrderReader implements ports.OrderReader outside of any transaction.
type GormOrderReader struct {
	db *gorm.DB
}

func NewGormOrderReader(db *gorm.DB) *GormOrderReader {
	return &GormOrderReader{db: db}
}

func (r *GormOrderReader) FindOrders(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, error) {
	tx := r.db.WithContext(ctx).Model(&OrderDTO{})
	if filter.CustomerID != nil {
		tx = tx.Where("customer_id = ?", filter.CustomerID.Bytes())
	}
	if filter.DriverID != nil {
		tx = tx.Where("driver_id = ?", filter.DriverID.Bytes())
	}
	if len(filter.Statuses) > 0 {
		tx = tx.Where("status = ANY(?)", statusNames(filter.Statuses))
	}

	var dtos []OrderDTO
	if err := tx.Order("created_at DESC, id DESC").Find(&dtos).Error; err != nil {
		return nil, errs.NewStoreUnavailableError("find orders", err)
	}

	return toDomainList(dtos)
}

func (r *GormOrderReader) GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return getOrder(ctx, r.db, id)
}

func (r *GormOrderReader) CountOrdersByStatus(ctx context.Context) (map[order.Status]int, error) {
	var rows []struct {
		Status string
		Total  int
	}
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, errs.NewStoreUnavailableError("count orders", err)
	}

	counts := make(map[order.Status]int, len(rows))
	for _, row := range rows {
		status, parseErr := order.ParseStatus(row.Status)
		if parseErr != nil {
			return nil, parseErr
		}
		counts[status] = row.Total
	}
	return counts, nil
}

func (r *GormOrderReader) CompletedRevenue(ctx context.Context) (kernel.Money, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Select("COALESCE(SUM(price), 0)").
		Where("status = ?", order.Completed.String()).
		Row().Scan(&total)
	if err != nil {
		return kernel.Money{}, errs.NewStoreUnavailableError("sum completed revenue", err)
	}
	return kernel.NewMoney(total)
}

func statusNames(statuses []order.Status) pq.StringArray {
	names := make(pq.StringArray, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}
