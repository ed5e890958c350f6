package ports

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver. A taken email is reported as errs.ConflictError.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update writes the driver only if the stored status, documents flag and rating
	// count still equal the aggregate's persisted state; otherwise errs.ConflictError.
	Update(ctx context.Context, aggregate *driver.Driver) error

	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	GetByEmail(ctx context.Context, email kernel.Email) (*driver.Driver, error)

	// GetAllFreeEligible returns Active, verified drivers that hold no Assigned
	// or InProgress order.
	GetAllFreeEligible(ctx context.Context) ([]*driver.Driver, error)
}
