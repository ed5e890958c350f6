package ports

import (
	"context"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer. A taken email is reported as errs.ConflictError.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update writes the customer only if the stored status still equals PersistedStatus.
	Update(ctx context.Context, aggregate *customer.Customer) error

	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error)
}
