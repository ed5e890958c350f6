package commands

import (
	"context"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

type VerifyDriverDocumentsCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewVerifyDriverDocumentsCommandHandler(uowFactory DriverUoWFactory) VerifyDriverDocumentsCommandHandler {
	return VerifyDriverDocumentsCommandHandler{uowFactory: uowFactory}
}

func (h VerifyDriverDocumentsCommandHandler) Handle(ctx context.Context, command VerifyDriverDocumentsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	return changeDriver(ctx, h.uowFactory, command.Actor(), command.DriverID(), func(d *driver.Driver) error {
		d.VerifyDocuments()
		return nil
	})
}

// changeDriver loads a driver, applies an admin change and writes it back in one
// unit of work.
func changeDriver(
	ctx context.Context,
	uowFactory DriverUoWFactory,
	actor auth.Actor,
	driverID kernel.UUID,
	change func(*driver.Driver) error,
) error {
	if err := actor.RequireRole(auth.RoleAdmin); err != nil {
		return err
	}

	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DriverRepository()

	d, err := repo.Get(ctx, driverID)
	if err != nil {
		return err
	}

	if err = change(d); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
