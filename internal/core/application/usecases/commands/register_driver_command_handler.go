package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// RegisterDriverCommandHandler creates an Active, unverified driver.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterDriverCommandHandler(
	uowFactory DriverUoWFactory,
	hasher ports.PasswordHasher,
) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

func (h RegisterDriverCommandHandler) Handle(ctx context.Context, command RegisterDriverCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(command.Password())
	if err != nil {
		return err
	}

	d, err := driver.NewDriver(
		command.DriverID(),
		command.Name(),
		command.Email(),
		command.Phone(),
		command.Vehicle(),
		hash,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DriverRepository()

	_, err = repo.GetByEmail(ctx, command.Email())
	switch {
	case err == nil:
		return errs.NewConflictError("email", command.Email().String())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = repo.Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
