package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/errs"
)

// RegisterCustomerCommandHandler creates an Active customer. A taken email is a conflict.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	hasher     ports.PasswordHasher
}

func NewRegisterCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	hasher ports.PasswordHasher,
) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, command RegisterCustomerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(command.Password())
	if err != nil {
		return err
	}

	c, err := customer.NewCustomer(
		command.CustomerID(),
		command.Name(),
		command.Email(),
		command.Phone(),
		command.Address(),
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

	repo := uow.CustomerRepository()

	_, err = repo.GetByEmail(ctx, command.Email())
	switch {
	case err == nil:
		return errs.NewConflictError("email", command.Email().String())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = repo.Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
