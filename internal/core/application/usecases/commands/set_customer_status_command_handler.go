package commands

import (
	"context"

	"logistics/internal/core/application/auth"
)

type SetCustomerStatusCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewSetCustomerStatusCommandHandler(uowFactory CustomerUoWFactory) SetCustomerStatusCommandHandler {
	return SetCustomerStatusCommandHandler{uowFactory: uowFactory}
}

func (h SetCustomerStatusCommandHandler) Handle(ctx context.Context, command SetCustomerStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	if err := command.Actor().RequireRole(auth.RoleAdmin); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()

	c, err := repo.Get(ctx, command.CustomerID())
	if err != nil {
		return err
	}

	if err = c.ChangeStatus(command.Status()); err != nil {
		return err
	}

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
