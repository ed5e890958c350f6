package commands

import (
	"context"

	"logistics/internal/core/domain/model/driver"
)

type SetDriverStatusCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewSetDriverStatusCommandHandler(uowFactory DriverUoWFactory) SetDriverStatusCommandHandler {
	return SetDriverStatusCommandHandler{uowFactory: uowFactory}
}

func (h SetDriverStatusCommandHandler) Handle(ctx context.Context, command SetDriverStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}
	return changeDriver(ctx, h.uowFactory, command.Actor(), command.DriverID(), func(d *driver.Driver) error {
		return d.ChangeStatus(command.Status())
	})
}
