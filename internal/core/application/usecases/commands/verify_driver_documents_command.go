package commands

import (
	"errors"

	"logistics/internal/core/application/auth"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrVerifyDriverDocumentsCommandIsNotConstructed = errors.New(
	"VerifyDriverDocumentsCommand must be created via NewVerifyDriverDocumentsCommand constructor",
)

// VerifyDriverDocumentsCommand marks a driver's documents as checked. Admin only.
type VerifyDriverDocumentsCommand struct {
	actor    auth.Actor
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

func NewVerifyDriverDocumentsCommand(actor auth.Actor, driverID kernel.UUID) (VerifyDriverDocumentsCommand, error) {
	if err := wrapRequired("driverId", driverID.Validate()); err != nil {
		return VerifyDriverDocumentsCommand{}, err
	}
	return VerifyDriverDocumentsCommand{
		actor:    actor,
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c VerifyDriverDocumentsCommand) Validate() error {
	return c.guard.Validate(ErrVerifyDriverDocumentsCommandIsNotConstructed)
}

func (c VerifyDriverDocumentsCommand) Actor() auth.Actor     { return c.actor }
func (c VerifyDriverDocumentsCommand) DriverID() kernel.UUID { return c.driverID }
