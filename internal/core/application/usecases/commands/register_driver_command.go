package commands

import (
	"errors"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
	"logistics/internal/pkg/password"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand opens a driver account. New drivers wait for an admin to
// verify their documents before they can be assigned.
type RegisterDriverCommand struct {
	driverID kernel.UUID
	name     kernel.Name
	email    kernel.Email
	phone    kernel.Phone
	vehicle  driver.Vehicle
	password string

	guard guard.ConstructorGuard
}

func NewRegisterDriverCommand(
	driverID kernel.UUID,
	name, email, phone, vehicle, plainPassword string,
) (RegisterDriverCommand, error) {
	n, nameErr := kernel.NewName(name)
	e, emailErr := kernel.NewEmail(email)
	p, phoneErr := kernel.NewPhone(phone)
	v, vehicleErr := driver.ParseVehicle(vehicle)

	if err := errors.Join(
		driverID.Validate(),
		nameErr,
		emailErr,
		phoneErr,
		vehicleErr,
		password.Validate(plainPassword),
	); err != nil {
		return RegisterDriverCommand{}, err
	}

	return RegisterDriverCommand{
		driverID: driverID,
		name:     n,
		email:    e,
		phone:    p,
		vehicle:  v,
		password: plainPassword,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) DriverID() kernel.UUID   { return c.driverID }
func (c RegisterDriverCommand) Name() kernel.Name       { return c.name }
func (c RegisterDriverCommand) Email() kernel.Email     { return c.email }
func (c RegisterDriverCommand) Phone() kernel.Phone     { return c.phone }
func (c RegisterDriverCommand) Vehicle() driver.Vehicle { return c.vehicle }
func (c RegisterDriverCommand) Password() string        { return c.password }
