package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
	"logistics/internal/pkg/password"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand opens a customer account.
type RegisterCustomerCommand struct {
	customerID kernel.UUID
	name       kernel.Name
	email      kernel.Email
	phone      kernel.Phone
	address    kernel.Address
	password   string

	guard guard.ConstructorGuard
}

func NewRegisterCustomerCommand(
	customerID kernel.UUID,
	name, email, phone, address, plainPassword string,
) (RegisterCustomerCommand, error) {
	n, nameErr := kernel.NewName(name)
	e, emailErr := kernel.NewEmail(email)
	p, phoneErr := kernel.NewPhone(phone)
	a, addressErr := kernel.NewAddress("address", address)

	if err := errors.Join(
		customerID.Validate(),
		nameErr,
		emailErr,
		phoneErr,
		addressErr,
		password.Validate(plainPassword),
	); err != nil {
		return RegisterCustomerCommand{}, err
	}

	return RegisterCustomerCommand{
		customerID: customerID,
		name:       n,
		email:      e,
		phone:      p,
		address:    a,
		password:   plainPassword,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) CustomerID() kernel.UUID { return c.customerID }
func (c RegisterCustomerCommand) Name() kernel.Name       { return c.name }
func (c RegisterCustomerCommand) Email() kernel.Email     { return c.email }
func (c RegisterCustomerCommand) Phone() kernel.Phone     { return c.phone }
func (c RegisterCustomerCommand) Address() kernel.Address { return c.address }
func (c RegisterCustomerCommand) Password() string        { return c.password }
