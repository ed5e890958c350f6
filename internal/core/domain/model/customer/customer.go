// Package customer holds the Customer aggregate, the owner of orders.
package customer

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

type Status int

const (
	StatusUnknown Status = iota
	StatusActive
	StatusSuspended
)

var statusNames = map[Status]string{
	StatusActive:    "Active",
	StatusSuspended: "Suspended",
}

func Statuses() []Status {
	return []Status{StatusActive, StatusSuspended}
}

func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("customer status")
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidError("customer status")
	}
	return nil
}

var (
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

	// ErrCustomerIsSuspended is the cause reported when a suspended customer books an order.
	ErrCustomerIsSuspended = errors.New("customer account is suspended")

	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
)

var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Customer books orders. Only Active customers may create new ones.
type Customer struct {
	id           kernel.UUID
	name         kernel.Name
	email        kernel.Email
	phone        kernel.Phone
	address      kernel.Address
	passwordHash string
	status       Status
	createdAt    time.Time
	updatedAt    time.Time

	persistedStatus Status
	guard           guard.ConstructorGuard
}

func NewCustomer(
	id kernel.UUID,
	name kernel.Name,
	email kernel.Email,
	phone kernel.Phone,
	address kernel.Address,
	passwordHash string,
) (*Customer, error) {
	c := &Customer{
		status: StatusActive,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
		c.setAddress(address),
		c.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	c.createdAt = now()
	c.updatedAt = c.createdAt
	return c, nil
}

// Snapshot carries the persisted attributes of a customer.
type Snapshot struct {
	ID           kernel.UUID
	Name         kernel.Name
	Email        kernel.Email
	Phone        kernel.Phone
	Address      kernel.Address
	PasswordHash string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func RestoreCustomer(s Snapshot) (*Customer, error) {
	c := &Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(s.ID),
		c.setName(s.Name),
		c.setEmail(s.Email),
		c.setPhone(s.Phone),
		c.setAddress(s.Address),
		c.setPasswordHash(s.PasswordHash),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	c.status = s.Status
	c.createdAt = s.CreatedAt.UTC()
	c.updatedAt = s.UpdatedAt.UTC()
	c.MarkPersisted()
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID         { return c.id }
func (c *Customer) Name() kernel.Name       { return c.name }
func (c *Customer) Email() kernel.Email     { return c.email }
func (c *Customer) Phone() kernel.Phone     { return c.phone }
func (c *Customer) Address() kernel.Address { return c.address }
func (c *Customer) PasswordHash() string    { return c.passwordHash }
func (c *Customer) Status() Status          { return c.status }
func (c *Customer) CreatedAt() time.Time    { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time    { return c.updatedAt }

// ValidateCanBook returns a ValueIsInvalidError with cause ErrCustomerIsSuspended
// for a customer who may not create orders.
func (c *Customer) ValidateCanBook() error {
	if c.status != StatusActive {
		return errs.NewValueIsInvalidErrorWithCause("customerId", ErrCustomerIsSuspended)
	}
	return nil
}

func (c *Customer) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if c.status == status {
		return nil
	}
	c.status = status
	ts := now()
	if ts.Before(c.updatedAt) {
		ts = c.updatedAt
	}
	c.updatedAt = ts
	return nil
}

// PersistedStatus is the status the stored record is expected to still have.
func (c *Customer) PersistedStatus() Status {
	return c.persistedStatus
}

func (c *Customer) MarkPersisted() {
	c.persistedStatus = c.status
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name kernel.Name) error {
	if err := name.Validate(); err != nil {
		return err
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("address", err)
	}
	c.address = address
	return nil
}

func (c *Customer) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	c.passwordHash = hash
	return nil
}
