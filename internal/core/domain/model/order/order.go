package order

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderIsAlreadyRated is the cause reported when a second rating is attempted.
	ErrOrderIsAlreadyRated = errors.New("order is already rated")
)

// now is replaced in tests. Timestamps are kept at millisecond precision so that they
// survive a round trip through both postgres and mongo unchanged.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Order is the aggregate root of one transport request.
//
// Invariants:
//   - id and customerID are immutable
//   - driverID is nil while Pending and set from Assigned onwards
//   - status only moves along the transitions of Status
//   - rating is set at most once and only on a Completed order
//   - price is a non-negative Money
//
// Besides its current state the order remembers the state it had when it was last
// loaded or saved. Repositories use that as the precondition of a guarded write.
type Order struct {
	id               kernel.UUID
	customerID       kernel.UUID
	driverID         *kernel.UUID
	status           Status
	price            kernel.Money
	pickupLocation   kernel.Address
	deliveryLocation kernel.Address
	rating           *kernel.Rating
	createdAt        time.Time
	updatedAt        time.Time

	persistedStatus Status
	persistedRated  bool

	events []ChangedEvent
	guard  guard.ConstructorGuard
}

// NewOrder creates a Pending order without a driver.
//
// Example:
//
//	pickup, _ := kernel.NewAddress("pickupLocation", "Dock 4")
//	delivery, _ := kernel.NewAddress("deliveryLocation", "5 Mill St")
//	price, _ := kernel.MoneyFromFloat(100)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, pickup, delivery, price)
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	pickupLocation kernel.Address,
	deliveryLocation kernel.Address,
	price kernel.Money,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setPickupLocation(pickupLocation),
		o.setDeliveryLocation(deliveryLocation),
		o.setPrice(price),
	); err != nil {
		return nil, err
	}

	o.createdAt = now()
	o.updatedAt = o.createdAt
	o.raise()
	return o, nil
}

// Snapshot carries the persisted attributes of an order between a store and RestoreOrder.
type Snapshot struct {
	ID               kernel.UUID
	CustomerID       kernel.UUID
	DriverID         *kernel.UUID
	Status           Status
	Price            kernel.Money
	PickupLocation   kernel.Address
	DeliveryLocation kernel.Address
	Rating           *kernel.Rating
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RestoreOrder rebuilds an order loaded from a store and re-checks every invariant,
// so a corrupted record is reported instead of silently used.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomerID(s.CustomerID),
		o.setPickupLocation(s.PickupLocation),
		o.setDeliveryLocation(s.DeliveryLocation),
		o.setPrice(s.Price),
		s.Status.Validate(),
		s.Status.ValidateCanHaveDriver(s.DriverID != nil),
		validateRestoredRating(s.Status, s.Rating),
	); err != nil {
		return nil, err
	}

	if s.DriverID != nil {
		if err := s.DriverID.Validate(); err != nil {
			return nil, err
		}
		driverID := *s.DriverID
		o.driverID = &driverID
	}
	if s.Rating != nil {
		rating := *s.Rating
		o.rating = &rating
	}
	o.status = s.Status
	o.createdAt = s.CreatedAt.UTC()
	o.updatedAt = s.UpdatedAt.UTC()
	o.MarkPersisted()
	return o, nil
}

func validateRestoredRating(status Status, rating *kernel.Rating) error {
	if rating == nil {
		return nil
	}
	if err := rating.Validate(); err != nil {
		return err
	}
	if status != Completed {
		return errs.NewValueIsInvalidErrorWithCause("rating",
			fmt.Errorf("%s orders cannot be rated", status))
	}
	return nil
}

// Validate ensures the order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                  { return o.id }
func (o *Order) CustomerID() kernel.UUID          { return o.customerID }
func (o *Order) Status() Status                   { return o.status }
func (o *Order) Price() kernel.Money              { return o.price }
func (o *Order) PickupLocation() kernel.Address   { return o.pickupLocation }
func (o *Order) DeliveryLocation() kernel.Address { return o.deliveryLocation }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) UpdatedAt() time.Time             { return o.updatedAt }

// DriverID returns the assigned driver, or nil while Pending.
func (o *Order) DriverID() *kernel.UUID {
	if o.driverID == nil {
		return nil
	}
	id := *o.driverID
	return &id
}

// Rating returns the customer's rating, or nil when the order is not rated.
func (o *Order) Rating() *kernel.Rating {
	if o.rating == nil {
		return nil
	}
	r := *o.rating
	return &r
}

// IsRated reports whether a rating was recorded.
func (o *Order) IsRated() bool {
	return o.rating != nil
}

// Assign attaches a driver to a Pending order and moves it to Assigned.
// Driver eligibility is checked by the caller, which owns the driver aggregate.
func (o *Order) Assign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.touch()
	return nil
}

// Advance moves the order to target, which must be the immediate successor of the current status.
func (o *Order) Advance(target Status) error {
	newStatus, err := o.status.Advance(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel withdraws a Pending or Assigned order. An Assigned order keeps its driver reference.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Rate records the customer's rating on a Completed order.
//
// Returns:
//   - InvalidTransitionError when the order is not Completed
//   - ValueIsInvalidError (cause ErrOrderIsAlreadyRated) on a second call
func (o *Order) Rate(rating kernel.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}
	if o.status != Completed {
		return errs.NewInvalidTransitionErrorWithCause(o.status.String(), "Rated",
			errors.New("only completed orders can be rated"))
	}
	if o.rating != nil {
		return errs.NewValueIsInvalidErrorWithCause("rating", ErrOrderIsAlreadyRated)
	}

	o.rating = &rating
	o.touch()
	return nil
}

// PersistedStatus is the status the stored record is expected to still have.
func (o *Order) PersistedStatus() Status {
	return o.persistedStatus
}

// PersistedRated reports whether the stored record is expected to carry a rating.
func (o *Order) PersistedRated() bool {
	return o.persistedRated
}

// MarkPersisted is called by repositories after a successful write.
func (o *Order) MarkPersisted() {
	o.persistedStatus = o.status
	o.persistedRated = o.rating != nil
}

// DomainEvents returns the events raised since the last ClearDomainEvents.
func (o *Order) DomainEvents() []ChangedEvent {
	out := make([]ChangedEvent, len(o.events))
	copy(out, o.events)
	return out
}

// ClearDomainEvents drops the recorded events once they are published.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) touch() {
	ts := now()
	if ts.Before(o.updatedAt) {
		ts = o.updatedAt
	}
	o.updatedAt = ts
	o.raise()
}

func (o *Order) raise() {
	o.events = append(o.events, newChangedEvent(o))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setPickupLocation(a kernel.Address) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickupLocation", err)
	}
	o.pickupLocation = a
	return nil
}

func (o *Order) setDeliveryLocation(a kernel.Address) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryLocation", err)
	}
	o.deliveryLocation = a
	return nil
}

func (o *Order) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	o.price = price
	return nil
}
