package driver

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver was not created through NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")

	// ErrDriverIsNotEligible is the cause reported when an ineligible driver is assigned.
	ErrDriverIsNotEligible = errors.New("driver must be active and have verified documents")

	// ErrPasswordHashIsRequired is returned for an empty password hash.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
)

var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Driver is the aggregate root of a driver account.
//
// A driver is eligible for assignment only while Active with verified documents.
// The rating is kept as a RatingSummary and grows by one entry per rated order.
//
// Like Order, a Driver remembers the state it was loaded with so repositories can
// guard the write against a concurrent change of the same record.
type Driver struct {
	id                kernel.UUID
	name              kernel.Name
	email             kernel.Email
	phone             kernel.Phone
	passwordHash      string
	vehicle           Vehicle
	status            Status
	documentsVerified bool
	rating            RatingSummary
	createdAt         time.Time
	updatedAt         time.Time

	persisted persistedState
	guard     guard.ConstructorGuard
}

type persistedState struct {
	status            Status
	documentsVerified bool
	ratingCount       int
}

// NewDriver registers an Active driver whose documents are not verified yet.
//
// Parameters:
//   - passwordHash: an already hashed password, never the plain text
//
// Returns:
//   - *Driver: the new driver without ratings
//   - error: joined validation errors for every invalid argument
func NewDriver(
	id kernel.UUID,
	name kernel.Name,
	email kernel.Email,
	phone kernel.Phone,
	vehicle Vehicle,
	passwordHash string,
) (*Driver, error) {
	d := &Driver{
		status: StatusActive,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setEmail(email),
		d.setPhone(phone),
		d.setVehicle(vehicle),
		d.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	d.createdAt = now()
	d.updatedAt = d.createdAt
	return d, nil
}

// Snapshot carries the persisted attributes of a driver.
type Snapshot struct {
	ID                kernel.UUID
	Name              kernel.Name
	Email             kernel.Email
	Phone             kernel.Phone
	PasswordHash      string
	Vehicle           Vehicle
	Status            Status
	DocumentsVerified bool
	Rating            RatingSummary
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RestoreDriver rebuilds a driver loaded from a store.
func RestoreDriver(s Snapshot) (*Driver, error) {
	d := &Driver{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setID(s.ID),
		d.setName(s.Name),
		d.setEmail(s.Email),
		d.setPhone(s.Phone),
		d.setVehicle(s.Vehicle),
		d.setPasswordHash(s.PasswordHash),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	d.status = s.Status
	d.documentsVerified = s.DocumentsVerified
	d.rating = s.Rating
	d.createdAt = s.CreatedAt.UTC()
	d.updatedAt = s.UpdatedAt.UTC()
	d.MarkPersisted()
	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.UUID         { return d.id }
func (d *Driver) Name() kernel.Name       { return d.name }
func (d *Driver) Email() kernel.Email     { return d.email }
func (d *Driver) Phone() kernel.Phone     { return d.phone }
func (d *Driver) PasswordHash() string    { return d.passwordHash }
func (d *Driver) Vehicle() Vehicle        { return d.vehicle }
func (d *Driver) Status() Status          { return d.status }
func (d *Driver) DocumentsVerified() bool { return d.documentsVerified }
func (d *Driver) Rating() RatingSummary   { return d.rating }
func (d *Driver) CreatedAt() time.Time    { return d.createdAt }
func (d *Driver) UpdatedAt() time.Time    { return d.updatedAt }

// IsEligible reports whether the driver may receive new orders.
func (d *Driver) IsEligible() bool {
	return d.status == StatusActive && d.documentsVerified
}

// ValidateEligible returns a ValueIsInvalidError with cause ErrDriverIsNotEligible
// when the driver may not receive new orders.
func (d *Driver) ValidateEligible() error {
	if !d.IsEligible() {
		return errs.NewValueIsInvalidErrorWithCause("driverId", ErrDriverIsNotEligible)
	}
	return nil
}

// VerifyDocuments marks the driver's documents as checked. Calling it twice is a no-op.
func (d *Driver) VerifyDocuments() {
	if d.documentsVerified {
		return
	}
	d.documentsVerified = true
	d.touch()
}

// ChangeStatus sets the account status chosen by an admin.
func (d *Driver) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if d.status == status {
		return nil
	}
	d.status = status
	d.touch()
	return nil
}

// AddRating folds the rating of one completed order into the summary.
func (d *Driver) AddRating(rating kernel.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}
	d.rating = d.rating.Add(rating)
	d.touch()
	return nil
}

// PersistedStatus, PersistedDocumentsVerified and PersistedRatingCount describe the
// stored record the next write expects to replace.
func (d *Driver) PersistedStatus() Status          { return d.persisted.status }
func (d *Driver) PersistedDocumentsVerified() bool { return d.persisted.documentsVerified }
func (d *Driver) PersistedRatingCount() int        { return d.persisted.ratingCount }

// MarkPersisted is called by repositories after a successful write.
func (d *Driver) MarkPersisted() {
	d.persisted = persistedState{
		status:            d.status,
		documentsVerified: d.documentsVerified,
		ratingCount:       d.rating.count,
	}
}

func (d *Driver) touch() {
	ts := now()
	if ts.Before(d.updatedAt) {
		ts = d.updatedAt
	}
	d.updatedAt = ts
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name kernel.Name) error {
	if err := name.Validate(); err != nil {
		return err
	}
	d.name = name
	return nil
}

func (d *Driver) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	d.email = email
	return nil
}

func (d *Driver) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	d.phone = phone
	return nil
}

func (d *Driver) setVehicle(vehicle Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	d.vehicle = vehicle
	return nil
}

func (d *Driver) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	d.passwordHash = hash
	return nil
}
