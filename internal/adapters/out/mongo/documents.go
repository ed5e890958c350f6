package mongo

import (
	"time"

	"logistics/internal/core/domain/model/customer"
	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// orderDocument stores ids as canonical UUID strings and the price as Decimal128 so
// that $sum keeps exact cents.
type orderDocument struct {
	ID               string               `bson:"_id"`
	CustomerID       string               `bson:"customer_id"`
	DriverID         *string              `bson:"driver_id"`
	Status           string               `bson:"status"`
	Price            primitive.Decimal128 `bson:"price"`
	PickupLocation   string               `bson:"pickup_location"`
	DeliveryLocation string               `bson:"delivery_location"`
	Rating           *int                 `bson:"rating"`
	CreatedAt        time.Time            `bson:"created_at"`
	UpdatedAt        time.Time            `bson:"updated_at"`
}

func orderFromDomain(o *order.Order) (orderDocument, error) {
	price, err := primitive.ParseDecimal128(o.Price().Decimal().String())
	if err != nil {
		return orderDocument{}, err
	}

	doc := orderDocument{
		ID:               o.ID().String(),
		CustomerID:       o.CustomerID().String(),
		Status:           o.Status().String(),
		Price:            price,
		PickupLocation:   o.PickupLocation().String(),
		DeliveryLocation: o.DeliveryLocation().String(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
	}
	if driverID := o.DriverID(); driverID != nil {
		id := driverID.String()
		doc.DriverID = &id
	}
	if rating := o.Rating(); rating != nil {
		value := rating.Value()
		doc.Rating = &value
	}
	return doc, nil
}

// mutableFields is the $set document of a guarded order update.
func (doc orderDocument) mutableFields() bson.M {
	return bson.M{
		"driver_id":  doc.DriverID,
		"status":     doc.Status,
		"rating":     doc.Rating,
		"updated_at": doc.UpdatedAt,
	}
}

func (doc orderDocument) toDomain() (*order.Order, error) {
	id, err := kernel.UUIDFromString(doc.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromString(doc.CustomerID)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if doc.DriverID != nil {
		dID, driverErr := kernel.UUIDFromString(*doc.DriverID)
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	status, err := order.ParseStatus(doc.Status)
	if err != nil {
		return nil, err
	}
	amount, err := decimalFrom(doc.Price)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(amount)
	if err != nil {
		return nil, err
	}
	pickup, err := kernel.NewAddress("pickupLocation", doc.PickupLocation)
	if err != nil {
		return nil, err
	}
	delivery, err := kernel.NewAddress("deliveryLocation", doc.DeliveryLocation)
	if err != nil {
		return nil, err
	}

	var rating *kernel.Rating
	if doc.Rating != nil {
		r, ratingErr := kernel.NewRating(*doc.Rating)
		if ratingErr != nil {
			return nil, ratingErr
		}
		rating = &r
	}

	return order.RestoreOrder(order.Snapshot{
		ID:               id,
		CustomerID:       customerID,
		DriverID:         driverID,
		Status:           status,
		Price:            price,
		PickupLocation:   pickup,
		DeliveryLocation: delivery,
		Rating:           rating,
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	})
}

type driverDocument struct {
	ID                string    `bson:"_id"`
	Name              string    `bson:"name"`
	Email             string    `bson:"email"`
	Phone             string    `bson:"phone"`
	PasswordHash      string    `bson:"password_hash"`
	Vehicle           string    `bson:"vehicle"`
	Status            string    `bson:"status"`
	DocumentsVerified bool      `bson:"documents_verified"`
	RatingCount       int       `bson:"rating_count"`
	RatingSum         int       `bson:"rating_sum"`
	CreatedAt         time.Time `bson:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at"`
}

func driverFromDomain(d *driver.Driver) driverDocument {
	return driverDocument{
		ID:                d.ID().String(),
		Name:              d.Name().String(),
		Email:             d.Email().String(),
		Phone:             d.Phone().String(),
		PasswordHash:      d.PasswordHash(),
		Vehicle:           d.Vehicle().String(),
		Status:            d.Status().String(),
		DocumentsVerified: d.DocumentsVerified(),
		RatingCount:       d.Rating().Count(),
		RatingSum:         d.Rating().Sum(),
		CreatedAt:         d.CreatedAt(),
		UpdatedAt:         d.UpdatedAt(),
	}
}

func (doc driverDocument) mutableFields() bson.M {
	return bson.M{
		"status":             doc.Status,
		"documents_verified": doc.DocumentsVerified,
		"rating_count":       doc.RatingCount,
		"rating_sum":         doc.RatingSum,
		"updated_at":         doc.UpdatedAt,
	}
}

func (doc driverDocument) toDomain() (*driver.Driver, error) {
	id, err := kernel.UUIDFromString(doc.ID)
	if err != nil {
		return nil, err
	}
	name, err := kernel.NewName(doc.Name)
	if err != nil {
		return nil, err
	}
	email, err := kernel.NewEmail(doc.Email)
	if err != nil {
		return nil, err
	}
	phone, err := kernel.NewPhone(doc.Phone)
	if err != nil {
		return nil, err
	}
	vehicle, err := driver.ParseVehicle(doc.Vehicle)
	if err != nil {
		return nil, err
	}
	status, err := driver.ParseStatus(doc.Status)
	if err != nil {
		return nil, err
	}
	rating, err := driver.NewRatingSummary(doc.RatingCount, doc.RatingSum)
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(driver.Snapshot{
		ID:                id,
		Name:              name,
		Email:             email,
		Phone:             phone,
		PasswordHash:      doc.PasswordHash,
		Vehicle:           vehicle,
		Status:            status,
		DocumentsVerified: doc.DocumentsVerified,
		Rating:            rating,
		CreatedAt:         doc.CreatedAt,
		UpdatedAt:         doc.UpdatedAt,
	})
}

type customerDocument struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	Phone        string    `bson:"phone"`
	Address      string    `bson:"address"`
	PasswordHash string    `bson:"password_hash"`
	Status       string    `bson:"status"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func customerFromDomain(c *customer.Customer) customerDocument {
	return customerDocument{
		ID:           c.ID().String(),
		Name:         c.Name().String(),
		Email:        c.Email().String(),
		Phone:        c.Phone().String(),
		Address:      c.Address().String(),
		PasswordHash: c.PasswordHash(),
		Status:       c.Status().String(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

func (doc customerDocument) toDomain() (*customer.Customer, error) {
	id, err := kernel.UUIDFromString(doc.ID)
	if err != nil {
		return nil, err
	}
	name, err := kernel.NewName(doc.Name)
	if err != nil {
		return nil, err
	}
	email, err := kernel.NewEmail(doc.Email)
	if err != nil {
		return nil, err
	}
	phone, err := kernel.NewPhone(doc.Phone)
	if err != nil {
		return nil, err
	}
	address, err := kernel.NewAddress("address", doc.Address)
	if err != nil {
		return nil, err
	}
	status, err := customer.ParseStatus(doc.Status)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(customer.Snapshot{
		ID:           id,
		Name:         name,
		Email:        email,
		Phone:        phone,
		Address:      address,
		PasswordHash: doc.PasswordHash,
		Status:       status,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	})
}

func decimalFrom(d primitive.Decimal128) (decimal.Decimal, error) {
	return decimal.NewFromString(d.String())
}
