package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Envelope wraps every response body.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Session struct {
	Token     string              `json:"token"`
	Role      string              `json:"role"`
	UserId    *openapi_types.UUID `json:"userId,omitempty"`
	ExpiresAt time.Time           `json:"expiresAt"`
}

type NewCustomer struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

type NewDriver struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Vehicle  string `json:"vehicle"`
	Password string `json:"password"`
}

type Created struct {
	Id openapi_types.UUID `json:"id"`
}

type Customer struct {
	Id        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone"`
	Address   string             `json:"address"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

type Driver struct {
	Id                openapi_types.UUID `json:"id"`
	Name              string             `json:"name"`
	Email             string             `json:"email"`
	Phone             string             `json:"phone"`
	Vehicle           string             `json:"vehicle"`
	Status            string             `json:"status"`
	DocumentsVerified bool               `json:"documentsVerified"`
	Eligible          bool               `json:"eligible"`
	Rating            float64            `json:"rating"`
	RatingCount       int                `json:"ratingCount"`
	CreatedAt         time.Time          `json:"createdAt"`
}

// NewOrder is the booking request. Price is quoted by the service when omitted.
type NewOrder struct {
	CustomerId       *openapi_types.UUID `json:"customerId,omitempty"`
	PickupLocation   string              `json:"pickupLocation"`
	DeliveryLocation string              `json:"deliveryLocation"`
	WeightKg         decimal.Decimal     `json:"weightKg"`
	DistanceKm       decimal.Decimal     `json:"distanceKm"`
	Price            *decimal.Decimal    `json:"price,omitempty"`
}

type Order struct {
	Id               openapi_types.UUID  `json:"id"`
	CustomerId       openapi_types.UUID  `json:"customerId"`
	DriverId         *openapi_types.UUID `json:"driverId,omitempty"`
	Status           string              `json:"status"`
	Price            string              `json:"price"`
	PickupLocation   string              `json:"pickupLocation"`
	DeliveryLocation string              `json:"deliveryLocation"`
	Rating           *int                `json:"rating,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

type Assignment struct {
	DriverId openapi_types.UUID `json:"driverId"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type RatingInput struct {
	Rating int `json:"rating"`
}

type Quote struct {
	Vehicle string `json:"vehicle"`
	Price   string `json:"price"`
}

type Dashboard struct {
	OrdersByStatus   map[string]int `json:"ordersByStatus"`
	TotalOrders      int            `json:"totalOrders"`
	CompletedRevenue string         `json:"completedRevenue"`
	DriversByStatus  map[string]int `json:"driversByStatus"`
	TotalDrivers     int            `json:"totalDrivers"`
	Customers        int            `json:"customers"`
}

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	CustomerId *openapi_types.UUID `form:"customerId,omitempty" json:"customerId,omitempty"`
	DriverId   *openapi_types.UUID `form:"driverId,omitempty" json:"driverId,omitempty"`
	Status     *[]string           `form:"status,omitempty" json:"status,omitempty"`
}

// ListDriversParams defines parameters for ListDrivers.
type ListDriversParams struct {
	Status   *[]string `form:"status,omitempty" json:"status,omitempty"`
	Verified *bool     `form:"verified,omitempty" json:"verified,omitempty"`
}

// GetQuoteParams defines parameters for GetQuote. Decimals travel as strings so that
// no precision is lost before the service parses them.
type GetQuoteParams struct {
	WeightKg   string `form:"weightKg" json:"weightKg"`
	DistanceKm string `form:"distanceKm" json:"distanceKm"`
}
