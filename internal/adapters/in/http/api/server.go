package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// BasePath is the prefix every operation of the document is served under.
const BasePath = "/api/v1"

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Log in as customer, driver or admin
	// (POST /auth/{role}/login)
	Login(ctx echo.Context, role string) error

	// End the current session
	// (POST /auth/logout)
	Logout(ctx echo.Context) error

	// List customers
	// (GET /customers)
	ListCustomers(ctx echo.Context) error

	// Register a customer account
	// (POST /customers)
	RegisterCustomer(ctx echo.Context) error

	// Activate or suspend a customer
	// (PUT /customers/{customerId}/status)
	SetCustomerStatus(ctx echo.Context, customerId openapi_types.UUID) error

	// Admin dashboard counters
	// (GET /dashboard)
	GetDashboard(ctx echo.Context) error

	// List drivers
	// (GET /drivers)
	ListDrivers(ctx echo.Context, params ListDriversParams) error

	// Register a driver account
	// (POST /drivers)
	RegisterDriver(ctx echo.Context) error

	// Get a driver
	// (GET /drivers/{driverId})
	GetDriver(ctx echo.Context, driverId openapi_types.UUID) error

	// Change a driver's account status
	// (PUT /drivers/{driverId}/status)
	SetDriverStatus(ctx echo.Context, driverId openapi_types.UUID) error

	// Mark a driver's documents as verified
	// (POST /drivers/{driverId}/verify)
	VerifyDriver(ctx echo.Context, driverId openapi_types.UUID) error

	// List orders, newest first
	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error

	// Book a transport order
	// (POST /orders)
	CreateOrder(ctx echo.Context) error

	// Get an order
	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error

	// Move an order to its next status
	// (POST /orders/{orderId}/advance)
	AdvanceOrder(ctx echo.Context, orderId openapi_types.UUID) error

	// Assign a driver to a pending order
	// (POST /orders/{orderId}/assign)
	AssignDriver(ctx echo.Context, orderId openapi_types.UUID) error

	// Cancel a pending or assigned order
	// (POST /orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error

	// Rate a completed order
	// (POST /orders/{orderId}/rating)
	RateOrder(ctx echo.Context, orderId openapi_types.UUID) error

	// Suggest a vehicle and price for a load
	// (GET /quotes)
	GetQuote(ctx echo.Context, params GetQuoteParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// Login converts echo context to params.
func (w *ServerInterfaceWrapper) Login(ctx echo.Context) error {
	var err error

	// ------------- Path parameter "role" -------------
	var role string

	err = runtime.BindStyledParameterWithLocation("simple", false, "role", runtime.ParamLocationPath, ctx.Param("role"), &role)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter role: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.Login(ctx, role)
	return err
}

// Logout converts echo context to params.
func (w *ServerInterfaceWrapper) Logout(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.Logout(ctx)
	return err
}

// ListCustomers converts echo context to params.
func (w *ServerInterfaceWrapper) ListCustomers(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListCustomers(ctx)
	return err
}

// RegisterCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterCustomer(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RegisterCustomer(ctx)
	return err
}

// SetCustomerStatus converts echo context to params.
func (w *ServerInterfaceWrapper) SetCustomerStatus(ctx echo.Context) error {
	var err error

	// ------------- Path parameter "customerId" -------------
	var customerId openapi_types.UUID

	err = runtime.BindStyledParameterWithLocation("simple", false, "customerId", runtime.ParamLocationPath, ctx.Param("customerId"), &customerId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customerId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetCustomerStatus(ctx, customerId)
	return err
}

// GetDashboard converts echo context to params.
func (w *ServerInterfaceWrapper) GetDashboard(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDashboard(ctx)
	return err
}

// ListDrivers converts echo context to params.
func (w *ServerInterfaceWrapper) ListDrivers(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListDriversParams

	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// ------------- Optional query parameter "verified" -------------

	err = runtime.BindQueryParameter("form", true, false, "verified", ctx.QueryParams(), &params.Verified)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter verified: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListDrivers(ctx, params)
	return err
}

// RegisterDriver converts echo context to params.
func (w *ServerInterfaceWrapper) RegisterDriver(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RegisterDriver(ctx)
	return err
}

// GetDriver converts echo context to params.
func (w *ServerInterfaceWrapper) GetDriver(ctx echo.Context) error {
	var err error

	// ------------- Path parameter "driverId" -------------
	var driverId openapi_types.UUID

	err = runtime.BindStyledParameterWithLocation("simple", false, "driverId", runtime.ParamLocationPath, ctx.Param("driverId"), &driverId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter driverId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetDriver(ctx, driverId)
	return err
}

// SetDriverStatus converts echo context to params.
func (w *ServerInterfaceWrapper) SetDriverStatus(ctx echo.Context) error {
	var err error

	// ------------- Path parameter "driverId" -------------
	var driverId openapi_types.UUID

	err = runtime.BindStyledParameterWithLocation("simple", false, "driverId", runtime.ParamLocationPath, ctx.Param("driverId"), &driverId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter driverId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.SetDriverStatus(ctx, driverId)
	return err
}

// VerifyDriver converts echo context to params.
func (w *ServerInterfaceWrapper) VerifyDriver(ctx echo.Context) error {
	var err error

	// ------------- Path parameter "driverId" -------------
	var driverId openapi_types.UUID

	err = runtime.BindStyledParameterWithLocation("simple", false, "driverId", runtime.ParamLocationPath, ctx.Param("driverId"), &driverId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter driverId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.VerifyDriver(ctx, driverId)
	return err
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListOrdersParams

	// ------------- Optional query parameter "customerId" -------------

	err = runtime.BindQueryParameter("form", true, false, "customerId", ctx.QueryParams(), &params.CustomerId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customerId: %s", err))
	}

	// ------------- Optional query parameter "driverId" -------------

	err = runtime.BindQueryParameter("form", true, false, "driverId", ctx.QueryParams(), &params.DriverId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter driverId: %s", err))
	}

	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrders(ctx, params)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error

	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithLocation("simple", false, "orderId", runtime.ParamLocationPath, ctx.Param("orderId"), &orderId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId)
	return err
}

// AdvanceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceOrder(ctx echo.Context) error {
	var err error

	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithLocation("simple", false, "orderId", runtime.ParamLocationPath, ctx.Param("orderId"), &orderId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AdvanceOrder(ctx, orderId)
	return err
}

// AssignDriver converts echo context to params.
func (w *ServerInterfaceWrapper) AssignDriver(ctx echo.Context) error {
	var err error

	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithLocation("simple", false, "orderId", runtime.ParamLocationPath, ctx.Param("orderId"), &orderId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.AssignDriver(ctx, orderId)
	return err
}

// CancelOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	var err error

	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithLocation("simple", false, "orderId", runtime.ParamLocationPath, ctx.Param("orderId"), &orderId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CancelOrder(ctx, orderId)
	return err
}

// RateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) RateOrder(ctx echo.Context) error {
	var err error

	// ------------- Path parameter "orderId" -------------
	var orderId openapi_types.UUID

	err = runtime.BindStyledParameterWithLocation("simple", false, "orderId", runtime.ParamLocationPath, ctx.Param("orderId"), &orderId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.RateOrder(ctx, orderId)
	return err
}

// GetQuote converts echo context to params.
func (w *ServerInterfaceWrapper) GetQuote(ctx echo.Context) error {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetQuoteParams

	// ------------- Required query parameter "weightKg" -------------

	err = runtime.BindQueryParameter("form", true, true, "weightKg", ctx.QueryParams(), &params.WeightKg)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter weightKg: %s", err))
	}

	// ------------- Required query parameter "distanceKm" -------------

	err = runtime.BindQueryParameter("form", true, true, "distanceKm", ctx.QueryParams(), &params.DistanceKm)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter distanceKm: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetQuote(ctx, params)
	return err
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter under BasePath.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, BasePath)
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths,
// so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/auth/:role/login", wrapper.Login)
	router.POST(baseURL+"/auth/logout", wrapper.Logout)
	router.GET(baseURL+"/customers", wrapper.ListCustomers)
	router.POST(baseURL+"/customers", wrapper.RegisterCustomer)
	router.PUT(baseURL+"/customers/:customerId/status", wrapper.SetCustomerStatus)
	router.GET(baseURL+"/dashboard", wrapper.GetDashboard)
	router.GET(baseURL+"/drivers", wrapper.ListDrivers)
	router.POST(baseURL+"/drivers", wrapper.RegisterDriver)
	router.GET(baseURL+"/drivers/:driverId", wrapper.GetDriver)
	router.PUT(baseURL+"/drivers/:driverId/status", wrapper.SetDriverStatus)
	router.POST(baseURL+"/drivers/:driverId/verify", wrapper.VerifyDriver)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/orders/:orderId/advance", wrapper.AdvanceOrder)
	router.POST(baseURL+"/orders/:orderId/assign", wrapper.AssignDriver)
	router.POST(baseURL+"/orders/:orderId/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/orders/:orderId/rating", wrapper.RateOrder)
	router.GET(baseURL+"/quotes", wrapper.GetQuote)
}
