package http

import (
	"context"
	"log/slog"
	"net/http"

	"logistics/internal/adapters/in/http/api"
	"logistics/internal/core/application/auth"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CommandHandler executes one kind of command.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, command C) error
}

// QueryHandler executes one kind of query.
type QueryHandler[Q, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// Authenticator opens, resolves and ends login sessions.
type Authenticator interface {
	Login(ctx context.Context, role auth.Role, email, password string) (auth.Login, error)
	Authenticate(ctx context.Context, token string) (auth.Session, error)
	Logout(ctx context.Context, session auth.Session) error
}

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	CreateOrder           CommandHandler[commands.CreateOrderCommand]
	AssignDriver          CommandHandler[commands.AssignDriverCommand]
	AdvanceOrder          CommandHandler[commands.AdvanceOrderCommand]
	CancelOrder           CommandHandler[commands.CancelOrderCommand]
	RateOrder             CommandHandler[commands.RateOrderCommand]
	RegisterCustomer      CommandHandler[commands.RegisterCustomerCommand]
	RegisterDriver        CommandHandler[commands.RegisterDriverCommand]
	VerifyDriverDocuments CommandHandler[commands.VerifyDriverDocumentsCommand]
	SetDriverStatus       CommandHandler[commands.SetDriverStatusCommand]
	SetCustomerStatus     CommandHandler[commands.SetCustomerStatusCommand]

	ListOrders    QueryHandler[queries.ListOrdersQuery, []queries.OrderView]
	GetOrder      QueryHandler[queries.GetOrderQuery, queries.OrderView]
	ListDrivers   QueryHandler[queries.ListDriversQuery, []queries.DriverView]
	GetDriver     QueryHandler[queries.GetDriverQuery, queries.DriverView]
	ListCustomers QueryHandler[queries.ListCustomersQuery, []queries.CustomerView]
	Dashboard     QueryHandler[queries.DashboardQuery, queries.DashboardView]
	Quote         QueryHandler[queries.QuoteQuery, queries.QuoteView]
}

// Server implements api.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
	auth     Authenticator
	logger   *slog.Logger
}

var _ api.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, authenticator Authenticator, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		auth:     authenticator,
		logger:   logger.With("component", "http"),
	}
}

// Login handles POST /api/v1/auth/{role}/login.
func (s *Server) Login(ctx echo.Context, role string) error {
	r, err := auth.ParseRole(role)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body api.Credentials
	if err := ctx.Bind(&body); err != nil {
		return malformedBody(ctx)
	}

	login, err := s.auth.Login(ctx.Request().Context(), r, body.Email, body.Password)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp := api.Session{
		Token:     login.Token,
		Role:      login.Session.Actor.Role.String(),
		ExpiresAt: login.Session.ExpiresAt,
	}
	if !login.Session.Actor.IsAdmin() {
		id := login.Session.Actor.UserID.Bytes()
		resp.UserId = &id
	}
	return respond(ctx, http.StatusOK, "logged in", resp)
}

// Logout handles POST /api/v1/auth/logout.
func (s *Server) Logout(ctx echo.Context) error {
	session, ok := auth.FromContext(ctx.Request().Context())
	if !ok {
		return s.fail(ctx, auth.Unauthenticated("missing bearer token"))
	}
	if err := s.auth.Logout(ctx.Request().Context(), session); err != nil {
		return s.fail(ctx, err)
	}
	return respond(ctx, http.StatusOK, "logged out", nil)
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var body api.NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return malformedBody(ctx)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(id, body.Name, body.Email, body.Phone, body.Address, body.Password)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.RegisterCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return respond(ctx, http.StatusCreated, "customer registered", api.Created{Id: id.Bytes()})
}

// RegisterDriver handles POST /api/v1/drivers.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var body api.NewDriver
	if err := ctx.Bind(&body); err != nil {
		return malformedBody(ctx)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterDriverCommand(id, body.Name, body.Email, body.Phone, body.Vehicle, body.Password)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.RegisterDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return respond(ctx, http.StatusCreated, "driver registered", api.Created{Id: id.Bytes()})
}

// GetQuote handles GET /api/v1/quotes.
func (s *Server) GetQuote(ctx echo.Context, params api.GetQuoteParams) error {
	weight, weightErr := parseDecimal("weightKg", params.WeightKg)
	distance, distanceErr := parseDecimal("distanceKm", params.DistanceKm)
	if weightErr != nil {
		return s.fail(ctx, weightErr)
	}
	if distanceErr != nil {
		return s.fail(ctx, distanceErr)
	}

	query, err := queries.NewQuoteQuery(weight, distance)
	if err != nil {
		return s.fail(ctx, err)
	}
	quote, err := s.handlers.Quote.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return respond(ctx, http.StatusOK, "quote", api.Quote{Vehicle: quote.Vehicle, Price: quote.Price.String()})
}

// CreateOrder handles POST /api/v1/orders. Customers book for themselves when no
// customerId is given.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body api.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return malformedBody(ctx)
	}

	var customerID kernel.UUID
	switch {
	case body.CustomerId != nil:
		if customerID, err = kernel.UUIDFromGoogle(*body.CustomerId); err != nil {
			return s.fail(ctx, err)
		}
	case actor.Role == auth.RoleCustomer:
		customerID = actor.UserID
	default:
		return s.fail(ctx, errs.NewValueIsRequiredError("customerId"))
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(actor, orderID, customerID,
		body.PickupLocation, body.DeliveryLocation, body.WeightKg, body.DistanceKm, body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, actor, orderID, http.StatusCreated, "order created")
}

// respondWithOrder replies with the current view of an order the actor has just changed.
func (s *Server) respondWithOrder(ctx echo.Context, actor auth.Actor, orderID kernel.UUID, code int, message string) error {
	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return respond(ctx, code, message, toOrder(view))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params api.ListOrdersParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	customerID, customerErr := optionalUUID(params.CustomerId)
	driverID, driverErr := optionalUUID(params.DriverId)
	if customerErr != nil {
		return s.fail(ctx, customerErr)
	}
	if driverErr != nil {
		return s.fail(ctx, driverErr)
	}
	var statuses []string
	if params.Status != nil {
		statuses = *params.Status
	}

	query, err := queries.NewListOrdersQuery(actor, customerID, driverID, statuses)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp := make([]api.Order, len(views))
	for i, v := range views {
		resp[i] = toOrder(v)
	}
	return respond(ctx, http.StatusOK, "orders", resp)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId uuidParam) error {
	actor, id, err := s.actorAndID(ctx, orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(actor, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return respond(ctx, http.StatusOK, "order", toOrder(view))
}

// AssignDriver handles POST /api/v1/orders/{orderId}/assign.
func (s *Server) AssignDriver(ctx echo.Context, orderId uuidParam) error {
	actor, id, err := s.actorAndID(ctx, orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body api.Assignment
	if err := ctx.Bind(&body); err != nil {
		return malformedBody(ctx)
	}
	driverID, err := kernel.UUIDFromGoogle(body.DriverId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignDriverCommand(actor, id, driverID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.AssignDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithOrder(ctx, actor, id, http.StatusOK, "driver assigned")
}

// AdvanceOrder handles POST /api/v1/orders/{orderId}/advance.
func (s *Server) AdvanceOrder(ctx echo.Context, orderId uuidParam) error {
	actor, id, err := s.actorAndID(ctx, orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body api.StatusChange
	if err := ctx.Bind(&body); err != nil {
		return malformedBody(ctx)
	}

	cmd, err := commands.NewAdvanceOrderCommand(actor, id, body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.AdvanceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithOrder(ctx, actor, id, http.StatusOK, "order advanced")
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderId uuidParam) error {
	actor, id, err := s.actorAndID(ctx, orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(actor, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithOrder(ctx, actor, id, http.StatusOK, "order cancelled")
}

// RateOrder handles POST /api/v1/orders/{orderId}/rating.
func (s *Server) RateOrder(ctx echo.Context, orderId uuidParam) error {
	actor, id, err := s.actorAndID(ctx, orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body api.RatingInput
	if err := ctx.Bind(&body); err != nil {
		return malformedBody(ctx)
	}

	cmd, err := commands.NewRateOrderCommand(actor, id, body.Rating)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.RateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondWithOrder(ctx, actor, id, http.StatusOK, "order rated")
}

// ListDrivers handles GET /api/v1/drivers.
func (s *Server) ListDrivers(ctx echo.Context, params api.ListDriversParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var statuses []string
	if params.Status != nil {
		statuses = *params.Status
	}
	query, err := queries.NewListDriversQuery(actor, statuses, params.Verified)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.handlers.ListDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp := make([]api.Driver, len(views))
	for i, v := range views {
		resp[i] = toDriver(v)
	}
	return respond(ctx, http.StatusOK, "drivers", resp)
}

// GetDriver handles GET /api/v1/drivers/{driverId}.
func (s *Server) GetDriver(ctx echo.Context, driverId uuidParam) error {
	actor, id, err := s.actorAndID(ctx, driverId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetDriverQuery(actor, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.handlers.GetDriver.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return respond(ctx, http.StatusOK, "driver", toDriver(view))
}

// VerifyDriver handles POST /api/v1/drivers/{driverId}/verify.
func (s *Server) VerifyDriver(ctx echo.Context, driverId uuidParam) error {
	actor, id, err := s.actorAndID(ctx, driverId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewVerifyDriverDocumentsCommand(actor, id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.VerifyDriverDocuments.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return respond(ctx, http.StatusOK, "driver documents verified", nil)
}

// SetDriverStatus handles PUT /api/v1/drivers/{driverId}/status.
func (s *Server) SetDriverStatus(ctx echo.Context, driverId uuidParam) error {
	actor, id, err := s.actorAndID(ctx, driverId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body api.StatusChange
	if err := ctx.Bind(&body); err != nil {
		return malformedBody(ctx)
	}

	cmd, err := commands.NewSetDriverStatusCommand(actor, id, body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.SetDriverStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return respond(ctx, http.StatusOK, "driver status changed", nil)
}

// ListCustomers handles GET /api/v1/customers.
func (s *Server) ListCustomers(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	views, err := s.handlers.ListCustomers.Handle(ctx.Request().Context(), queries.NewListCustomersQuery(actor))
	if err != nil {
		return s.fail(ctx, err)
	}

	resp := make([]api.Customer, len(views))
	for i, v := range views {
		resp[i] = api.Customer{
			Id:        v.ID.Bytes(),
			Name:      v.Name,
			Email:     v.Email,
			Phone:     v.Phone,
			Address:   v.Address,
			Status:    v.Status,
			CreatedAt: v.CreatedAt,
		}
	}
	return respond(ctx, http.StatusOK, "customers", resp)
}

// SetCustomerStatus handles PUT /api/v1/customers/{customerId}/status.
func (s *Server) SetCustomerStatus(ctx echo.Context, customerId uuidParam) error {
	actor, id, err := s.actorAndID(ctx, customerId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body api.StatusChange
	if err := ctx.Bind(&body); err != nil {
		return malformedBody(ctx)
	}

	cmd, err := commands.NewSetCustomerStatusCommand(actor, id, body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.handlers.SetCustomerStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return respond(ctx, http.StatusOK, "customer status changed", nil)
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.Dashboard.Handle(ctx.Request().Context(), queries.NewDashboardQuery(actor))
	if err != nil {
		return s.fail(ctx, err)
	}
	return respond(ctx, http.StatusOK, "dashboard", api.Dashboard{
		OrdersByStatus:   view.OrdersByStatus,
		TotalOrders:      view.TotalOrders,
		CompletedRevenue: view.CompletedRevenue.String(),
		DriversByStatus:  view.DriversByStatus,
		TotalDrivers:     view.TotalDrivers,
		Customers:        view.Customers,
	})
}

func (s *Server) actorAndID(ctx echo.Context, raw uuidParam) (auth.Actor, kernel.UUID, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return auth.Actor{}, kernel.UUID{}, err
	}
	id, err := kernel.UUIDFromGoogle(raw)
	if err != nil {
		return auth.Actor{}, kernel.UUID{}, err
	}
	return actor, id, nil
}

func actorFrom(ctx echo.Context) (auth.Actor, error) {
	session, ok := auth.FromContext(ctx.Request().Context())
	if !ok {
		return auth.Actor{}, auth.Unauthenticated("missing bearer token")
	}
	return session.Actor, nil
}

func optionalUUID(raw *uuidParam) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromGoogle(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseDecimal(param, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return d, nil
}

func toOrder(v queries.OrderView) api.Order {
	o := api.Order{
		Id:               v.ID.Bytes(),
		CustomerId:       v.CustomerID.Bytes(),
		Status:           v.Status,
		Price:            v.Price.String(),
		PickupLocation:   v.PickupLocation,
		DeliveryLocation: v.DeliveryLocation,
		Rating:           v.Rating,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
	if v.DriverID != nil {
		id := v.DriverID.Bytes()
		o.DriverId = &id
	}
	return o
}

func toDriver(v queries.DriverView) api.Driver {
	return api.Driver{
		Id:                v.ID.Bytes(),
		Name:              v.Name,
		Email:             v.Email,
		Phone:             v.Phone,
		Vehicle:           v.Vehicle,
		Status:            v.Status,
		DocumentsVerified: v.DocumentsVerified,
		Eligible:          v.Eligible,
		Rating:            v.Rating,
		RatingCount:       v.RatingCount,
		CreatedAt:         v.CreatedAt,
	}
}
