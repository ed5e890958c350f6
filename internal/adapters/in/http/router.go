package http

import (
	"context"
	"log/slog"
	"net/http"

	"logistics/internal/adapters/in/http/api"
	_ "logistics/internal/adapters/in/http/docs"
	"logistics/internal/core/application/auth"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// FeedPath is the websocket endpoint of the live order feed.
const FeedPath = "/ws/orders"

// Feed streams order changes to a websocket peer until it disconnects.
type Feed interface {
	Serve(ctx context.Context, conn *websocket.Conn, actor auth.Actor)
}

// RouterConfig is everything NewRouter mounts on the echo instance.
type RouterConfig struct {
	Server   *Server
	Feed     Feed
	Observer HTTPObserver
	Metrics  http.Handler
	// Health reports whether the store is reachable. Nil means always healthy.
	Health func(ctx context.Context) error
	Logger *slog.Logger
}

// NewRouter builds the echo instance serving the REST API, the live feed, metrics and
// the API documentation.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(swagger)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.RequestID())
	e.Use(Observe(cfg.Logger, cfg.Observer))
	e.Use(middleware.Recover())
	e.Use(cfg.Server.SessionMiddleware())
	e.Use(validator)

	e.GET("/health", health(cfg.Health))
	e.GET("/metrics", echo.WrapHandler(cfg.Metrics))
	e.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.Blob(http.StatusOK, echo.MIMEApplicationJSON, api.RawSpec())
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET(FeedPath, cfg.Server.OrderFeed(cfg.Feed))

	api.RegisterHandlers(e, cfg.Server)
	return e, nil
}

func health(check func(ctx context.Context) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if check != nil {
			if err := check(ctx.Request().Context()); err != nil {
				return reject(ctx, http.StatusServiceUnavailable, msgStoreUnavailable)
			}
		}
		return respond(ctx, http.StatusOK, "ok", nil)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// OrderFeed upgrades authenticated requests to a websocket served by feed.
func (s *Server) OrderFeed(feed Feed) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		actor, err := actorFrom(ctx)
		if err != nil {
			return s.fail(ctx, err)
		}

		conn, err := upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
		if err != nil {
			// the upgrader has already replied
			s.logger.WarnContext(ctx.Request().Context(), "websocket upgrade failed", "error", err)
			return nil
		}
		feed.Serve(ctx.Request().Context(), conn, actor)
		return nil
	}
}
