package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"logistics/internal/core/application/auth"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

const tokenQueryParam = "access_token"

// HTTPObserver records request counts and latencies.
type HTTPObserver interface {
	ObserveHTTP(method, path string, status int, elapsed time.Duration)
}

// SessionMiddleware resolves a bearer token into a session and stores it in the request
// context. Requests without a token pass through; operations that need an actor reject
// them later. The live feed may pass the token as a query parameter because browsers
// cannot set headers on websocket handshakes.
func (s *Server) SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := bearerToken(ctx.Request())
			if token == "" && ctx.Path() == FeedPath {
				token = ctx.QueryParam(tokenQueryParam)
			}
			if token == "" {
				return next(ctx)
			}

			session, err := s.auth.Authenticate(ctx.Request().Context(), token)
			if err != nil {
				return s.fail(ctx, err)
			}

			req := ctx.Request()
			ctx.SetRequest(req.WithContext(auth.WithSession(req.Context(), session)))
			return next(ctx)
		}
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(h[len(prefix):])
}

// Observe logs every request and reports it to observer, labelled by route template
// so that ids in paths do not explode metric cardinality.
func Observe(logger *slog.Logger, observer HTTPObserver) echo.MiddlewareFunc {
	logger = logger.With("component", "http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			if err := next(ctx); err != nil {
				ctx.Error(err)
			}
			elapsed := time.Since(start)

			req := ctx.Request()
			path := ctx.Path()
			if path == "" {
				path = "unmatched"
			}
			status := ctx.Response().Status
			observer.ObserveHTTP(req.Method, path, status, elapsed)

			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(req.Context(), level, "request",
				"method", req.Method,
				"path", path,
				"status", status,
				"duration_ms", elapsed.Milliseconds(),
				"request_id", ctx.Response().Header().Get(echo.HeaderXRequestID),
			)
			return nil
		}
	}
}

// RequestValidator checks requests to documented operations against swagger.
// Requests outside the document are passed through untouched.
func RequestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(swagger)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err := openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return reject(ctx, http.StatusBadRequest, firstLine(err.Error()))
			}
			return next(ctx)
		}
	}, nil
}

// firstLine drops the schema dump kin-openapi appends to body validation errors.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
