package http

import (
	"errors"
	"net/http"
	"strings"

	"logistics/internal/adapters/in/http/api"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type uuidParam = openapi_types.UUID

const (
	msgStoreUnavailable = "storage is unavailable"
	msgInternal         = "internal error"
)

func respond(ctx echo.Context, code int, message string, data any) error {
	return ctx.JSON(code, api.Envelope{Success: true, Message: message, Data: data})
}

func reject(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, api.Envelope{Success: false, Message: message})
}

func malformedBody(ctx echo.Context) error {
	return reject(ctx, http.StatusBadRequest, "request body is malformed")
}

// StatusOf maps an error kind to the HTTP status it is reported with.
func StatusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindInvalidInput:
		return http.StatusUnprocessableEntity
	case errs.KindInvalidTransition, errs.KindConflict:
		return http.StatusConflict
	case errs.KindStoreUnavailable:
		return http.StatusServiceUnavailable
	case errs.KindNotAuthenticated:
		return http.StatusUnauthorized
	case errs.KindPermissionDenied:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// fail renders err as a single user-facing message. Store and unexpected failures are
// logged with their cause and reported generically.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := StatusOf(err)
	switch code {
	case http.StatusServiceUnavailable:
		s.logger.ErrorContext(ctx.Request().Context(), "store failure",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		return reject(ctx, code, msgStoreUnavailable)
	case http.StatusInternalServerError:
		s.logger.ErrorContext(ctx.Request().Context(), "unexpected failure",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		return reject(ctx, code, msgInternal)
	default:
		return reject(ctx, code, message(err))
	}
}

// message flattens joined validation errors onto one line.
func message(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", "; ")
}

// ErrorHandler renders errors that never reached a Server method, such as unknown
// routes or parameters that could not be bound, in the response envelope.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := msgInternal
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = reject(ctx, code, msg)
}
