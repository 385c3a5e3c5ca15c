package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/99minutos/dpd-compiler/internal/api/handler"
	"github.com/99minutos/dpd-compiler/internal/core/domain"
	"github.com/99minutos/dpd-compiler/internal/core/ports"
	"github.com/99minutos/dpd-compiler/internal/core/service"
	"github.com/99minutos/dpd-compiler/internal/infrastructure/invoker"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps local validation errors to 422 with the offending field.
//   - Maps carrier faults to 502 and an open breaker to 503.
//   - Maps failed logins to 401 and duplicate operators to 409.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, handler.ErrorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, handler.ErrorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	if de, ok := domain.AsError(err); ok {
		if de.Kind == domain.ErrConfiguration {
			logUnhandled(log, c, err, "configuration error")
			return http.StatusInternalServerError, handler.ErrorResponse{Error: "service misconfigured"}
		}
		return http.StatusUnprocessableEntity, handler.ErrorResponse{
			Error:   de.Error(),
			Kind:    de.Kind.Error(),
			Field:   de.Field,
			Allowed: de.Allowed,
		}
	}

	var fault *ports.RemoteFault
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, handler.ErrorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrOperatorExists):
		return http.StatusConflict, handler.ErrorResponse{Error: err.Error()}
	case errors.As(err, &fault):
		return http.StatusBadGateway, handler.ErrorResponse{Error: fault.Message, Kind: "remote fault", Field: fault.Code}
	case errors.Is(err, invoker.ErrCircuitOpen), errors.Is(err, gobreaker.ErrTooManyRequests):
		return http.StatusServiceUnavailable, handler.ErrorResponse{Error: "carrier temporarily unavailable"}
	case errors.Is(err, service.ErrNoInvoker):
		return http.StatusServiceUnavailable, handler.ErrorResponse{Error: "submission is disabled"}
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, handler.ErrorResponse{Error: "carrier did not answer in time"}
	case errors.Is(err, invoker.ErrTransport):
		log.Warn().Err(err).Str("path", c.Path()).Msg("carrier gateway unreachable")
		return http.StatusBadGateway, handler.ErrorResponse{Error: "carrier gateway unreachable"}
	}

	// Unexpected error: log the real cause, return a generic message.
	logUnhandled(log, c, err, "unhandled error")
	return http.StatusInternalServerError, handler.ErrorResponse{Error: "internal server error"}
}

func logUnhandled(log zerolog.Logger, c echo.Context, err error, msg string) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg(msg)
}
