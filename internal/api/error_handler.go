package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ladob/catalog-api/internal/core/domain"
)

// ErrorEnvelope is the canonical body of every non-2xx response.
type ErrorEnvelope struct {
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message"`
	Errors     map[string]string `json:"errors"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain errors to their appropriate HTTP status codes.
//   - Renders the uniform envelope {statusCode, message, errors} where
//     message is the HTTP status name and errors holds either one entry per
//     failed field or a single "message" entry.
//   - Logs every mapped error; unexpected errors never leak details to the
//     client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, fields := resolveError(err, log, c)
		_ = c.JSON(code, ErrorEnvelope{
			StatusCode: code,
			Message:    statusName(code),
			Errors:     fields,
		})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, map[string]string) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("request failed")

	// Body-validation failures carry one message per field.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Fields
	}

	var ae *domain.AlreadyExistsError
	if errors.As(err, &ae) {
		return http.StatusBadRequest, singleMessage(ae.Error())
	}

	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, singleMessage(nf.Error())
	}

	switch {
	case errors.Is(err, domain.ErrBadCredentials):
		return http.StatusUnauthorized, singleMessage(domain.ErrBadCredentials.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, singleMessage(domain.ErrUnauthenticated.Error())
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden, singleMessage(domain.ErrAccessDenied.Error())
	}

	// Echo's own errors (bind failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, singleMessage(fmt.Sprintf("%v", he.Message))
	}

	return http.StatusInternalServerError, singleMessage("Internal server error")
}

func singleMessage(msg string) map[string]string {
	return map[string]string{"message": msg}
}

// statusName renders the status the way clients expect it in the envelope,
// e.g. 400 → "BAD_REQUEST".
func statusName(code int) string {
	text := http.StatusText(code)
	if text == "" {
		text = "Unknown Status"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
