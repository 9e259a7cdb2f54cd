// Package apperr holds the error kinds surfaced by the API and their HTTP
// mapping.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"lifeplan/pkg/logger"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
)

// Invalid wraps ErrValidation with a caller-facing reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound wraps ErrNotFound with the missing resource name.
func NotFound(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotFound)
}

// Status maps err to the response status code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// JSON writes err as {"error": ...}. Internal failures are logged and
// reported generically.
func JSON(c echo.Context, err error) error {
	status := Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"err", err,
		)
		msg = "internal server error"
	}
	return c.JSON(status, map[string]string{"error": msg})
}
