// Package apperrors defines the error kinds shared by services and handlers.
// Services wrap these sentinels with fmt.Errorf("...: %w", ...) so handlers
// can map an error chain to an HTTP status without string matching.
package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	// ErrInvalidInput marks a missing required field, a bad status value or
	// a malformed query parameter.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnauthorized marks bad credentials or a bad token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound marks a missing category, product or order.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState marks insufficient stock and attempts to mutate a
	// terminal order.
	ErrInvalidState = errors.New("invalid state")
)

// HTTPStatus maps an error chain to its response status. Unknown errors are
// internal failures.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidState):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
