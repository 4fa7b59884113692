package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shopapi/internal/apperrors"
)

// detail renders the error-body convention {"detail": "..."} with the HTTP
// status mapped from the error kind.
func detail(c *fiber.Ctx, err error) error {
	return c.Status(apperrors.HTTPStatus(err)).JSON(fiber.Map{"detail": err.Error()})
}

// decodeStrict parses a JSON body rejecting unknown fields, so requests with
// an unexpected shape fail with 400 instead of silently passing through.
func decodeStrict(c *fiber.Ctx, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %v: %w", err, apperrors.ErrInvalidInput)
	}
	return nil
}

// newValidator builds a validator that reports fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError turns the first validation failure into an invalid-input
// error with a readable message.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		e := verrs[0]
		if e.Tag() == "required" {
			return fmt.Errorf("missing required field: %s: %w", e.Field(), apperrors.ErrInvalidInput)
		}
		return fmt.Errorf("field '%s' failed on the '%s' rule: %w", e.Field(), e.Tag(), apperrors.ErrInvalidInput)
	}
	return fmt.Errorf("%v: %w", err, apperrors.ErrInvalidInput)
}
