package services

import (
	"errors"
	"fmt"
)

// Business-rule failures. Controllers translate these into HTTP statuses;
// nothing below the controller layer knows about status codes.
var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// ValidationError marks malformed input on a single field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
