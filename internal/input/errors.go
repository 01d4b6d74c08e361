package input

import (
	"errors"
	"fmt"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrInvalidInput matches every *InvalidInputError via errors.Is.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotANumber indicates text that does not parse as a number.
	ErrNotANumber = constError("value must be a number")

	// ErrEmptyOrganization indicates a blank organization name.
	ErrEmptyOrganization = constError("organization name cannot be empty")

	// ErrAttemptsExhausted indicates the prompt attempt limit was reached.
	ErrAttemptsExhausted = constError("too many invalid attempts")
)

// InvalidInputError is returned by providers that could not obtain a valid
// value for a field.
type InvalidInputError struct {
	// Field is the input key, e.g. "gas_bill" or "organization".
	Field string
	// Value is the rejected raw text, when there was one.
	Value string
	Err   error
}

func (e *InvalidInputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid input for %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid input for %s (%q): %v", e.Field, e.Value, e.Err)
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInvalidInput) true for any InvalidInputError.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
