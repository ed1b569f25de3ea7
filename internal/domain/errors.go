package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDigits  = errors.New("digit count must be a positive integer")
	ErrRangeExhausted = errors.New("no prime in range")
)

// InvalidInputError carries the raw input that failed to parse as a digit count.
type InvalidInputError struct {
	Input string
	Err   error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid digit count %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("invalid digit count %q", e.Input)
}

// Unwrap exposes both the parse failure and ErrInvalidDigits to errors.Is.
func (e *InvalidInputError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidDigits, e.Err}
	}
	return []error{ErrInvalidDigits}
}
