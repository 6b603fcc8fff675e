package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrInvalidArgument reports a malformed constructor or option argument:
	// a non-table input, a negative threshold, a ratio outside [0,1], or a
	// forbidden option flag.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidInput reports data a numeric analysis cannot work with:
	// a non-numeric sequence, or one whose values are all missing.
	ErrInvalidInput = errors.New("invalid input")

	ErrNotFound       = errors.New("resource not found")
	ErrColumnNotFound = fmt.Errorf("%w: column", ErrNotFound)
)

// Error constructors with context
func NewInvalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func NewInvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func NewColumnNotFound(name string) error {
	return fmt.Errorf("%w %q", ErrColumnNotFound, name)
}

// Error checking helpers
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
