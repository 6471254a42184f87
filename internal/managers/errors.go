package managers

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation targets an id that does
	// not exist. Callers are expected to map it to a 404.
	ErrNotFound = errors.New("record not found")

	// ErrValidation covers constraint violations such as duplicate
	// unique fields or inconsistent input.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is the login failure sentinel. It is never
	// mixed with storage errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ErrDuplicateEmail is a validation error: errors.Is(err, ErrValidation)
// holds for it.
var ErrDuplicateEmail = fmt.Errorf("%w: email already registered", ErrValidation)
