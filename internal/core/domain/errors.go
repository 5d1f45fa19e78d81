package domain

import (
	"errors"
	"fmt"
)

// The two error kinds the core surfaces. Everything else bubbling out of a
// repository is treated as an internal fault by the transport layer.
var (
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
)

// ErrAlreadyDecided is returned by the booking store when a conditional
// WAITING transition matched nothing because another writer got there first.
var ErrAlreadyDecided = errors.New("booking already decided")

// ErrDuplicateEmail is returned by the user store on a unique-index violation.
var ErrDuplicateEmail = errors.New("email already in use")

// NotFoundf builds a NotFound error carrying a human-readable message.
// Callers must branch on the kind (errors.Is), never on the message text.
func NotFoundf(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, ErrNotFound)...)
}

// BadRequestf builds a BadRequest error carrying a human-readable message.
func BadRequestf(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, ErrBadRequest)...)
}
