package views

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput reports a missing or malformed required id.
	ErrInvalidInput = errors.New("views: invalid input")
	// ErrNotFound reports a well-formed query that legitimately yields
	// nothing where absence is meaningful, e.g. a thread with no messages.
	ErrNotFound = errors.New("views: not found")
)

// StoreError wraps the first underlying fetch failure of a builder call.
// A builder never returns partial results; the whole call fails with the
// original cause attached.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("views: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
