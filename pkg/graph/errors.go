package graph

import (
	"errors"
	"fmt"
)

// Error kinds shared by graph construction and traversal.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrAllocationFailure = errors.New("allocation failure")
)

// Error describes a rejected graph operation.
type Error struct {
	Op    string // Operation that failed (e.g., "Generate", "AddEdge")
	Arg   string // Offending argument name
	Value int64  // Offending argument value
	Cause error  // One of the error kinds above, possibly wrapped
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("%s %s=%d: %v", e.Op, e.Arg, e.Value, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// InvalidArgument builds an Error of kind ErrInvalidArgument.
func InvalidArgument(op, arg string, value int64) error {
	return &Error{Op: op, Arg: arg, Value: value, Cause: ErrInvalidArgument}
}

// AllocationFailure builds an Error of kind ErrAllocationFailure.
func AllocationFailure(op, arg string, value int64, detail string) error {
	cause := ErrAllocationFailure
	if detail != "" {
		cause = fmt.Errorf("%w: %s", ErrAllocationFailure, detail)
	}
	return &Error{Op: op, Arg: arg, Value: value, Cause: cause}
}

// IsInvalidArgument reports whether err is of kind ErrInvalidArgument.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsAllocationFailure reports whether err is of kind ErrAllocationFailure.
func IsAllocationFailure(err error) bool {
	return errors.Is(err, ErrAllocationFailure)
}
