// Package errors provides structured error reporting for the edgeframe engine.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConstraint indicates a constraint-system consistency error.
	KindConstraint
	// KindFixture indicates misuse of the fixture construction path.
	KindFixture
	// KindAttach indicates a failure while handling an attachment event.
	KindAttach
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConstraint:
		return "constraint"
	case KindFixture:
		return "fixture"
	case KindAttach:
		return "attach"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// FrameError represents a structured error in the edgeframe engine.
type FrameError struct {
	// Op is the operation that failed (e.g., "anchor.System.Layout").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "extension.Region.recompute").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// FixtureError represents misuse of a fixture type's required construction
// path. A fixture that was not materialized through its constructor cannot
// be installed; the engine reports this error and then panics with it.
type FixtureError struct {
	// Role is the fixture role being installed ("background", "separator").
	Role string
	// Got describes the offending value.
	Got any
}

func (e *FixtureError) Error() string {
	return fmt.Sprintf("fixture for role %s was not created through a fixture constructor: got %T", e.Role, e.Got)
}

// ErrorHandler receives errors reported by the engine.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FrameError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
