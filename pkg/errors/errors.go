// Package errors provides structured error handling for the headless toolkit.
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
	// KindConfig indicates a widget configuration error, such as a scoped
	// widget used outside its required ancestor.
	KindConfig
	// KindBuild indicates a build-time widget error.
	KindBuild
	// KindDispatch indicates an event dispatch failure.
	KindDispatch
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindBuild:
		return "build"
	case KindDispatch:
		return "dispatch"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ToolkitError represents a structured error in the headless toolkit.
type ToolkitError struct {
	// Op is the operation that failed (e.g., "host.Document.DispatchKey").
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

func (e *ToolkitError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ToolkitError) Unwrap() error {
	return e.Err
}

// MissingContextError reports a scoped widget used without its required
// ancestor. It is raised during build and is not recoverable internally;
// the consumer must fix the widget tree.
type MissingContextError struct {
	// Component is the type name of the offending child widget.
	Component string
	// Scope is the type name of the missing ancestor widget.
	Scope string
}

func (e *MissingContextError) Error() string {
	return fmt.Sprintf("%s must be placed inside a %s", e.Component, e.Scope)
}

// Kind returns KindConfig for all missing context errors.
func (e *MissingContextError) Kind() ErrorKind {
	return KindConfig
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "host.Node.Click").
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

// BuildError represents a failure during widget build.
type BuildError struct {
	// Widget is the type name of the widget that failed.
	Widget string
	// Element is the element type (StatelessElement, StatefulElement, etc.).
	Element string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.Build(): %v", e.Widget, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s.Build(): %v", e.Widget, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.Build()", e.Widget)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ToolkitError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when a widget build fails.
	HandleBuildError(err *BuildError)
}
