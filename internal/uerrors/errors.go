package uerrors

import (
	"errors"
	"fmt"
)

// Kind classifies why a solver operation failed.
type Kind int

const (
	// InvalidInput marks a malformed instance file, config, or an unknown
	// operator name. The run is aborted for that instance.
	InvalidInput Kind = iota
	// NoSolution marks an instance that cannot be covered, or a
	// restricted greedy that cannot complete under its restriction.
	NoSolution
	// InternalInvariant marks a bookkeeping mismatch caught by a debug
	// assertion (RWLS score/weight invariants). Continuing would corrupt
	// the search, so the run aborts.
	InternalInvariant
)

// String renders the Kind for logs and CLI exit messages.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid-input"
	case NoSolution:
		return "no-solution"
	case InternalInvariant:
		return "internal-invariant"
	default:
		return "unknown"
	}
}

// Error wraps an underlying error with a Kind classification.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

// Unwrap exposes the wrapped error to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// New builds a classified error from a message.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Err: errors.New(msg)}
}

// Wrap classifies err under kind, or returns nil if err is nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// Wrapf classifies a formatted error under kind.
func Wrapf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// As reports whether err (or something it wraps) is a *Error and returns
// it, mirroring the standard errors.As pattern used throughout the
// teacher's own sentinel-error idiom.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// KindOf returns the Kind of err, or InternalInvariant if err was not
// produced by this package (a defensive default: an unclassified error
// reaching a caller that expects a Kind is itself a bookkeeping bug).
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return InternalInvariant
}
