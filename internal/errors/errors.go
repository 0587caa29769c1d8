// Package errors is the single import for error construction and inspection.
// Matching goes through the standard library; wrapping records a stack via pkg/errors.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error {
	return stderrors.New(text)
}

func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Wrap annotates err with message and a stack trace. A nil err stays nil.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack records the caller's stack on err without changing its message.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Errorf builds a new error with a stack trace.
func Errorf(format string, args ...any) error {
	return pkgerrors.Errorf(format, args...)
}
