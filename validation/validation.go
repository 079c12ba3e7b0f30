// SPDX-License-Identifier: MIT
// Package: infotrace/validation
//
// validation.go — the single error class shared by every engine.
//
// Error policy:
//   • Each engine package owns its sentinels (errors.New("huffman: ...")).
//   • Input rejections are returned as *Error, which unwraps to BOTH
//     ErrValidation and the package sentinel, so callers may branch on either.
//   • Validation runs before any step is emitted; no partial result accompanies an *Error.

package validation

import (
	"errors"
	"fmt"
)

// ErrValidation classifies malformed or out-of-range input.
// Usage: if errors.Is(err, validation.ErrValidation) { /* report to user */ }.
var ErrValidation = errors.New("validation error")

// Error carries the failing operation, the package sentinel and optional detail.
type Error struct {
	// Op is the operation tag, e.g. "huffman.Build".
	Op string

	// Err is the package-level sentinel describing the violated rule.
	Err error

	// Detail is a human-readable qualifier (may be empty).
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Detail)
}

// Unwrap exposes both the class sentinel and the package sentinel to errors.Is.
func (e *Error) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}

// New returns an *Error for op wrapping sentinel, with no detail.
func New(op string, sentinel error) error {
	return &Error{Op: op, Err: sentinel}
}

// Newf returns an *Error for op wrapping sentinel with a formatted detail.
func Newf(op string, sentinel error, format string, args ...any) error {
	return &Error{Op: op, Err: sentinel, Detail: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a validation failure.
func Is(err error) bool {
	return errors.Is(err, ErrValidation)
}
