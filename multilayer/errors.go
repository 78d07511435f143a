// SPDX-License-Identifier: MIT
// Package: densim/multilayer
//
// errors.go — sentinel errors for the multilayer package.
//
// Error policy:
//   - Callers branch with errors.Is on the sentinels below.
//   - Parse failures are returned as *MalformedInputError, which unwraps to
//     ErrMalformedInput and carries the offending line.

package multilayer

import (
	"errors"
	"fmt"
)

// ErrMalformedInput indicates a record that is not "<layer> <a> <b>" with integer fields.
var ErrMalformedInput = errors.New("multilayer: malformed input")

// ErrUnknownMode indicates an unsupported element mode name.
var ErrUnknownMode = errors.New("multilayer: unknown mode")

// ErrInconsistentInput indicates that FromElements received data that cannot
// describe a graph (length mismatch, duplicate element, empty layer set).
var ErrInconsistentInput = errors.New("multilayer: inconsistent element data")

// MalformedInputError reports the line that failed to parse.
type MalformedInputError struct {
	Line   int    // 1-based line number
	Text   string // raw line content
	Reason string // what was wrong with it
}

// Error implements error.
func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("multilayer: line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Unwrap returns ErrMalformedInput so errors.Is works on the typed error.
func (e *MalformedInputError) Unwrap() error { return ErrMalformedInput }
