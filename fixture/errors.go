// SPDX-License-Identifier: MIT

package fixture

import (
	"errors"
	"fmt"
)

var (
	// ErrArgument is the class of all command-line dimension errors.
	// Every *ArgumentError matches it via errors.Is.
	ErrArgument = errors.New("fixture: invalid dimension arguments")

	// ErrArgCount: not exactly three dimension tokens.
	ErrArgCount = errors.New("fixture: want exactly 3 dimensions (rows inner cols)")

	// ErrArgNotInteger: a token is not a base-10 integer.
	ErrArgNotInteger = errors.New("fixture: dimension is not an integer")

	// ErrArgNotPositive: a token parsed to a value <= 0.
	ErrArgNotPositive = errors.New("fixture: dimension must be > 0")

	// ErrNoJobs is returned by Run when called without jobs.
	ErrNoJobs = errors.New("fixture: no jobs")

	// ErrVerifyFailed means a stored answer does not equal A·B.
	ErrVerifyFailed = errors.New("fixture: verification failed")

	// ErrManifestVersion means manifest.yaml names a file format this
	// build cannot read.
	ErrManifestVersion = errors.New("fixture: unsupported manifest format version")
)

// ArgumentError describes one rejected dimension argument list.
// It unwraps to both ErrArgument and the specific cause.
type ArgumentError struct {
	Index int    // offending token, -1 for count errors
	Value string // offending token text
	Err   error  // ErrArgCount, ErrArgNotInteger or ErrArgNotPositive
}

func (e *ArgumentError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %v", ErrArgument, e.Err)
	}

	return fmt.Sprintf("%v: argument %d (%q): %v", ErrArgument, e.Index+1, e.Value, e.Err)
}

// Unwrap exposes ErrArgument and the cause to errors.Is.
func (e *ArgumentError) Unwrap() []error { return []error{ErrArgument, e.Err} }
