// SPDX-License-Identifier: MIT
// Package: spin
//
// errors.go — sentinel errors for the spin arena.
//
// Callers branch with errors.Is; implementations attach context with %w.

package spin

import "errors"

var (
	// ErrLengthMismatch indicates that a replacement buffer does not hold
	// exactly Len() spins.
	ErrLengthMismatch = errors.New("spin: buffer length mismatch")

	// ErrEmptyConfiguration indicates that an arena was requested for zero sites.
	ErrEmptyConfiguration = errors.New("spin: empty configuration")

	// ErrZeroVector indicates that a spin direction has zero length and
	// cannot be normalized.
	ErrZeroVector = errors.New("spin: zero-length direction")

	// ErrSiteOutOfRange indicates a site index outside [0, Len()).
	ErrSiteOutOfRange = errors.New("spin: site index out of range")
)
