// SPDX-License-Identifier: MIT
// Package: spin
//
// arena.go — the single owned spin buffer referenced by all consumers.
//
// Contract:
//   • Len() is fixed at construction; Rebind only accepts buffers of that length.
//   • At/Spins never copy; callers must treat the returned data as read-only.
//   • Set normalizes the stored vector; zero vectors are rejected.
//
// Complexity:
//   • At, Set, Rebind: O(1). Magnetisation: O(N).

package spin

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	methodNew    = "New"
	methodRebind = "Rebind"
	methodSet    = "Set"
)

// Arena holds the current spin buffer. The zero value is not usable; build
// one with New or Uniform.
type Arena struct {
	spins []r3.Vec
	n     int
}

// New wraps buf without copying it. The buffer identity is retained, so a
// driver that mutates buf in place is observed by every holder of the Arena.
func New(buf []r3.Vec) (*Arena, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrEmptyConfiguration)
	}

	return &Arena{spins: buf, n: len(buf)}, nil
}

// Uniform allocates n spins all pointing along dir (normalized).
// It panics on n <= 0 or a zero direction: both are programmer errors in
// fixture construction.
func Uniform(n int, dir r3.Vec) *Arena {
	if n <= 0 {
		panic("spin: Uniform(n<=0)")
	}
	u, err := Normalize(dir)
	if err != nil {
		panic("spin: Uniform(zero direction)")
	}

	buf := make([]r3.Vec, n)
	for i := range buf {
		buf[i] = u
	}

	return &Arena{spins: buf, n: n}
}

// Len returns the number of sites N.
func (a *Arena) Len() int { return a.n }

// At returns the spin at site i. The index is not checked; interaction
// kernels call this in their innermost loops.
func (a *Arena) At(i int) r3.Vec { return a.spins[i] }

// Spins exposes the live buffer (read-only by convention).
func (a *Arena) Spins() []r3.Vec { return a.spins }

// Set stores the normalized direction v at site i.
func (a *Arena) Set(i int, v r3.Vec) error {
	if i < 0 || i >= a.n {
		return fmt.Errorf("%s: site=%d, n=%d: %w", methodSet, i, a.n, ErrSiteOutOfRange)
	}
	u, err := Normalize(v)
	if err != nil {
		return fmt.Errorf("%s: site=%d: %w", methodSet, i, err)
	}
	a.spins[i] = u

	return nil
}

// Rebind replaces the buffer identity. Every term and observable holding this
// Arena reads buf from the next call on.
func (a *Arena) Rebind(buf []r3.Vec) error {
	if len(buf) != a.n {
		return fmt.Errorf("%s: got %d spins, want %d: %w", methodRebind, len(buf), a.n, ErrLengthMismatch)
	}
	a.spins = buf

	return nil
}

// Magnetisation returns Σ_i S_i (not normalized).
func (a *Arena) Magnetisation() r3.Vec {
	var m r3.Vec
	for _, s := range a.spins {
		m = r3.Add(m, s)
	}

	return m
}
