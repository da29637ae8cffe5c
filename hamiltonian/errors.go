// SPDX-License-Identifier: MIT
// Package: hamiltonian
//
// errors.go — sentinel errors for the term aggregator.

package hamiltonian

import "errors"

var (
	// ErrIndexOutOfRange indicates PartEnergyAt was called with i ∉ [0, len(terms)).
	ErrIndexOutOfRange = errors.New("hamiltonian: term index out of range")

	// ErrTermNotFound indicates Lookup found no term with the label or prefix.
	ErrTermNotFound = errors.New("hamiltonian: term not found")

	// ErrNilArgument indicates a nil arena or term.
	ErrNilArgument = errors.New("hamiltonian: nil argument")

	// ErrArenaMismatch indicates a term constructed on a different spin arena.
	ErrArenaMismatch = errors.New("hamiltonian: term bound to another arena")

	// ErrDuplicateLabel indicates two terms with the same label.
	ErrDuplicateLabel = errors.New("hamiltonian: duplicate term label")

	// ErrSizeMismatch indicates a field buffer not sized to the arena.
	ErrSizeMismatch = errors.New("hamiltonian: buffer size mismatch")
)
