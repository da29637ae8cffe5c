// SPDX-License-Identifier: MIT
// Package: observable
//
// errors.go — sentinel errors for observables.

package observable

import "errors"

var (
	// ErrCapacityExceeded indicates TakeValue was called on a full window.
	ErrCapacityExceeded = errors.New("observable: capacity exceeded")

	// ErrBufferNotFull indicates MeanValue before Capacity() samples were taken.
	ErrBufferNotFull = errors.New("observable: buffer not full")

	// ErrStepOutOfRange indicates StepValue(i) with i ∉ [0, Index()).
	ErrStepOutOfRange = errors.New("observable: step index out of range")

	// ErrNonPositiveTemperature indicates a fluctuation quantity at T ≤ 0.
	ErrNonPositiveTemperature = errors.New("observable: non-positive temperature")

	// ErrNilArgument indicates a nil arena, Hamiltonian or geometry.
	ErrNilArgument = errors.New("observable: nil argument")

	// ErrNotSiteResolved indicates per-site means on an observable built
	// without WithSiteResolved.
	ErrNotSiteResolved = errors.New("observable: site resolution not enabled")

	// ErrSizeMismatch indicates an arena not sized to the geometry.
	ErrSizeMismatch = errors.New("observable: arena and lattice size mismatch")

	// ErrMissingTopology indicates the geometry lacks neighbors or triangles.
	ErrMissingTopology = errors.New("observable: required topology missing")
)
