// SPDX-License-Identifier: MIT
// Package: measurement
//
// errors.go — sentinel errors for measurement orchestration.

package measurement

import "errors"

var (
	// ErrNilArgument indicates a nil observable, sink or writer.
	ErrNilArgument = errors.New("measurement: nil argument")

	// ErrNoObservables indicates New was called with an empty list.
	ErrNoObservables = errors.New("measurement: no observables")
)
