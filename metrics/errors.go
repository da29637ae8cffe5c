// SPDX-License-Identifier: MIT
// Package: metrics
//
// errors.go — sentinel errors for the Prometheus sink.

package metrics

import "errors"

var (
	// ErrColumnMismatch indicates a Point whose value count differs from the
	// column header the sink was built with.
	ErrColumnMismatch = errors.New("metrics: point does not match columns")

	// ErrNilArgument indicates a nil registerer.
	ErrNilArgument = errors.New("metrics: nil argument")
)
