// SPDX-License-Identifier: MIT
// Package: measurement
//
// options.go — functional options for New.

package measurement

import "log/slog"

// Option customizes a Measurement.
type Option func(*Measurement)

// WithLogger routes diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("measurement: WithLogger(nil)")
	}
	return func(m *Measurement) {
		m.logger = l
	}
}

// WithSink forwards every ensemble point to s. May be repeated; sinks are
// called in the order given. Panics on nil.
func WithSink(s Sink) Option {
	if s == nil {
		panic("measurement: WithSink(nil)")
	}
	return func(m *Measurement) {
		m.sinks = append(m.sinks, s)
	}
}
