// SPDX-License-Identifier: MIT
// Package: hamiltonian
//
// options.go — functional options for New.
//
// Defaults:
//   • logger  = slog.Default()
//   • workers = runtime.GOMAXPROCS(0)

package hamiltonian

import (
	"log/slog"
	"runtime"
)

// Option customizes a Hamiltonian.
type Option func(*Hamiltonian)

// WithLogger routes usage-error diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("hamiltonian: WithLogger(nil)")
	}
	return func(h *Hamiltonian) {
		h.logger = l
	}
}

// WithWorkers bounds the goroutines used by Fields. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("hamiltonian: WithWorkers(n<1)")
	}
	return func(h *Hamiltonian) {
		h.workers = n
	}
}

func defaultWorkers() int { return runtime.GOMAXPROCS(0) }
