// SPDX-License-Identifier: MIT
// Package: interaction
//
// options.go — functional options shared by all term constructors.
//
// Contract:
//   • Option constructors panic on meaningless input (empty label, order < 1,
//     workers < 1); constructors themselves never panic.
//   • Defaults: label = Kind.String(), order = lattice.Nearest,
//     workers = runtime.GOMAXPROCS(0).

package interaction

import (
	"runtime"

	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
)

// Option customizes a term at construction.
type Option func(*termConfig)

type termConfig struct {
	label   string
	order   int
	workers int
}

func newTermConfig(opts ...Option) termConfig {
	cfg := termConfig{order: lattice.Nearest, workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLabel overrides the output/lookup label. Panics on "".
func WithLabel(label string) Option {
	if label == "" {
		panic("interaction: WithLabel(\"\")")
	}
	return func(c *termConfig) {
		c.label = label
	}
}

// WithOrder selects the neighbor shell for bonded terms. Panics if order < 1.
func WithOrder(order int) Option {
	if order < 1 {
		panic("interaction: WithOrder(order<1)")
	}
	return func(c *termConfig) {
		c.order = order
	}
}

// WithWorkers bounds the goroutines used to build per-site caches
// (dipolar, tip). Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("interaction: WithWorkers(n<1)")
	}
	return func(c *termConfig) {
		c.workers = n
	}
}
