// SPDX-License-Identifier: MIT
// Package: lattice
//
// options.go — functional options for the fixture builders.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves never panic; they return sentinel errors.
//   • newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • spacing     = 1.0
//   • periodic    = builder specific (Ring: true, Square: false)
//   • nextNearest = false

package lattice

// Option customizes a fixture builder.
type Option func(*builderConfig)

type builderConfig struct {
	spacing     float64
	periodic    *bool // nil → builder default
	nextNearest bool
}

const defaultSpacing = 1.0

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{spacing: defaultSpacing}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// periodicOr resolves the boundary policy against the builder default.
func (c builderConfig) periodicOr(def bool) bool {
	if c.periodic == nil {
		return def
	}

	return *c.periodic
}

// WithSpacing sets the lattice constant. Panics if a <= 0.
func WithSpacing(a float64) Option {
	if a <= 0 {
		panic("lattice: WithSpacing(a<=0)")
	}
	return func(c *builderConfig) {
		c.spacing = a
	}
}

// WithPeriodic selects periodic (true) or open (false) boundaries.
func WithPeriodic(p bool) Option {
	return func(c *builderConfig) {
		c.periodic = &p
	}
}

// WithNextNearest additionally builds the next-nearest-neighbor layer.
func WithNextNearest() Option {
	return func(c *builderConfig) {
		c.nextNearest = true
	}
}
