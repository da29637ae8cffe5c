// SPDX-License-Identifier: MIT
// Package: interaction
//
// errors.go — sentinel errors for term construction.
//
// Error policy:
//   • Constructors validate everything up front and return these sentinels
//     wrapped with a method tag ("NewDM: ...: %w").
//   • Evaluation methods never fail: numerical edge cases are neutralized.
//   • ErrMissingTopology is the fatal configuration class; callers must abort
//     setup when they see it.

package interaction

import "errors"

var (
	// ErrMissingTopology indicates the geometry lacks data the term needs
	// (neighbor order, bond vectors, triangles, plaquettes, coordinates).
	ErrMissingTopology = errors.New("interaction: required topology missing")

	// ErrNilArgument indicates a nil geometry or spin arena.
	ErrNilArgument = errors.New("interaction: nil argument")

	// ErrSizeMismatch indicates the arena and geometry disagree on N.
	ErrSizeMismatch = errors.New("interaction: arena and lattice size mismatch")

	// ErrInvalidParameter indicates a meaningless physical parameter.
	ErrInvalidParameter = errors.New("interaction: invalid parameter")

	// ErrUnknownModulation indicates an unsupported modulation method id.
	ErrUnknownModulation = errors.New("interaction: unknown modulation method")

	// ErrBadDefect indicates an override on a missing site, slot or bond,
	// or a neighbor table without reciprocal entries.
	ErrBadDefect = errors.New("interaction: invalid defect override")
)
