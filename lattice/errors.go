// SPDX-License-Identifier: MIT
// Package: lattice
//
// errors.go — sentinel errors for geometry access and fixture builders.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Context is attached with %w at the method boundary ("Square: ...: %w").

package lattice

import "errors"

// ErrTooFewSites indicates a builder size parameter below its minimum.
var ErrTooFewSites = errors.New("lattice: parameter too small")

// ErrNoTopology indicates that a neighbor order, bond-vector table,
// triangle list or plaquette list was requested but never supplied.
var ErrNoTopology = errors.New("lattice: topology not available")

// ErrBadTable indicates a neighbor or bond table whose length does not match
// NumSites()*Width, or a neighbor index outside the lattice.
var ErrBadTable = errors.New("lattice: malformed neighbor table")

// ErrSiteOutOfRange indicates a site index outside [0, NumSites()).
var ErrSiteOutOfRange = errors.New("lattice: site index out of range")
