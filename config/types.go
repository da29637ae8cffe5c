// SPDX-License-Identifier: MIT
// Package: config
//
// types.go — the YAML schema of a system file.

package config

import "gonum.org/v1/gonum/spatial/r3"

// Lattice kinds.
const (
	LatticeRing   = "ring"
	LatticeSquare = "square"
)

// Vec is a Cartesian vector written as a three-element YAML sequence.
type Vec [3]float64

// R3 converts v to an r3.Vec.
func (v Vec) R3() r3.Vec { return r3.Vec{X: v[0], Y: v[1], Z: v[2]} }

// vecOr returns the converted v, or def when v is absent.
func vecOr(v *Vec, def r3.Vec) r3.Vec {
	if v == nil {
		return def
	}

	return v.R3()
}

// System is the root of a system file.
type System struct {
	Lattice Lattice `yaml:"lattice"`
	Spins   Spins   `yaml:"spins"`
	Terms   []Term  `yaml:"terms" validate:"required,min=1,dive"`
	// Workers bounds cache and field goroutines; 0 keeps the defaults.
	Workers int `yaml:"workers" validate:"gte=0"`
}

// Lattice selects a fixture builder.
type Lattice struct {
	Kind  string `yaml:"kind" validate:"required,oneof=ring square"`
	Sites int    `yaml:"sites" validate:"required_if=Kind ring,gte=0"`
	Rows  int    `yaml:"rows" validate:"required_if=Kind square,gte=0"`
	Cols  int    `yaml:"cols" validate:"required_if=Kind square,gte=0"`
	// Spacing is the lattice constant; 0 keeps the builder default.
	Spacing float64 `yaml:"spacing" validate:"gte=0"`
	// Periodic overrides the builder's boundary default when set.
	Periodic    *bool `yaml:"periodic"`
	NextNearest bool  `yaml:"next_nearest"`
}

// Spins is the initial configuration: explicit values, or a uniform
// direction (default +z) when Values is empty.
type Spins struct {
	Direction *Vec  `yaml:"direction"`
	Values    []Vec `yaml:"values"`
}

// Term describes one interaction term. Each kind reads its own subset of
// the fields:
//
//	Exchange, Biquadratic, FourSpin, ThreeSpin, Dipolar: strength
//	DM:                  strength, convention, axis
//	Uniaxial:            strength, axis
//	Hexagonal:           k1, k2, k6, axis, reference
//	Zeeman:              strength, direction
//	Tip:                 strength, direction, position, decay
//	ModulatedExchange:   strength, amplitude, modulation
//	ModulatedAnisotropy: strength, amplitude, axis, modulation
//	DefectExchange:      strength, overrides
//	DefectDM:            strength, convention, axis, overrides
//	DefectAnisotropy:    strength, axis, defects
type Term struct {
	Kind  string `yaml:"kind" validate:"required,oneof=Exchange DM Biquadratic FourSpin ThreeSpin Dipolar Uniaxial Hexagonal Zeeman Tip ModulatedExchange ModulatedAnisotropy DefectExchange DefectDM DefectAnisotropy"`
	Label string `yaml:"label"`
	// Order is the neighbor shell of bonded terms; 0 keeps nearest.
	Order int `yaml:"order" validate:"gte=0"`

	Strength   float64 `yaml:"strength"`
	Amplitude  float64 `yaml:"amplitude"`
	Convention string  `yaml:"convention" validate:"omitempty,oneof=Neel Chiral"`
	Axis       *Vec    `yaml:"axis"`
	Direction  *Vec    `yaml:"direction"`
	Position   *Vec    `yaml:"position"`
	Reference  *Vec    `yaml:"reference"`
	Decay      float64 `yaml:"decay" validate:"gte=0"`

	K1 float64 `yaml:"k1"`
	K2 float64 `yaml:"k2"`
	K6 float64 `yaml:"k6"`

	Modulation *Modulation     `yaml:"modulation"`
	Overrides  []Override      `yaml:"overrides" validate:"dive"`
	Defects    map[int]float64 `yaml:"defects"`
}

// Override replaces the coefficient of one bond, or of every bond of Site
// when Slot is absent.
type Override struct {
	Site  int     `yaml:"site" validate:"gte=0"`
	Slot  *int    `yaml:"slot" validate:"omitempty,gte=0"`
	Value float64 `yaml:"value"`
}

// Modulation describes a spatial profile by method name.
type Modulation struct {
	Method    string  `yaml:"method" validate:"required,oneof=cosine square radial-cosine stripe"`
	Period    float64 `yaml:"period" validate:"gte=0"`
	Direction *Vec    `yaml:"direction"`
	Phase     float64 `yaml:"phase"`
	Duty      float64 `yaml:"duty" validate:"gte=0,lte=1"`
	Width     float64 `yaml:"width" validate:"gte=0"`
}
