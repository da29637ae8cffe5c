// SPDX-License-Identifier: MIT
// Package: interaction
//
// modulation.go — spatial profile generators for modulated terms.
//
// Each generator returns a Profile f(r) evaluated at a lattice coordinate.
// Profiles are dimensionless and bounded to [-1, 1] (RectangularStripe to
// {0, 1}); modulated terms use coefficient = base + amplitude·f(r).
//
// Methods (stable integer ids, used by configuration files):
//
//	0 ModCosine          cos(2π (r−c)·d̂/λ + phase)
//	1 ModSquare          +1 on the first duty fraction of each period, −1 after
//	2 ModRadialCosine    cos(2π |r−c|/λ + phase), concentric about the center
//	3 ModStripe          1 inside a stripe |(r−c)·d̂| ≤ width/2, else 0
//
// c is the lattice center site coordinate.

package interaction

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

const methodProfile = "Profile"

// Profile maps a coordinate to a dimensionless modulation value.
type Profile func(r r3.Vec) float64

// ModulationMethod selects a profile generator.
type ModulationMethod int

const (
	ModCosine ModulationMethod = iota
	ModSquare
	ModRadialCosine
	ModStripe
)

// String returns the method name.
func (m ModulationMethod) String() string {
	switch m {
	case ModCosine:
		return "cosine"
	case ModSquare:
		return "square"
	case ModRadialCosine:
		return "radial-cosine"
	case ModStripe:
		return "stripe"
	default:
		return fmt.Sprintf("ModulationMethod(%d)", int(m))
	}
}

// Modulation is the declarative description of a spatial profile.
type Modulation struct {
	Method ModulationMethod
	// Period λ for the periodic methods (> 0).
	Period float64
	// Direction of propagation / stripe normal (ignored by ModRadialCosine).
	Direction r3.Vec
	// Phase offset in radians (cosine methods).
	Phase float64
	// Duty fraction in (0,1) for ModSquare.
	Duty float64
	// Width of the stripe for ModStripe (> 0).
	Width float64
}

// Profile validates m and builds its generator around center.
func (m Modulation) Profile(center r3.Vec) (Profile, error) {
	needDir := m.Method == ModCosine || m.Method == ModSquare || m.Method == ModStripe
	var dir r3.Vec
	if needDir {
		d, err := spin.Normalize(m.Direction)
		if err != nil {
			return nil, fmt.Errorf("%s: %s direction: %w", methodProfile, m.Method, ErrInvalidParameter)
		}
		dir = d
	}

	switch m.Method {
	case ModCosine, ModSquare, ModRadialCosine:
		if !(m.Period > 0) {
			return nil, fmt.Errorf("%s: %s period=%g: %w", methodProfile, m.Method, m.Period, ErrInvalidParameter)
		}
	}

	switch m.Method {
	case ModCosine:
		return CosineWave(center, dir, m.Period, m.Phase), nil
	case ModSquare:
		if !(m.Duty > 0 && m.Duty < 1) {
			return nil, fmt.Errorf("%s: duty=%g: %w", methodProfile, m.Duty, ErrInvalidParameter)
		}
		return SquareWave(center, dir, m.Period, m.Duty), nil
	case ModRadialCosine:
		return RadialCosine(center, m.Period, m.Phase), nil
	case ModStripe:
		if !(m.Width > 0) {
			return nil, fmt.Errorf("%s: width=%g: %w", methodProfile, m.Width, ErrInvalidParameter)
		}
		return RectangularStripe(center, dir, m.Width), nil
	default:
		return nil, fmt.Errorf("%s: method %d: %w", methodProfile, int(m.Method), ErrUnknownModulation)
	}
}

// CosineWave is a plane wave along the unit vector dir.
func CosineWave(center, dir r3.Vec, period, phase float64) Profile {
	k := 2 * math.Pi / period
	return func(r r3.Vec) float64 {
		return math.Cos(k*r3.Dot(r3.Sub(r, center), dir) + phase)
	}
}

// SquareWave is a rectangular wave along dir: +1 for the first duty fraction
// of each period measured from center, −1 for the rest.
func SquareWave(center, dir r3.Vec, period, duty float64) Profile {
	return func(r r3.Vec) float64 {
		x := r3.Dot(r3.Sub(r, center), dir) / period
		frac := x - math.Floor(x)
		if frac < duty {
			return 1
		}
		return -1
	}
}

// RadialCosine is a set of concentric rings about center.
func RadialCosine(center r3.Vec, period, phase float64) Profile {
	k := 2 * math.Pi / period
	return func(r r3.Vec) float64 {
		return math.Cos(k*r3.Norm(r3.Sub(r, center)) + phase)
	}
}

// RectangularStripe is a single stripe of the given width through center,
// normal to dir.
func RectangularStripe(center, dir r3.Vec, width float64) Profile {
	half := width / 2
	return func(r r3.Vec) float64 {
		if math.Abs(r3.Dot(r3.Sub(r, center), dir)) <= half {
			return 1
		}
		return 0
	}
}
