// SPDX-License-Identifier: MIT
// Package: interaction
//
// impl_zeeman.go — uniform Zeeman field and localized tip field.
//
// Zeeman:
//   • E_s = −B d̂·S_s; H_s = B d̂. Factor 1.
//
// Tip (point source above the sample):
//   • w_s = exp(−|r_s − p| / λ), cached per site.
//   • E_s = −B w_s d̂·S_s; H_s = B w_s d̂. Factor 1.
//
// Live parameters:
//   • Both terms expose Update(params) as the only way to change strength,
//     direction or tip position after construction. Update validates first
//     and leaves the term unchanged on error.
//   • Tip.Update recomputes the per-site cache in parallel over disjoint
//     chunks (errgroup); coordinates are read-only.

package interaction

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

const (
	methodNewZeeman = "NewZeeman"
	methodNewTip    = "NewTip"
	methodUpdate    = "Update"
)

// ZeemanParams is the live configuration of a uniform field.
type ZeemanParams struct {
	Strength  float64
	Direction r3.Vec
}

// Zeeman is the uniform external field term.
type Zeeman struct {
	base
	params ZeemanParams
	field  r3.Vec
}

// NewZeeman builds a Zeeman term.
func NewZeeman(arena *spin.Arena, p ZeemanParams, opts ...Option) (*Zeeman, error) {
	if err := checkArena(methodNewZeeman, nil, arena); err != nil {
		return nil, err
	}
	z := &Zeeman{base: newBase(KindZeeman, FactorSingle, arena, newTermConfig(opts...))}
	if err := z.Update(p); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewZeeman, err)
	}

	return z, nil
}

// Update replaces strength and direction.
func (z *Zeeman) Update(p ZeemanParams) error {
	d, err := spin.Normalize(p.Direction)
	if err != nil {
		return fmt.Errorf("%s: direction %v: %w", methodUpdate, p.Direction, ErrInvalidParameter)
	}
	z.params = ZeemanParams{Strength: p.Strength, Direction: d}
	z.field = r3.Scale(p.Strength, d)

	return nil
}

// Params returns the current (normalized) configuration.
func (z *Zeeman) Params() ZeemanParams { return z.params }

// SiteEnergy implements Term.
func (z *Zeeman) SiteEnergy(s int) float64 { return -r3.Dot(z.field, z.arena.At(s)) }

// Field implements Term.
func (z *Zeeman) Field(int) r3.Vec { return z.field }

// TipParams is the live configuration of a tip field.
type TipParams struct {
	Strength  float64
	Direction r3.Vec
	Position  r3.Vec
	// Decay is the exponential decay length λ (> 0).
	Decay float64
}

// Tip is the exponentially decaying point-source field.
type Tip struct {
	base
	params  TipParams
	coords  []r3.Vec
	weights []float64
	workers int
}

// NewTip builds a tip term over the lattice coordinates.
func NewTip(geo lattice.Geometry, arena *spin.Arena, p TipParams, opts ...Option) (*Tip, error) {
	if geo == nil {
		return nil, fmt.Errorf("%s: geometry: %w", methodNewTip, ErrNilArgument)
	}
	if err := checkArena(methodNewTip, geo, arena); err != nil {
		return nil, err
	}
	coords := geo.Coordinates()
	if len(coords) != geo.NumSites() {
		return nil, fmt.Errorf("%s: %d coordinates for %d sites: %w", methodNewTip, len(coords), geo.NumSites(), ErrMissingTopology)
	}

	cfg := newTermConfig(opts...)
	t := &Tip{
		base:    newBase(KindTip, FactorSingle, arena, cfg),
		coords:  coords,
		weights: make([]float64, len(coords)),
		workers: cfg.workers,
	}
	if err := t.Update(p); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNewTip, err)
	}

	return t, nil
}

// Update replaces the tip configuration and recomputes the decay cache.
func (t *Tip) Update(p TipParams) error {
	d, err := spin.Normalize(p.Direction)
	if err != nil {
		return fmt.Errorf("%s: direction %v: %w", methodUpdate, p.Direction, ErrInvalidParameter)
	}
	if !(p.Decay > 0) {
		return fmt.Errorf("%s: decay=%g: %w", methodUpdate, p.Decay, ErrInvalidParameter)
	}
	p.Direction = d

	n := len(t.coords)
	chunk := (n + t.workers - 1) / t.workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		g.Go(func() error {
			for s := lo; s < hi; s++ {
				t.weights[s] = math.Exp(-r3.Norm(r3.Sub(t.coords[s], p.Position)) / p.Decay)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%s: %w", methodUpdate, err)
	}
	t.params = p

	return nil
}

// Params returns the current (normalized) configuration.
func (t *Tip) Params() TipParams { return t.params }

// Weight returns the cached decay factor of site s.
func (t *Tip) Weight(s int) float64 { return t.weights[s] }

// SiteEnergy implements Term.
func (t *Tip) SiteEnergy(s int) float64 {
	return -t.params.Strength * t.weights[s] * r3.Dot(t.params.Direction, t.arena.At(s))
}

// Field implements Term.
func (t *Tip) Field(s int) r3.Vec {
	return r3.Scale(t.params.Strength*t.weights[s], t.params.Direction)
}
