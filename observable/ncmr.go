// SPDX-License-Identifier: MIT
// Package: observable
//
// ncmr.go — non-collinear magnetoresistance contrast.
//
// The local contrast of site s is c_s = Σ_n S_s·S_n over nearest neighbors.
//   • step: the lattice average (1/N) Σ_s c_s, column NCMR.
//   • mean: ⟨NCMR⟩ over the window. No fluctuation column.
//   • SiteMeans: ⟨c_s⟩ per site, accumulated as running sums.

package observable

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/gonum/stat"

	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

const (
	kindNCMRContrast = "NCMRContrast"
	methodNewNCMR    = "NewNCMRContrast"
)

// NCMRContrast samples nearest-neighbor spin correlations.
type NCMRContrast struct {
	window
	arena    *spin.Arena
	table    lattice.Table
	steps    []float64
	siteSums []float64
}

// NewNCMRContrast observes arena over the nearest-neighbor shell of geo.
func NewNCMRContrast(geo lattice.Geometry, arena *spin.Arena, opts ...Option) (*NCMRContrast, error) {
	if geo == nil || arena == nil {
		return nil, fmt.Errorf("%s: %w", methodNewNCMR, ErrNilArgument)
	}
	if arena.Len() != geo.NumSites() {
		return nil, fmt.Errorf("%s: arena=%d, lattice=%d: %w", methodNewNCMR, arena.Len(), geo.NumSites(), ErrSizeMismatch)
	}
	t, err := geo.Neighbors(lattice.Nearest)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodNewNCMR, ErrMissingTopology, err)
	}

	return &NCMRContrast{
		window:   newWindow(kindNCMRContrast, newSettings(opts...)),
		arena:    arena,
		table:    t,
		siteSums: make([]float64, arena.Len()),
	}, nil
}

// Local returns c_s for the current configuration.
func (c *NCMRContrast) Local(s int) float64 {
	si := c.arena.At(s)
	var sum float64
	for _, n := range c.table.Row(s) {
		if n == lattice.NoNeighbor {
			continue
		}
		sum += r3.Dot(si, c.arena.At(n))
	}

	return sum
}

// StepsHeader implements Observable.
func (c *NCMRContrast) StepsHeader() []string { return []string{"NCMR"} }

// MeanHeader implements Observable.
func (c *NCMRContrast) MeanHeader() []string { return []string{"<NCMR>"} }

// TakeValue implements Observable.
func (c *NCMRContrast) TakeValue() error {
	i, err := c.advance()
	if err != nil {
		return err
	}
	n := c.arena.Len()
	var total float64
	for s := 0; s < n; s++ {
		v := c.Local(s)
		c.siteSums[s] += v
		total += v
	}
	c.steps[i] = total / float64(n)

	return nil
}

// StepValue implements Observable.
func (c *NCMRContrast) StepValue(i int) ([]float64, error) {
	if err := c.requireStep(i); err != nil {
		return nil, err
	}

	return []float64{c.steps[i]}, nil
}

// MeanValue implements Observable. Temperature is not used.
func (c *NCMRContrast) MeanValue(float64) ([]float64, error) {
	if err := c.requireFull(); err != nil {
		return []float64{0}, err
	}

	return []float64{stat.Mean(c.steps, nil)}, nil
}

// SiteMeans returns ⟨c_s⟩ for every site over the full window.
func (c *NCMRContrast) SiteMeans() ([]float64, error) {
	if err := c.requireFull(); err != nil {
		return nil, err
	}
	out := make([]float64, len(c.siteSums))
	inv := 1 / float64(c.capacity)
	for s, v := range c.siteSums {
		out[s] = v * inv
	}

	return out, nil
}

// SetCapacity implements Observable.
func (c *NCMRContrast) SetCapacity(n int) {
	c.resize(n)
	c.steps = make([]float64, c.capacity)
	clear(c.siteSums)
}

// ClearStorage implements Observable.
func (c *NCMRContrast) ClearStorage() { c.SetCapacity(c.capacity) }
