// SPDX-License-Identifier: MIT
// Package: config
//
// build.go — turn a validated System into lattice, arena and Hamiltonian.
//
// Contract:
//   • Build validates first and stops at the first failing constructor;
//     the error names the term position and kind.
//   • Terms are added in file order, so output columns follow the file.

package config

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/hamiltonian"
	"github.com/JHagemeister/MonteCrystal-sub001/interaction"
	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

const methodBuild = "Build"

// Model is a fully wired system.
type Model struct {
	Lattice     *lattice.Lattice
	Arena       *spin.Arena
	Hamiltonian *hamiltonian.Hamiltonian
}

var zAxis = r3.Vec{Z: 1}

// Build constructs the system described by s. A nil logger keeps the
// Hamiltonian's default.
func (s *System) Build(logger *slog.Logger) (*Model, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	lat, err := s.Lattice.build()
	if err != nil {
		return nil, fmt.Errorf("%s: lattice: %w", methodBuild, err)
	}
	arena, err := s.Spins.build(lat.NumSites())
	if err != nil {
		return nil, fmt.Errorf("%s: spins: %w", methodBuild, err)
	}

	hopts := []hamiltonian.Option{}
	if logger != nil {
		hopts = append(hopts, hamiltonian.WithLogger(logger))
	}
	if s.Workers > 0 {
		hopts = append(hopts, hamiltonian.WithWorkers(s.Workers))
	}
	h, err := hamiltonian.New(arena, nil, hopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	for i := range s.Terms {
		t, err := s.Terms[i].build(lat, arena, s.Workers)
		if err != nil {
			return nil, fmt.Errorf("%s: term %d (%s): %w", methodBuild, i, s.Terms[i].Kind, err)
		}
		if err := h.Add(t); err != nil {
			return nil, fmt.Errorf("%s: term %d: %w", methodBuild, i, err)
		}
	}

	return &Model{Lattice: lat, Arena: arena, Hamiltonian: h}, nil
}

func (l Lattice) build() (*lattice.Lattice, error) {
	var opts []lattice.Option
	if l.Spacing > 0 {
		opts = append(opts, lattice.WithSpacing(l.Spacing))
	}
	if l.Periodic != nil {
		opts = append(opts, lattice.WithPeriodic(*l.Periodic))
	}
	if l.NextNearest {
		opts = append(opts, lattice.WithNextNearest())
	}

	switch l.Kind {
	case LatticeRing:
		return lattice.Ring(l.Sites, opts...)
	case LatticeSquare:
		return lattice.Square(l.Rows, l.Cols, opts...)
	default:
		return nil, fmt.Errorf("%q: %w", l.Kind, ErrUnknownKind)
	}
}

func (s Spins) build(n int) (*spin.Arena, error) {
	if len(s.Values) == 0 {
		dir, err := spin.Normalize(vecOr(s.Direction, zAxis))
		if err != nil {
			return nil, fmt.Errorf("direction: %w", err)
		}
		return spin.Uniform(n, dir), nil
	}
	if len(s.Values) != n {
		return nil, fmt.Errorf("%d values for %d sites: %w", len(s.Values), n, ErrSpinCount)
	}
	buf := make([]r3.Vec, n)
	for i, v := range s.Values {
		u, err := spin.Normalize(v.R3())
		if err != nil {
			return nil, fmt.Errorf("site %d: %w", i, err)
		}
		buf[i] = u
	}

	return spin.New(buf)
}

func (t *Term) options(workers int) []interaction.Option {
	var opts []interaction.Option
	if t.Label != "" {
		opts = append(opts, interaction.WithLabel(t.Label))
	}
	if t.Order > 0 {
		opts = append(opts, interaction.WithOrder(t.Order))
	}
	if workers > 0 {
		opts = append(opts, interaction.WithWorkers(workers))
	}

	return opts
}

func (t *Term) convention() interaction.DMConvention {
	if t.Convention == interaction.Chiral.String() {
		return interaction.Chiral
	}

	return interaction.Neel
}

func (t *Term) overrides() []interaction.BondOverride[float64] {
	out := make([]interaction.BondOverride[float64], len(t.Overrides))
	for i, o := range t.Overrides {
		slot := interaction.AllSlots
		if o.Slot != nil {
			slot = *o.Slot
		}
		out[i] = interaction.BondOverride[float64]{Site: o.Site, Slot: slot, Value: o.Value}
	}

	return out
}

func (t *Term) modulation() (interaction.Modulation, error) {
	if t.Modulation == nil {
		return interaction.Modulation{}, fmt.Errorf("modulation: %w", interaction.ErrInvalidParameter)
	}
	m := t.Modulation
	method, err := modulationMethod(m.Method)
	if err != nil {
		return interaction.Modulation{}, err
	}

	return interaction.Modulation{
		Method:    method,
		Period:    m.Period,
		Direction: vecOr(m.Direction, r3.Vec{}),
		Phase:     m.Phase,
		Duty:      m.Duty,
		Width:     m.Width,
	}, nil
}

func modulationMethod(name string) (interaction.ModulationMethod, error) {
	for _, m := range []interaction.ModulationMethod{
		interaction.ModCosine, interaction.ModSquare, interaction.ModRadialCosine, interaction.ModStripe,
	} {
		if m.String() == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("modulation %q: %w", name, ErrUnknownKind)
}

// build dispatches on Kind to the matching interaction constructor.
func (t *Term) build(geo lattice.Geometry, arena *spin.Arena, workers int) (interaction.Term, error) {
	opts := t.options(workers)
	axis := vecOr(t.Axis, zAxis)

	switch t.Kind {
	case interaction.KindExchange.String():
		return interaction.NewExchange(geo, arena, t.Strength, opts...)
	case interaction.KindDM.String():
		return interaction.NewDM(geo, arena, t.Strength, t.convention(), axis, opts...)
	case interaction.KindBiquadratic.String():
		return interaction.NewBiquadratic(geo, arena, t.Strength, opts...)
	case interaction.KindFourSpin.String():
		return interaction.NewFourSpin(geo, arena, t.Strength, opts...)
	case interaction.KindThreeSpin.String():
		return interaction.NewThreeSpin(geo, arena, t.Strength, opts...)
	case interaction.KindDipolar.String():
		return interaction.NewDipolar(geo, arena, t.Strength, opts...)
	case interaction.KindUniaxial.String():
		return interaction.NewUniaxial(arena, t.Strength, axis, opts...)
	case interaction.KindHexagonal.String():
		return interaction.NewHexagonal(arena, interaction.HexagonalParams{
			K1: t.K1, K2: t.K2, K6: t.K6,
			Axis:      axis,
			Reference: vecOr(t.Reference, r3.Vec{X: 1}),
		}, opts...)
	case interaction.KindZeeman.String():
		return interaction.NewZeeman(arena, interaction.ZeemanParams{
			Strength:  t.Strength,
			Direction: vecOr(t.Direction, zAxis),
		}, opts...)
	case interaction.KindTip.String():
		return interaction.NewTip(geo, arena, interaction.TipParams{
			Strength:  t.Strength,
			Direction: vecOr(t.Direction, zAxis),
			Position:  vecOr(t.Position, r3.Vec{}),
			Decay:     t.Decay,
		}, opts...)
	case interaction.KindModulatedExchange.String():
		mod, err := t.modulation()
		if err != nil {
			return nil, err
		}
		return interaction.NewModulatedExchange(geo, arena, t.Strength, t.Amplitude, mod, opts...)
	case interaction.KindModulatedAnisotropy.String():
		mod, err := t.modulation()
		if err != nil {
			return nil, err
		}
		return interaction.NewModulatedAnisotropy(geo, arena, t.Strength, t.Amplitude, axis, mod, opts...)
	case interaction.KindDefectExchange.String():
		return interaction.NewDefectExchange(geo, arena, t.Strength, t.overrides(), opts...)
	case interaction.KindDefectDM.String():
		return interaction.NewDefectDM(geo, arena, t.Strength, t.convention(), axis, t.overrides(), opts...)
	case interaction.KindDefectAnisotropy.String():
		return interaction.NewDefectAnisotropy(arena, t.Strength, axis, t.Defects, opts...)
	default:
		return nil, fmt.Errorf("%q: %w", t.Kind, ErrUnknownKind)
	}
}
