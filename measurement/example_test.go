package measurement_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/hamiltonian"
	"github.com/JHagemeister/MonteCrystal-sub001/interaction"
	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/measurement"
	"github.com/JHagemeister/MonteCrystal-sub001/observable"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

////////////////////////////////////////////////////////////////////////////////
// Ensemble Examples
////////////////////////////////////////////////////////////////////////////////

// ExampleMeasurement samples a 4-site ring twice: once ferromagnetic
// (E = −4) and once with site 0 flipped (two broken bonds, E = 0).
func ExampleMeasurement() {
	lat, _ := lattice.Ring(4)
	arena := spin.Uniform(4, r3.Vec{Z: 1})
	ex, _ := interaction.NewExchange(lat, arena, 1)
	h, _ := hamiltonian.New(arena, []interaction.Term{ex})
	en, _ := observable.NewEnergy(h)
	m, _ := measurement.New([]observable.Observable{en})

	m.SetCapacity(2)
	_ = m.Measure()
	_ = arena.Set(0, r3.Vec{Z: -1})
	_ = m.Measure()

	p, _ := m.TakeMeanValues("T=5", 5)
	fmt.Println(m.MeanHeader())
	fmt.Println(p.Label, p.Values[:2])
	// Output:
	// [<E_Exchange> <E_total> C]
	// T=5 [-2 -2]
}
