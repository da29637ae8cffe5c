package hamiltonian_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/hamiltonian"
	"github.com/JHagemeister/MonteCrystal-sub001/interaction"
	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

// ExampleHamiltonian_TotalEnergy combines exchange with a Zeeman field on a
// 4-site ring. Exchange contributes −4, the field −0.5 per site.
func ExampleHamiltonian_TotalEnergy() {
	lat, _ := lattice.Ring(4)
	arena := spin.Uniform(4, r3.Vec{Z: 1})
	ex, _ := interaction.NewExchange(lat, arena, 1)
	zm, _ := interaction.NewZeeman(arena, interaction.ZeemanParams{Strength: 0.5, Direction: r3.Vec{Z: 1}})

	h, _ := hamiltonian.New(arena, []interaction.Term{ex, zm})
	fmt.Println(h.Labels(), h.PartEnergies(), h.TotalEnergy())
	fmt.Println(h.TotalField(0))
	// Output:
	// [Exchange Zeeman] [-4 -2] -6
	// {0 0 2.5}
}
