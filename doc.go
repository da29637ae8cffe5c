// Package montecrystal is the energy and field core of a classical
// spin-lattice simulator: unit spins on a fixed lattice, a configurable set
// of magnetic interactions, and the observables sampled while a driver
// updates the configuration.
//
// 🚀 What is in the box?
//
//	• Lattice fixtures: ring and square builders with neighbor shells,
//	  bond vectors, triangles and plaquettes
//	• One shared spin arena: every term and observable reads the same buffer
//	• Interaction terms: exchange, DM (Neel/chiral), biquadratic, four- and
//	  three-spin, dipolar, uniaxial and hexagonal anisotropy, Zeeman, tip,
//	  spatially modulated and defect variants
//	• Hamiltonian: total/part/site energies, effective fields and the
//	  pair energy used to price joint two-spin moves
//	• Observables: energy + heat capacity, magnetisation + susceptibility,
//	  absolute magnetisation, NCMR contrast, winding number
//	• Measurement: fixed-capacity sampling windows, ensemble points, text
//	  and Prometheus sinks
//
// ✨ Conventions
//
//   - Energies in meV, temperatures in kelvin, k_B = 0.08617333262 meV/K.
//   - Field is −∂E/∂S, so a spin lowers its energy by aligning with it.
//   - Runtime code never panics; option constructors panic on meaningless
//     values and constructors return sentinel errors.
//
// Under the hood:
//
//	spin/        — the arena and unit-vector helpers
//	lattice/     — Geometry contract and fixture builders
//	interaction/ — every Term kind, bond maps, modulation profiles
//	hamiltonian/ — aggregation, fields, move pricing, label lookup
//	observable/  — samplers with capacity windows
//	measurement/ — orchestration, ensemble log, text sink
//	metrics/     — Prometheus sink
//	config/      — YAML system files
//	cmd/spinlab/ — command-line front end
//
// Quick start:
//
//	lat, _ := lattice.Ring(4)
//	arena := spin.Uniform(4, r3.Vec{Z: 1})
//	ex, _ := interaction.NewExchange(lat, arena, 1)
//	h, _ := hamiltonian.New(arena, []interaction.Term{ex})
//	fmt.Println(h.TotalEnergy()) // -4
package montecrystal
