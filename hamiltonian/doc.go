// Package hamiltonian aggregates an ordered list of interaction terms over
// one shared spin arena.
//
// What:
//
//   - TotalEnergy sums Σ_s term.SiteEnergy(s) × term.Factor() over all terms.
//   - PartEnergy / PartEnergyAt restrict the sum to one term.
//   - TotalField(s) sums term.Field(s) without any factor: fields are local
//     derivatives and are never double counted.
//   - SiteEnergy and PairEnergyExcludingSingleSite price trial moves for an
//     external Monte Carlo driver.
//   - RebindSpinArray swaps the spin buffer for every term at once, because
//     all terms read the same *spin.Arena.
//
// Order:
//
//	Terms keep insertion order. Labels(), PartEnergies() and the per-term
//	output columns of the energy observable follow it.
//
// Errors:
//
//   - ErrIndexOutOfRange: PartEnergyAt with a bad index. The call is logged,
//     returns 0 and the error; nothing else is affected.
//   - ErrTermNotFound: Lookup matched neither exactly nor by prefix.
//   - ErrNilArgument: nil arena or nil term.
//
// Concurrency:
//
//	Evaluation is read-only over the arena. Fields fans out over disjoint
//	site chunks with errgroup; no other method spawns goroutines. A
//	Hamiltonian must not be used while its arena is being mutated.
package hamiltonian
