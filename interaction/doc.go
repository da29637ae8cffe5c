// Package interaction implements the physical interaction terms of a classical
// spin Hamiltonian as pure functions of the current spin snapshot.
//
// Every term satisfies Term:
//
//	SiteEnergy(s) — energy attributed to site s
//	Field(s)      — effective field −∂E/∂S_s
//	Factor()      — multiple-counting correction
//	Label()       — output column / lookup key
//
// Bonded terms additionally implement Pairer for cheap two-site trial moves.
//
// Correction factors (fixed per kind, not tunable):
//
//	two-body bonded (exchange, DM, biquadratic, dipolar, modulated/defect bonds) 0.5
//	single-site (anisotropy, Zeeman, tip)                                       1
//	three-site triangles                                                        1/3
//	four-site plaquettes                                                        0.25
//
// so that Σ_s SiteEnergy(s)·Factor() is the total energy with every bond,
// triangle or plaquette counted exactly once.
//
// Term kinds:
//
//	Exchange, DM (Neel/Chiral), Biquadratic, FourSpin, ThreeSpin, Dipolar,
//	Uniaxial, Hexagonal, Zeeman, Tip, ModulatedExchange, ModulatedAnisotropy,
//	DefectExchange, DefectDM, DefectAnisotropy.
//
// Errors:
//
//	ErrMissingTopology  - required geometry data absent (fatal configuration).
//	ErrNilArgument      - nil geometry or arena.
//	ErrSizeMismatch     - arena length differs from the lattice site count.
//	ErrInvalidParameter - meaningless physical parameter (zero axis, decay ≤ 0, ...).
//	ErrUnknownModulation - modulation method id not recognized.
//	ErrBadDefect        - defect override names an invalid site, slot or bond.
//
// Near-zero bond lengths are not errors; they contribute nothing.
//
// All kernels read the shared *spin.Arena and never mutate it, so a term may be
// evaluated from several goroutines over disjoint sites.
package interaction
