// Package observable records bounded windows of per-step measurements on a
// spin configuration and reduces them to ensemble averages.
//
// Variants:
//
//   - Energy:                per-term and total energy; heat capacity
//     Var(E)/(kB·T²).
//   - Magnetisation:         per-site normalized M; susceptibility
//     (⟨|M|²⟩ − |⟨M⟩|²)/(kB·T); optional per-site mean spins.
//   - AbsoluteMagnetisation: Σ_s |S_s,α| per axis, normalized by N and samples.
//   - NCMRContrast:          nearest-neighbor correlation Σ_n S_s·S_n, averaged
//     over the lattice, with per-site means.
//   - WindingNumber:         topological charge over oriented triangles.
//
// Window contract:
//
//	SetCapacity(n) declares n samples and clears storage. TakeValue writes
//	only at Index() and advances it; the (n+1)-th call writes nothing and
//	returns ErrCapacityExceeded. MeanValue requires a full window.
//
// Usage errors (ErrCapacityExceeded, ErrBufferNotFull, ErrStepOutOfRange,
// ErrNonPositiveTemperature) are logged through slog at Warn and return a
// degenerate result: nil for steps, a zero slice of header width for means.
// The caller may continue.
//
// Units: energies in meV, temperatures in K, kB = BoltzmannMeV.
//
// Statistics use gonum/stat (Mean, PopMeanVariance).
package observable
