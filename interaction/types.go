// SPDX-License-Identifier: MIT
// Package: interaction
//
// types.go — the Term capability interface, kinds and correction factors.

package interaction

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

// Correction factors per interaction class.
const (
	FactorPair      = 0.5
	FactorSingle    = 1.0
	FactorTriangle  = 1.0 / 3.0
	FactorPlaquette = 0.25
)

// BondTolerance is the bond length below which a bond contributes nothing.
const BondTolerance = spin.Tolerance

// Kind tags a term variant.
type Kind int

const (
	KindExchange Kind = iota
	KindDM
	KindBiquadratic
	KindFourSpin
	KindThreeSpin
	KindDipolar
	KindUniaxial
	KindHexagonal
	KindZeeman
	KindTip
	KindModulatedExchange
	KindModulatedAnisotropy
	KindDefectExchange
	KindDefectDM
	KindDefectAnisotropy
)

var kindNames = [...]string{
	KindExchange:            "Exchange",
	KindDM:                  "DM",
	KindBiquadratic:         "Biquadratic",
	KindFourSpin:            "FourSpin",
	KindThreeSpin:           "ThreeSpin",
	KindDipolar:             "Dipolar",
	KindUniaxial:            "Uniaxial",
	KindHexagonal:           "Hexagonal",
	KindZeeman:              "Zeeman",
	KindTip:                 "Tip",
	KindModulatedExchange:   "ModulatedExchange",
	KindModulatedAnisotropy: "ModulatedAnisotropy",
	KindDefectExchange:      "DefectExchange",
	KindDefectDM:            "DefectDM",
	KindDefectAnisotropy:    "DefectAnisotropy",
}

// String returns the canonical kind name, also the default label.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}

	return kindNames[k]
}

// Term is the capability every interaction variant provides.
type Term interface {
	// Kind returns the variant tag.
	Kind() Kind

	// Label returns the output/lookup label.
	Label() string

	// Factor returns the multiple-counting correction of this kind.
	Factor() float64

	// SiteEnergy returns the energy attributed to site s.
	SiteEnergy(s int) float64

	// Field returns the effective field −∂E/∂S_s.
	Field(s int) r3.Vec

	// Arena returns the spin arena the term reads.
	Arena() *spin.Arena
}

// Pairer is implemented by multi-site terms that can price the shared
// contribution of two sites. For bonded terms this is the energy of every
// bond (or plaquette) joining s1 and s2; it is 0 for unrelated sites.
// A driver flipping s1 and s2 together subtracts it once from
// SiteEnergy(s1)+SiteEnergy(s2) to avoid counting the shared part twice.
type Pairer interface {
	PairEnergy(s1, s2 int) float64
}

// base carries the fields every variant shares.
type base struct {
	kind   Kind
	label  string
	factor float64
	arena  *spin.Arena
}

func newBase(kind Kind, factor float64, arena *spin.Arena, cfg termConfig) base {
	label := cfg.label
	if label == "" {
		label = kind.String()
	}

	return base{kind: kind, label: label, factor: factor, arena: arena}
}

// Kind implements Term.
func (b *base) Kind() Kind { return b.kind }

// Label implements Term.
func (b *base) Label() string { return b.label }

// Factor implements Term.
func (b *base) Factor() float64 { return b.factor }

// Arena implements Term.
func (b *base) Arena() *spin.Arena { return b.arena }
