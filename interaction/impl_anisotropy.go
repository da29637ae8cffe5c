// SPDX-License-Identifier: MIT
// Package: interaction
//
// impl_anisotropy.go — single-site magnetocrystalline anisotropies.
//
// Uniaxial:
//   • E_s = K(1 − (S_s·ê)²) = K sin²θ; H_s = 2K (S_s·ê) ê.
//
// Hexagonal (frame ê = axis, û = in-plane reference, v̂ = ê×û):
//   • c = S·ê, z = S·û + i S·v̂ (so |z| = sinθ, arg z = φ for unit S).
//   • E_s = K1 (1−c²) + K2 (1−c²)² + K6 Re(z⁶)
//         = K1 sin²θ + K2 sin⁴θ + K6 sin⁶θ cos6φ.
//   • H_s = −∇E = [2K1 c + 4K2 (1−c²) c] ê − 6K6 [Re(z⁵) û − Im(z⁵) v̂].
//
// Both have factor 1.

package interaction

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

const (
	methodNewUniaxial  = "NewUniaxial"
	methodNewHexagonal = "NewHexagonal"
)

// uniaxialEnergy and uniaxialField are shared by the uniform, modulated and
// defect anisotropy variants.
func uniaxialEnergy(k float64, axis, s r3.Vec) float64 {
	c := r3.Dot(s, axis)
	return k * (1 - c*c)
}

func uniaxialField(k float64, axis, s r3.Vec) r3.Vec {
	return r3.Scale(2*k*r3.Dot(s, axis), axis)
}

// unitAxis normalizes an anisotropy axis or reports ErrInvalidParameter.
func unitAxis(method string, axis r3.Vec) (r3.Vec, error) {
	u, err := spin.Normalize(axis)
	if err != nil {
		return r3.Vec{}, fmt.Errorf("%s: axis %v: %w", method, axis, ErrInvalidParameter)
	}

	return u, nil
}

// Uniaxial is the uniform uniaxial anisotropy.
type Uniaxial struct {
	base
	k    float64
	axis r3.Vec
}

// NewUniaxial builds a uniaxial anisotropy K sin²θ about axis.
func NewUniaxial(arena *spin.Arena, k float64, axis r3.Vec, opts ...Option) (*Uniaxial, error) {
	if err := checkArena(methodNewUniaxial, nil, arena); err != nil {
		return nil, err
	}
	u, err := unitAxis(methodNewUniaxial, axis)
	if err != nil {
		return nil, err
	}

	return &Uniaxial{
		base: newBase(KindUniaxial, FactorSingle, arena, newTermConfig(opts...)),
		k:    k,
		axis: u,
	}, nil
}

// Axis returns the unit easy/hard axis.
func (a *Uniaxial) Axis() r3.Vec { return a.axis }

// SiteEnergy implements Term.
func (a *Uniaxial) SiteEnergy(s int) float64 { return uniaxialEnergy(a.k, a.axis, a.arena.At(s)) }

// Field implements Term.
func (a *Uniaxial) Field(s int) r3.Vec { return uniaxialField(a.k, a.axis, a.arena.At(s)) }

// HexagonalParams configures a hexagonal anisotropy.
type HexagonalParams struct {
	K1, K2, K6 float64
	// Axis is the sixfold symmetry axis.
	Axis r3.Vec
	// Reference fixes φ = 0; its component along Axis is discarded.
	Reference r3.Vec
}

// Hexagonal is the sixfold anisotropy.
type Hexagonal struct {
	base
	p       HexagonalParams
	e, u, v r3.Vec
}

// NewHexagonal builds a hexagonal anisotropy.
func NewHexagonal(arena *spin.Arena, p HexagonalParams, opts ...Option) (*Hexagonal, error) {
	if err := checkArena(methodNewHexagonal, nil, arena); err != nil {
		return nil, err
	}
	e, err := unitAxis(methodNewHexagonal, p.Axis)
	if err != nil {
		return nil, err
	}
	inPlane := r3.Sub(p.Reference, r3.Scale(r3.Dot(p.Reference, e), e))
	u, err := spin.Normalize(inPlane)
	if err != nil {
		return nil, fmt.Errorf("%s: reference %v parallel to axis: %w", methodNewHexagonal, p.Reference, ErrInvalidParameter)
	}

	return &Hexagonal{
		base: newBase(KindHexagonal, FactorSingle, arena, newTermConfig(opts...)),
		p:    p,
		e:    e,
		u:    u,
		v:    r3.Cross(e, u),
	}, nil
}

// frame returns c = S·ê and z⁵ for the spin at s.
func (h *Hexagonal) frame(s int) (c float64, z complex128) {
	sv := h.arena.At(s)

	return r3.Dot(sv, h.e), complex(r3.Dot(sv, h.u), r3.Dot(sv, h.v))
}

func pow5(z complex128) complex128 {
	z2 := z * z

	return z2 * z2 * z
}

// SiteEnergy implements Term.
func (h *Hexagonal) SiteEnergy(s int) float64 {
	c, z := h.frame(s)
	s2 := 1 - c*c
	z6 := pow5(z) * z

	return h.p.K1*s2 + h.p.K2*s2*s2 + h.p.K6*real(z6)
}

// Field implements Term.
func (h *Hexagonal) Field(s int) r3.Vec {
	c, z := h.frame(s)
	s2 := 1 - c*c
	z5 := pow5(z)

	axial := r3.Scale(2*h.p.K1*c+4*h.p.K2*s2*c, h.e)
	planar := r3.Sub(r3.Scale(real(z5), h.u), r3.Scale(imag(z5), h.v))

	return r3.Sub(axial, r3.Scale(6*h.p.K6, planar))
}
