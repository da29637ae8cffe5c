// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/config"
	"github.com/JHagemeister/MonteCrystal-sub001/hamiltonian"
	"github.com/JHagemeister/MonteCrystal-sub001/interaction"
	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
)

//------------------------------------------------------------------------------//

func TestLoad_Ring(t *testing.T) {
	sys, err := config.Load(filepath.Join("testdata", "ring.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.LatticeRing, sys.Lattice.Kind)
	assert.Equal(t, 4, sys.Lattice.Sites)
	require.Len(t, sys.Terms, 1)

	m, err := sys.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Lattice.NumSites())
	assert.Equal(t, []string{"Exchange"}, m.Hamiltonian.Labels())
	assert.Equal(t, -4.0, m.Hamiltonian.TotalEnergy())
}

func TestLoad_EveryKind(t *testing.T) {
	sys, err := config.Load(filepath.Join("testdata", "square.yaml"))
	require.NoError(t, err)

	m, err := sys.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"J1", "J2", "DM", "Biquadratic", "FourSpin", "ThreeSpin", "Dipolar",
		"Uniaxial", "Hexagonal", "Zeeman", "Tip", "ModulatedExchange",
		"ModulatedAnisotropy", "DefectExchange", "DefectDM", "DefectAnisotropy",
	}, m.Hamiltonian.Labels())

	j2, err := m.Hamiltonian.Lookup("J2")
	require.NoError(t, err)
	assert.Equal(t, interaction.KindExchange, j2.Kind())

	// Terms share the arena the model exposes.
	require.NoError(t, m.Arena.Set(4, r3.Vec{X: 1}))
	assert.Equal(t, r3.Vec{X: 1}, m.Hamiltonian.Arena().At(4))
}

//------------------------------------------------------------------------------//

func TestParse_ExplicitSpins(t *testing.T) {
	sys, err := config.Parse([]byte(`
lattice: {kind: ring, sites: 4}
spins:
  values: [[0, 0, 2], [0, 0, 1], [0, 0, 1], [0, 0, 1]]
terms:
  - {kind: Exchange, strength: 1}
`))
	require.NoError(t, err)

	m, err := sys.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{Z: 1}, m.Arena.At(0), "explicit spins are normalized")
	assert.Equal(t, -4.0, m.Hamiltonian.TotalEnergy())
}

func TestParse_LatticeOptions(t *testing.T) {
	sys, err := config.Parse([]byte(`
lattice: {kind: ring, sites: 5, spacing: 2.5, periodic: false}
terms:
  - {kind: Exchange, strength: 1}
`))
	require.NoError(t, err)

	m, err := sys.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, r3.Vec{X: 10}, m.Lattice.Coordinates()[4])
	nb, err := m.Lattice.Neighbors(lattice.Nearest)
	require.NoError(t, err)
	assert.Equal(t, lattice.NoNeighbor, nb.Neighbor(4, 0), "open chain end")
	assert.Equal(t, r3.Vec{Z: 1}, m.Arena.At(2), "default direction is +z")
}

//------------------------------------------------------------------------------//

func TestParse_Rejects(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"empty":         {doc: "", want: config.ErrEmptyDocument},
		"no terms":      {doc: "lattice: {kind: ring, sites: 4}\n", want: config.ErrInvalid},
		"lattice kind":  {doc: "lattice: {kind: hex}\nterms: [{kind: Exchange}]\n", want: config.ErrInvalid},
		"ring sites":    {doc: "lattice: {kind: ring}\nterms: [{kind: Exchange}]\n", want: config.ErrInvalid},
		"square dims":   {doc: "lattice: {kind: square, rows: 3}\nterms: [{kind: Exchange}]\n", want: config.ErrInvalid},
		"term kind":     {doc: "lattice: {kind: ring, sites: 4}\nterms: [{kind: Heisenberg}]\n", want: config.ErrInvalid},
		"convention":    {doc: "lattice: {kind: ring, sites: 4}\nterms: [{kind: DM, convention: bloch}]\n", want: config.ErrInvalid},
		"negative slot": {doc: "lattice: {kind: ring, sites: 4}\nterms: [{kind: DefectExchange, overrides: [{site: 0, slot: -1}]}]\n", want: config.ErrInvalid},
		"method":        {doc: "lattice: {kind: ring, sites: 4}\nterms: [{kind: ModulatedExchange, modulation: {method: sawtooth}}]\n", want: config.ErrInvalid},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_DecodeErrors(t *testing.T) {
	_, err := config.Parse([]byte("lattice: {kind: ring, sites: 4, shape: round}\nterms: [{kind: Exchange}]\n"))
	assert.ErrorContains(t, err, "shape", "unknown keys are rejected")

	_, err = config.Parse([]byte("lattice: {kind: ring, sites: 4}\nspins: {direction: [0, 1]}\nterms: [{kind: Exchange}]\n"))
	assert.Error(t, err, "vectors need three components")
}

//------------------------------------------------------------------------------//

func TestBuild_FailsFast(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"plaquettes on a ring": {
			doc:  "lattice: {kind: ring, sites: 4}\nterms: [{kind: Exchange, strength: 1}, {kind: FourSpin, strength: 1}]\n",
			want: interaction.ErrMissingTopology,
		},
		"missing shell": {
			doc:  "lattice: {kind: ring, sites: 4}\nterms: [{kind: Exchange, order: 2}]\n",
			want: interaction.ErrMissingTopology,
		},
		"spin count": {
			doc:  "lattice: {kind: ring, sites: 4}\nspins: {values: [[0, 0, 1]]}\nterms: [{kind: Exchange}]\n",
			want: config.ErrSpinCount,
		},
		"missing modulation": {
			doc:  "lattice: {kind: ring, sites: 4}\nterms: [{kind: ModulatedExchange, strength: 1}]\n",
			want: interaction.ErrInvalidParameter,
		},
		"tip decay": {
			doc:  "lattice: {kind: ring, sites: 4}\nterms: [{kind: Tip, strength: 1}]\n",
			want: interaction.ErrInvalidParameter,
		},
		"duplicate label": {
			doc:  "lattice: {kind: ring, sites: 4}\nterms: [{kind: Exchange, strength: 1}, {kind: Exchange, strength: 2}]\n",
			want: hamiltonian.ErrDuplicateLabel,
		},
		"too few sites": {
			doc:  "lattice: {kind: ring, sites: 1}\nterms: [{kind: Exchange}]\n",
			want: lattice.ErrTooFewSites,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			sys, err := config.Parse([]byte(tc.doc))
			require.NoError(t, err)
			_, err = sys.Build(nil)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_Limits(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	big := filepath.Join(t.TempDir(), "big.yaml")
	require.NoError(t, os.WriteFile(big, bytes.Repeat([]byte("#\n"), config.MaxFileSize), 0o600))
	_, err = config.Load(big)
	assert.ErrorIs(t, err, config.ErrFileTooLarge)
}
