// SPDX-License-Identifier: MIT

package spin_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

// TestNew_Empty verifies that a zero-length buffer is rejected.
func TestNew_Empty(t *testing.T) {
	_, err := spin.New(nil)
	assert.ErrorIs(t, err, spin.ErrEmptyConfiguration)
}

// TestUniform_Normalizes checks that the direction is stored as a unit vector.
func TestUniform_Normalizes(t *testing.T) {
	a := spin.Uniform(3, r3.Vec{Z: 5})
	require.Equal(t, 3, a.Len())
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, r3.Vec{Z: 1}, a.At(i))
	}
	assert.Equal(t, r3.Vec{Z: 3}, a.Magnetisation())
}

// TestRebind_SharesIdentity checks that a rebound buffer is observed
// and that wrong lengths are refused.
func TestRebind_SharesIdentity(t *testing.T) {
	a := spin.Uniform(2, r3.Vec{X: 1})
	other := []r3.Vec{{Z: 1}, {Z: -1}}

	require.NoError(t, a.Rebind(other))
	assert.Equal(t, r3.Vec{Z: -1}, a.At(1))

	other[0] = r3.Vec{Y: 1}
	assert.Equal(t, r3.Vec{Y: 1}, a.At(0), "arena must not copy the buffer")

	err := a.Rebind(make([]r3.Vec, 3))
	assert.ErrorIs(t, err, spin.ErrLengthMismatch)
}

// TestSet_Validation covers range and zero-vector checks.
func TestSet_Validation(t *testing.T) {
	a := spin.Uniform(2, r3.Vec{X: 1})

	assert.ErrorIs(t, a.Set(2, r3.Vec{X: 1}), spin.ErrSiteOutOfRange)
	assert.ErrorIs(t, a.Set(0, r3.Vec{}), spin.ErrZeroVector)

	require.NoError(t, a.Set(0, r3.Vec{X: 3, Y: 4}))
	assert.InDelta(t, 1.0, r3.Norm(a.At(0)), 1e-15)
}

// TestSpherical checks the polar convention.
func TestSpherical(t *testing.T) {
	v := spin.Spherical(math.Pi/2, 0)
	assert.InDelta(t, 1.0, v.X, 1e-15)
	assert.InDelta(t, 0.0, v.Z, 1e-15)

	assert.Equal(t, r3.Vec{}, spin.UnitOrZero(r3.Vec{X: 1e-12}))
}
