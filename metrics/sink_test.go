// SPDX-License-Identifier: MIT

package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/JHagemeister/MonteCrystal-sub001/hamiltonian"
	"github.com/JHagemeister/MonteCrystal-sub001/interaction"
	"github.com/JHagemeister/MonteCrystal-sub001/lattice"
	"github.com/JHagemeister/MonteCrystal-sub001/measurement"
	"github.com/JHagemeister/MonteCrystal-sub001/metrics"
	"github.com/JHagemeister/MonteCrystal-sub001/observable"
	"github.com/JHagemeister/MonteCrystal-sub001/spin"
)

// newTestSink creates a sink on a private registry.
func newTestSink(t *testing.T, columns []string) (*metrics.Sink, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	s, err := metrics.NewSink(reg, columns)
	require.NoError(t, err)

	return s, reg
}

func TestSink_Record(t *testing.T) {
	s, _ := newTestSink(t, []string{"<E_total>", "C"})

	require.NoError(t, s.Record(measurement.Point{Label: "T=4", Temperature: 4, Values: []float64{-3.5, 0.25}}))
	require.NoError(t, s.Record(measurement.Point{Label: "T=8", Temperature: 8, Values: []float64{-2, 0.5}}))

	assert.Equal(t, -3.5, testutil.ToFloat64(s.Mean.WithLabelValues("T=4", "<E_total>")))
	assert.Equal(t, 0.5, testutil.ToFloat64(s.Mean.WithLabelValues("T=8", "C")))
	assert.Equal(t, 8.0, testutil.ToFloat64(s.Temperature.WithLabelValues("T=8")))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.Points))
	assert.Equal(t, 4, testutil.CollectAndCount(s.Mean))
}

func TestSink_ColumnMismatch(t *testing.T) {
	s, _ := newTestSink(t, []string{"a"})

	err := s.Record(measurement.Point{Label: "x", Values: []float64{1, 2}})
	assert.ErrorIs(t, err, metrics.ErrColumnMismatch)
	assert.Equal(t, 0.0, testutil.ToFloat64(s.Points))
}

func TestSink_Registration(t *testing.T) {
	_, err := metrics.NewSink(nil, nil)
	assert.ErrorIs(t, err, metrics.ErrNilArgument)

	_, reg := newTestSink(t, nil)
	_, err = metrics.NewSink(reg, nil)
	assert.Error(t, err, "collectors cannot be registered twice")
}

// TestSink_WithMeasurement wires the sink behind a Measurement.
func TestSink_WithMeasurement(t *testing.T) {
	lat, err := lattice.Ring(4)
	require.NoError(t, err)
	a := spin.Uniform(4, r3.Vec{Z: 1})
	ex, err := interaction.NewExchange(lat, a, 1)
	require.NoError(t, err)
	h, err := hamiltonian.New(a, []interaction.Term{ex})
	require.NoError(t, err)
	en, err := observable.NewEnergy(h)
	require.NoError(t, err)

	s, _ := newTestSink(t, en.MeanHeader())
	m, err := measurement.New([]observable.Observable{en}, measurement.WithSink(s))
	require.NoError(t, err)

	m.SetCapacity(1)
	require.NoError(t, m.Measure())
	_, err = m.TakeMeanValues("ring", 1)
	require.NoError(t, err)

	assert.Equal(t, -4.0, testutil.ToFloat64(s.Mean.WithLabelValues("ring", "<E_total>")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.Points))
}
