// SPDX-License-Identifier: MIT
// Package: metrics
//
// sink.go — Prometheus-backed measurement.Sink.

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/JHagemeister/MonteCrystal-sub001/measurement"
)

// Namespace and subsystem for all collectors.
const (
	metricsNamespace  = "spinlab"
	ensembleSubsystem = "ensemble"
)

// Sink records ensemble points as gauges.
type Sink struct {
	columns []string

	// Mean holds the latest mean per point and column.
	// Labels: point, column.
	Mean *prometheus.GaugeVec

	// Temperature holds the temperature of each point.
	// Labels: point.
	Temperature *prometheus.GaugeVec

	// Points counts recorded points.
	Points prometheus.Counter
}

// NewSink builds a sink for points laid out as columns and registers its
// collectors on reg.
func NewSink(reg prometheus.Registerer, columns []string) (*Sink, error) {
	if reg == nil {
		return nil, fmt.Errorf("NewSink: registerer: %w", ErrNilArgument)
	}
	s := &Sink{
		columns: append([]string(nil), columns...),
		Mean: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: ensembleSubsystem,
			Name:      "mean",
			Help:      "Ensemble mean of one observable column at one sweep point.",
		}, []string{"point", "column"}),
		Temperature: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: ensembleSubsystem,
			Name:      "temperature_kelvin",
			Help:      "Temperature of a sweep point.",
		}, []string{"point"}),
		Points: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: ensembleSubsystem,
			Name:      "points_total",
			Help:      "Number of ensemble points recorded.",
		}),
	}
	for _, c := range []prometheus.Collector{s.Mean, s.Temperature, s.Points} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("NewSink: %w", err)
		}
	}

	return s, nil
}

// Record implements measurement.Sink.
func (s *Sink) Record(p measurement.Point) error {
	if len(p.Values) != len(s.columns) {
		return fmt.Errorf("Sink.Record: %d values for %d columns: %w", len(p.Values), len(s.columns), ErrColumnMismatch)
	}
	for i, v := range p.Values {
		s.Mean.WithLabelValues(p.Label, s.columns[i]).Set(v)
	}
	s.Temperature.WithLabelValues(p.Label).Set(p.Temperature)
	s.Points.Inc()

	return nil
}

var _ measurement.Sink = (*Sink)(nil)
