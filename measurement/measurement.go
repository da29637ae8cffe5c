// SPDX-License-Identifier: MIT
// Package: measurement
//
// measurement.go — ordered observable orchestration and the ensemble log.
//
// Contract:
//   • SetCapacity/Reset/Measure visit observables in insertion order.
//   • Measure and TakeMeanValues never stop at the first failing observable:
//     every observable is visited, failures are logged and joined.
//   • TakeMeanValues always appends exactly one Point and one log line.
//
// Complexity:
//   • Measure: Σ cost(TakeValue). TakeMeanValues: Σ cost(MeanValue) + sinks.

package measurement

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/JHagemeister/MonteCrystal-sub001/observable"
)

const (
	methodNew            = "New"
	methodMeasure        = "Measure"
	methodTakeMeanValues = "TakeMeanValues"
	methodWriteSteps     = "WriteSteps"
	methodWriteMeans     = "WriteMeans"
)

// Measurement drives a fixed list of observables.
type Measurement struct {
	observables []observable.Observable
	logger      *slog.Logger
	sinks       []Sink
	log         []string
	points      []Point
}

// New builds a Measurement over obs, kept in the given order.
func New(obs []observable.Observable, opts ...Option) (*Measurement, error) {
	if len(obs) == 0 {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNoObservables)
	}
	for i, o := range obs {
		if o == nil {
			return nil, fmt.Errorf("%s: observable #%d: %w", methodNew, i, ErrNilArgument)
		}
	}
	m := &Measurement{
		observables: append([]observable.Observable(nil), obs...),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Observables returns the observables in column order. The slice is a copy.
func (m *Measurement) Observables() []observable.Observable {
	return append([]observable.Observable(nil), m.observables...)
}

// SetCapacity declares the window size of every observable.
func (m *Measurement) SetCapacity(n int) {
	for _, o := range m.observables {
		o.SetCapacity(n)
	}
}

// Measure takes one sample on every observable.
func (m *Measurement) Measure() error {
	var errs []error
	for i, o := range m.observables {
		if err := o.TakeValue(); err != nil {
			m.logger.Warn("measure failed",
				"observable", i,
				"error", err)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s: %w", methodMeasure, errors.Join(errs...))
	}

	return nil
}

// TakeMeanValues appends one ensemble point built from every observable's
// MeanValue(temperature) and forwards it to the sinks.
func (m *Measurement) TakeMeanValues(label string, temperature float64) (Point, error) {
	p := Point{Label: label, Temperature: temperature}
	var errs []error
	for i, o := range m.observables {
		vs, err := o.MeanValue(temperature)
		if err != nil {
			m.logger.Warn("mean value failed",
				"observable", i,
				"label", label,
				"error", err)
			errs = append(errs, err)
		}
		p.Values = append(p.Values, vs...)
	}
	m.points = append(m.points, p)
	m.log = append(m.log, p.Line())

	for i, s := range m.sinks {
		if err := s.Record(p); err != nil {
			m.logger.Warn("sink rejected point",
				"sink", i,
				"label", label,
				"error", err)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return p, fmt.Errorf("%s: %w", methodTakeMeanValues, errors.Join(errs...))
	}

	return p, nil
}

// Reset rewinds every observable and clears its storage for the next point.
// The ensemble log is kept.
func (m *Measurement) Reset() {
	for _, o := range m.observables {
		o.ClearStorage()
	}
}

// Headers returns the step columns of all observables, in order.
func (m *Measurement) Headers() []string {
	var out []string
	for _, o := range m.observables {
		out = append(out, o.StepsHeader()...)
	}

	return out
}

// MeanHeader returns the mean columns of all observables, in order. A Point's
// Values follow this layout.
func (m *Measurement) MeanHeader() []string {
	var out []string
	for _, o := range m.observables {
		out = append(out, o.MeanHeader()...)
	}

	return out
}

// Log returns the formatted ensemble lines. The slice is a copy.
func (m *Measurement) Log() []string { return append([]string(nil), m.log...) }

// Points returns the ensemble points. The slice is a copy.
func (m *Measurement) Points() []Point { return append([]Point(nil), m.points...) }

// steps returns the number of steps every observable has recorded.
func (m *Measurement) steps() int {
	n := m.observables[0].Index()
	for _, o := range m.observables[1:] {
		n = min(n, o.Index())
	}

	return n
}

// WriteSteps writes the step header and one line per recorded step.
func (m *Measurement) WriteSteps(w io.Writer) error {
	if w == nil {
		return fmt.Errorf("%s: writer: %w", methodWriteSteps, ErrNilArgument)
	}
	bw := bufio.NewWriter(w)
	headers := make([]string, 0, len(m.Headers()))
	for _, h := range m.Headers() {
		headers = append(headers, token(h))
	}
	fmt.Fprintln(bw, "#"+columnSep+strings.Join(headers, columnSep))

	for i := 0; i < m.steps(); i++ {
		var row []float64
		for _, o := range m.observables {
			vs, err := o.StepValue(i)
			if err != nil {
				return fmt.Errorf("%s: step %d: %w", methodWriteSteps, i, err)
			}
			row = append(row, vs...)
		}
		fmt.Fprintln(bw, strconv.Itoa(i)+columnSep+joinValues(row))
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteSteps, err)
	}

	return nil
}

// WriteMeans writes the mean header and every ensemble line.
func (m *Measurement) WriteMeans(w io.Writer) error {
	if w == nil {
		return fmt.Errorf("%s: writer: %w", methodWriteMeans, ErrNilArgument)
	}
	bw := bufio.NewWriter(w)
	headers := []string{"label", "T"}
	for _, h := range m.MeanHeader() {
		headers = append(headers, token(h))
	}
	fmt.Fprintln(bw, "#"+columnSep+strings.Join(headers, columnSep))
	for _, line := range m.log {
		fmt.Fprintln(bw, line)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%s: %w", methodWriteMeans, err)
	}

	return nil
}
