// SPDX-License-Identifier: MIT
// Package: observable
//
// observable.go — the Observable contract, shared window bookkeeping and
// options.

package observable

import (
	"fmt"
	"log/slog"
)

// BoltzmannMeV is the Boltzmann constant in meV/K.
const BoltzmannMeV = 0.08617333262

// Observable is one measured quantity with a bounded sample window.
type Observable interface {
	// StepsHeader returns the column labels of StepValue.
	StepsHeader() []string

	// MeanHeader returns the column labels of MeanValue.
	MeanHeader() []string

	// TakeValue records one sample at Index() and advances it.
	TakeValue() error

	// StepValue returns the sample recorded at step i.
	StepValue(i int) ([]float64, error)

	// MeanValue reduces the full window; temperature feeds fluctuation columns.
	MeanValue(temperature float64) ([]float64, error)

	// SetCapacity declares the window size and clears storage.
	SetCapacity(n int)

	// ClearStorage zeroes the index and the buffers at the current capacity.
	ClearStorage()

	// Capacity returns the declared window size.
	Capacity() int

	// Index returns the number of samples taken since the last clear.
	Index() int
}

// Option customizes an observable.
type Option func(*settings)

type settings struct {
	logger       *slog.Logger
	siteResolved bool
}

func newSettings(opts ...Option) settings {
	s := settings{logger: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}

	return s
}

// WithLogger routes usage-error diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("observable: WithLogger(nil)")
	}
	return func(s *settings) {
		s.logger = l
	}
}

// WithSiteResolved makes Magnetisation keep per-site running sums. Other
// observables ignore it.
func WithSiteResolved() Option {
	return func(s *settings) {
		s.siteResolved = true
	}
}

// window is the capacity/index bookkeeping every variant embeds.
type window struct {
	kind     string
	capacity int
	index    int
	logger   *slog.Logger
}

func newWindow(kind string, s settings) window {
	return window{kind: kind, logger: s.logger}
}

// Capacity implements Observable.
func (w *window) Capacity() int { return w.capacity }

// Index implements Observable.
func (w *window) Index() int { return w.index }

// resize sets the capacity (negative values clamp to 0) and rewinds.
func (w *window) resize(n int) {
	if n < 0 {
		w.logger.Warn("negative observable capacity clamped to zero",
			"observable", w.kind,
			"capacity", n)
		n = 0
	}
	w.capacity = n
	w.index = 0
}

// advance reserves the slot for the next sample.
func (w *window) advance() (int, error) {
	if w.index >= w.capacity {
		w.logger.Warn("observable capacity exceeded",
			"observable", w.kind,
			"index", w.index,
			"capacity", w.capacity)
		return 0, fmt.Errorf("%s.TakeValue: index=%d, capacity=%d: %w", w.kind, w.index, w.capacity, ErrCapacityExceeded)
	}
	i := w.index
	w.index++

	return i, nil
}

// requireStep validates a StepValue index.
func (w *window) requireStep(i int) error {
	if i < 0 || i >= w.index {
		w.logger.Warn("observable step out of range",
			"observable", w.kind,
			"step", i,
			"index", w.index)
		return fmt.Errorf("%s.StepValue: step=%d, taken=%d: %w", w.kind, i, w.index, ErrStepOutOfRange)
	}

	return nil
}

// requireFull validates that the window holds Capacity() > 0 samples.
func (w *window) requireFull() error {
	if w.capacity == 0 || w.index < w.capacity {
		w.logger.Warn("observable mean requested before buffer full",
			"observable", w.kind,
			"index", w.index,
			"capacity", w.capacity)
		return fmt.Errorf("%s.MeanValue: index=%d, capacity=%d: %w", w.kind, w.index, w.capacity, ErrBufferNotFull)
	}

	return nil
}

// requireTemperature validates the temperature of a fluctuation column.
func (w *window) requireTemperature(t float64) error {
	if !(t > 0) {
		w.logger.Warn("observable fluctuation at non-positive temperature",
			"observable", w.kind,
			"temperature", t)
		return fmt.Errorf("%s.MeanValue: T=%g: %w", w.kind, t, ErrNonPositiveTemperature)
	}

	return nil
}

// columns allocates width zeroed sample columns of length capacity.
func columns(width, capacity int) [][]float64 {
	cols := make([][]float64, width)
	for c := range cols {
		cols[c] = make([]float64, capacity)
	}

	return cols
}

// row gathers sample i across columns.
func row(cols [][]float64, i int) []float64 {
	out := make([]float64, len(cols))
	for c := range cols {
		out[c] = cols[c][i]
	}

	return out
}
