// SPDX-License-Identifier: MIT
// Package: measurement
//
// point.go — ensemble points, line formatting and the Sink contract.

package measurement

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Point is one ensemble average: every observable's MeanValue at one sweep
// point, concatenated in observable order.
type Point struct {
	Label       string
	Temperature float64
	Values      []float64
}

// Sink receives ensemble points as they are taken.
type Sink interface {
	Record(p Point) error
}

// columnSep separates tokens on every output line.
const columnSep = "\t"

// formatValue renders a float with enough digits for plotting and
// round-trips integers without a fraction.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 12, 64)
}

// token makes s safe as one whitespace-delimited column.
func token(s string) string {
	if s == "" {
		return "-"
	}

	return strings.Join(strings.Fields(s), "_")
}

// joinValues formats vs as one tab-separated run.
func joinValues(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatValue(v)
	}

	return strings.Join(parts, columnSep)
}

// Line renders p as label, temperature and values.
func (p Point) Line() string {
	head := token(p.Label) + columnSep + formatValue(p.Temperature)
	if len(p.Values) == 0 {
		return head
	}

	return head + columnSep + joinValues(p.Values)
}

// TextSink writes one line per point to w.
type TextSink struct {
	w io.Writer
}

// NewTextSink returns a sink writing to w.
func NewTextSink(w io.Writer) (*TextSink, error) {
	if w == nil {
		return nil, fmt.Errorf("NewTextSink: writer: %w", ErrNilArgument)
	}

	return &TextSink{w: w}, nil
}

// Record implements Sink.
func (s *TextSink) Record(p Point) error {
	if _, err := io.WriteString(s.w, p.Line()+"\n"); err != nil {
		return fmt.Errorf("TextSink.Record: %w", err)
	}

	return nil
}
