// Package measurement orchestrates a fixed, ordered set of observables over
// one sweep of a simulation and keeps the ensemble log.
//
// Flow per sweep point (driven by an external Monte Carlo/LLG loop):
//
//	m.SetCapacity(n)            // or m.Reset() between points
//	for step := 0; step < n; step++ {
//	    driver.Advance()
//	    _ = m.Measure()         // TakeValue on every observable, in order
//	}
//	p, _ := m.TakeMeanValues("T=10", 10)
//
// Column order:
//
//	Observables keep insertion order. Headers(), MeanHeader(), every step
//	line and every ensemble-point line concatenate the observables' columns
//	in that order. This is the only layout contract external plotting relies
//	on.
//
// Output:
//
//   - Log() holds one formatted line per ensemble point.
//   - WriteSteps/WriteMeans emit whitespace-separated text columns.
//   - Sinks (WithSink) receive every Point; TextSink writes lines to an
//     io.Writer, metrics.Sink exports Prometheus gauges.
//
// Usage errors from observables are logged and joined into the returned
// error; the call still completes with degenerate (zero) values.
package measurement
