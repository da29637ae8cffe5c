// Package metrics exports ensemble points as Prometheus gauges.
//
// Sink implements measurement.Sink. Every recorded Point sets one gauge per
// mean column, labeled by the point label and the column name, plus a
// temperature gauge and a point counter:
//
//	spinlab_ensemble_mean{point="T=10",column="<E_total>"}  -4
//	spinlab_ensemble_temperature_kelvin{point="T=10"}       10
//	spinlab_ensemble_points_total                            1
//
// Register the sink's collectors on a dedicated registry in tests and on
// prometheus.DefaultRegisterer in long-running sweeps.
//
// Thread Safety:
//
//	All operations are thread-safe via Prometheus's internal locking.
package metrics
