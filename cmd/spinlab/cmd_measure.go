// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/JHagemeister/MonteCrystal-sub001/config"
	"github.com/JHagemeister/MonteCrystal-sub001/measurement"
	"github.com/JHagemeister/MonteCrystal-sub001/metrics"
	"github.com/JHagemeister/MonteCrystal-sub001/observable"
)

type measureFlags struct {
	temperature float64
	label       string
	metrics     bool
}

func newMeasureCmd() *cobra.Command {
	var f measureFlags
	cmd := &cobra.Command{
		Use:   "measure <system.yaml>",
		Short: "Record one sample of every observable and print the ensemble point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(f.temperature > 0) {
				return fmt.Errorf("temperature %g must be positive", f.temperature)
			}
			m, logger, err := loadModel(cmd, args[0])
			if err != nil {
				return err
			}
			obs, err := observablesFor(m, logger)
			if err != nil {
				return err
			}

			opts := []measurement.Option{measurement.WithLogger(logger)}
			reg := prometheus.NewRegistry()
			if f.metrics {
				header := []string{}
				for _, o := range obs {
					header = append(header, o.MeanHeader()...)
				}
				sink, err := metrics.NewSink(reg, header)
				if err != nil {
					return err
				}
				opts = append(opts, measurement.WithSink(sink))
			}
			meas, err := measurement.New(obs, opts...)
			if err != nil {
				return err
			}

			label := f.label
			if label == "" {
				label = fmt.Sprintf("T=%g", f.temperature)
			}
			meas.SetCapacity(1)
			if err := meas.Measure(); err != nil {
				return err
			}
			if _, err := meas.TakeMeanValues(label, f.temperature); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := meas.WriteMeans(out); err != nil {
				return err
			}
			if !f.metrics {
				return nil
			}

			families, err := reg.Gather()
			if err != nil {
				return err
			}
			for _, mf := range families {
				if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().Float64Var(&f.temperature, "temperature", 1, "temperature in kelvin")
	cmd.Flags().StringVar(&f.label, "label", "", "point label (default \"T=<temperature>\")")
	cmd.Flags().BoolVar(&f.metrics, "metrics", false, "append the point in Prometheus text format")

	return cmd
}

// observablesFor builds every observable the model's lattice supports.
// The winding number needs triangles and is skipped without them.
func observablesFor(m *config.Model, logger *slog.Logger) ([]observable.Observable, error) {
	opt := observable.WithLogger(logger)
	en, err := observable.NewEnergy(m.Hamiltonian, opt)
	if err != nil {
		return nil, err
	}
	mag, err := observable.NewMagnetisation(m.Arena, opt)
	if err != nil {
		return nil, err
	}
	abs, err := observable.NewAbsoluteMagnetisation(m.Arena, opt)
	if err != nil {
		return nil, err
	}
	ncmr, err := observable.NewNCMRContrast(m.Lattice, m.Arena, opt)
	if err != nil {
		return nil, err
	}
	obs := []observable.Observable{en, mag, abs, ncmr}
	if len(m.Lattice.Triangles()) == 0 {
		logger.Debug("no triangles, skipping winding number")
		return obs, nil
	}
	w, err := observable.NewWindingNumber(m.Lattice, m.Arena, opt)
	if err != nil {
		return nil, err
	}

	return append(obs, w), nil
}
