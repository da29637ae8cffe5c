// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/JHagemeister/MonteCrystal-sub001/config"
)

const flagVerbose = "verbose"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "spinlab",
		Short:        "Evaluate spin-lattice energies, fields and observables",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolP(flagVerbose, "v", false, "log diagnostics at debug level")
	root.AddCommand(
		newEnergyCmd(),
		newFieldCmd(),
		newWindingCmd(),
		newMeasureCmd(),
	)

	return root
}

// loggerFor writes diagnostics to the command's stderr: warnings by
// default, everything with --verbose.
func loggerFor(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if v, _ := cmd.Flags().GetBool(flagVerbose); v {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// loadModel reads and builds the system file named by path.
func loadModel(cmd *cobra.Command, path string) (*config.Model, *slog.Logger, error) {
	logger := loggerFor(cmd)
	sys, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	m, err := sys.Build(logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("system built",
		"path", path,
		"sites", m.Lattice.NumSites(),
		"terms", len(m.Hamiltonian.Terms()))

	return m, logger, nil
}
