// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JHagemeister/MonteCrystal-sub001/observable"
)

func newWindingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "winding <system.yaml>",
		Short: "Print the topological charge of the spin configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, logger, err := loadModel(cmd, args[0])
			if err != nil {
				return err
			}
			w, err := observable.NewWindingNumber(m.Lattice, m.Arena, observable.WithLogger(logger))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Q\t%g\n", w.Current())

			return nil
		},
	}
}
