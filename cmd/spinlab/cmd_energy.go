// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEnergyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "energy <system.yaml>",
		Short: "Print the energy of every term and the total",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := loadModel(cmd, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			h := m.Hamiltonian
			for i, e := range h.PartEnergies() {
				fmt.Fprintf(out, "%s\t%g\n", h.Labels()[i], e)
			}
			fmt.Fprintf(out, "total\t%g\n", h.TotalEnergy())

			return nil
		},
	}
}
