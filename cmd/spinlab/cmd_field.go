// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

func newFieldCmd() *cobra.Command {
	var site int
	cmd := &cobra.Command{
		Use:   "field <system.yaml>",
		Short: "Print the effective field at every site, or at one with --site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, _, err := loadModel(cmd, args[0])
			if err != nil {
				return err
			}
			h := m.Hamiltonian
			out := cmd.OutOrStdout()
			if site >= 0 {
				if site >= h.NumSites() {
					return fmt.Errorf("site %d outside [0, %d)", site, h.NumSites())
				}
				f := h.TotalField(site)
				fmt.Fprintf(out, "%d\t%g\t%g\t%g\n", site, f.X, f.Y, f.Z)
				return nil
			}

			fields := make([]r3.Vec, h.NumSites())
			if err := h.Fields(fields); err != nil {
				return err
			}
			for s, f := range fields {
				fmt.Fprintf(out, "%d\t%g\t%g\t%g\n", s, f.X, f.Y, f.Z)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&site, "site", -1, "only print the field at this site")

	return cmd
}
