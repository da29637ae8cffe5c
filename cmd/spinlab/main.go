// SPDX-License-Identifier: MIT

// Command spinlab evaluates energies, effective fields and observables of a
// spin-lattice system described by a YAML file.
//
//	spinlab energy  system.yaml
//	spinlab field   system.yaml [--site N]
//	spinlab winding system.yaml
//	spinlab measure system.yaml [--temperature T] [--label L] [--metrics]
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
