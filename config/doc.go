// Package config decodes declarative YAML system files and builds the
// lattice, spin arena and Hamiltonian they describe.
//
// A system file names a fixture lattice, an initial spin configuration and
// an ordered list of interaction terms:
//
//	lattice:
//	  kind: square
//	  rows: 8
//	  cols: 8
//	  periodic: true
//	spins:
//	  direction: [0, 0, 1]
//	terms:
//	  - kind: Exchange
//	    strength: 1
//	  - kind: DM
//	    strength: 0.3
//	    convention: Neel
//	    axis: [0, 0, 1]
//	  - kind: Zeeman
//	    strength: 0.5
//	    direction: [0, 0, 1]
//
// Term kinds use the interaction.Kind names. Fields a kind does not read are
// ignored; unknown keys are rejected at decode time. Parse validates struct
// tags with go-playground/validator; Build fails fast on the first term whose
// constructor rejects its parameters.
package config
