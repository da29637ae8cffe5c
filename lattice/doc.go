// Package lattice describes the geometry an interaction term needs: per-order
// neighbor tables, bond vectors, site coordinates, topological-charge
// triangles, four-spin plaquettes and a designated center site.
//
// Geometry is the read-only contract consumed by interaction terms and
// observables. Lattice is a plain in-memory implementation; the Ring and
// Square builders produce small deterministic fixtures in the same spirit as
// topology constructors elsewhere in the module:
//
//	lat, err := lattice.Ring(4)                           // periodic chain, 2 neighbors/site
//	sq, err := lattice.Square(8, 8, lattice.WithPeriodic(true))
//
// Neighbor tables are flattened: Index[s*Width+k] is the k-th neighbor of
// site s, or NoNeighbor for an open boundary. Bond vectors are aligned with
// Index and point from s to its neighbor.
//
// Errors:
//
//	ErrTooFewSites   - builder size below the minimum.
//	ErrNoTopology    - requested order/triangles/plaquettes not present.
//	ErrBadTable      - table shape inconsistent with the site count.
//	ErrSiteOutOfRange - site index outside [0, N).
package lattice
