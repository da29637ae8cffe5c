// SPDX-License-Identifier: MIT
// Package: hamiltonian
//
// fields.go — parallel evaluation of the effective field on every site.
//
// Each goroutine owns a disjoint chunk of dst and only reads the arena, so
// no synchronization beyond errgroup.Wait is needed. The result is identical
// to calling TotalField for each site in order.

package hamiltonian

import (
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r3"
)

const methodFields = "Fields"

// Fields writes TotalField(s) into dst[s] for every site.
// len(dst) must equal NumSites.
func (h *Hamiltonian) Fields(dst []r3.Vec) error {
	n := h.arena.Len()
	if len(dst) != n {
		return fmt.Errorf("%s: len(dst)=%d, sites=%d: %w", methodFields, len(dst), n, ErrSizeMismatch)
	}

	chunk := (n + h.workers - 1) / h.workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		g.Go(func() error {
			for s := lo; s < hi; s++ {
				dst[s] = h.TotalField(s)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%s: %w", methodFields, err)
	}

	return nil
}
