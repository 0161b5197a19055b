// SPDX-License-Identifier: MIT
// Package strassen: schedulers for the seven products of one level.
//
// Purpose:
//   - runSequential: products in order on the caller's goroutine.
//   - runForkJoin: one errgroup task per product, joined before combination.
//
// Notes:
//   - Both write product k into out[k] only; slots are disjoint, so tasks
//     need no locking and errgroup.Wait publishes the writes to the caller.
//   - Fork-join is single-level parallelism: tasks run computeProduct, whose
//     recursion is always sequential. A call never holds more than seven
//     goroutines.

package strassen

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/strassen/matrix"
)

// runSequential computes the seven products in order on the caller's
// goroutine. One scratch pair is shared by all of them.
func runSequential(qa, qb matrix.QuadrantSet, p Policy, out *products) error {
	s := newScratch()
	defer s.destroy()

	for idx := range productDefs {
		m, err := computeProduct(idx, qa, qb, p, s)
		if err != nil {
			return err
		}
		out[idx] = m
	}

	return nil
}

// runForkJoin computes the seven products as seven concurrent tasks.
// MAIN DESCRIPTION:
//   - Fork: one errgroup task per product, limit seven.
//   - Join: g.Wait blocks until every task has finished.
//
// Implementation:
//   - Each task allocates a private scratch pair and destroys it on exit.
//   - The quadrant sets qa and qb are shared but only read.
//
// Errors:
//   - The first task error, already tagged with its product label. Tasks
//     are not cancelled; successful slots stay in out and are released by
//     the caller's products.destroy.
//
// Complexity:
//   - Wall time ≈ the slowest product; Space 7 scratch pairs of h×h.
func runForkJoin(qa, qb matrix.QuadrantSet, p Policy, out *products) error {
	var g errgroup.Group
	g.SetLimit(productCount)

	log := p.logger()
	for idx := range productDefs {
		idx := idx // per-iteration copy (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			s := newScratch()
			defer s.destroy()

			m, err := computeProduct(idx, qa, qb, p, s)
			if err != nil {
				return err
			}
			out[idx] = m
			log.Debug("strassen: product done", "product", productDefs[idx].label, "size", m.Size())

			return nil
		})
	}

	return g.Wait()
}
