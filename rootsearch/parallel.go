// Package rootsearch - concurrent bracket probing.
//
// Brackets are independent once the scan has produced them, so probing
// parallelizes trivially: one task per bracket, at most opts.Workers in
// flight, every outcome written to its own slot.  Roots are collected
// from the slots in scan order after the group joins, which keeps the
// output bit-identical to the sequential path.
package rootsearch

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dualroot/bisect"
)

// probeOutcome is one bracket's slot in the parallel collection.
type probeOutcome[T constraints.Float] struct {
	root T
	ok   bool
}

// probeParallel probes every bracket on a bounded worker pool and
// returns the confirmed roots in scan order.
func (s *searcher[T]) probeParallel(brackets []bisect.Bracket[T]) []T {
	slots := make([]probeOutcome[T], len(brackets))

	// Stage 1 - fan out, one task per bracket, bounded by Workers.
	g := new(errgroup.Group)
	g.SetLimit(s.opts.Workers)

	for idx, br := range brackets {
		g.Go(func() error {
			root, ok := s.probe(br)
			slots[idx] = probeOutcome[T]{root: root, ok: ok}

			return nil
		})
	}

	// Tasks never fail; Wait only joins the pool.
	_ = g.Wait()

	// Stage 2 - collect in scan order, exactly like the sequential walk.
	roots := make([]T, 0, len(brackets))
	for _, slot := range slots {
		if slot.ok {
			roots = append(roots, slot.root)
		}
	}

	return roots
}
