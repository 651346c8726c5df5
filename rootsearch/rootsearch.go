// Package rootsearch - the scan-then-refine pipeline.
//
// Search sweeps the interval once for sign changes (bisect stage), then
// probes each bracket with up to SeedsPerBracket Newton runs (newton
// stage).  A bracket yields at most one root; a refinement failure
// abandons the bracket immediately; a root that converges outside its
// bracket is discarded and the next seed tries again.
package rootsearch

import (
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/dualroot/bisect"
	"github.com/katalvlaran/dualroot/dual"
	"github.com/katalvlaran/dualroot/newton"
)

// searcher carries the state of one Search invocation.
type searcher[T constraints.Float] struct {
	f    dual.Func[T]
	opts Options[T]
	log  *zap.Logger
}

// Search locates roots of f inside [opts.Lower, opts.Upper].
//
// Contracts:
//   - f must be evaluatable across the interval; NaN/Inf regions cost
//     patience in the refiner but never crash the search.
//   - All options are validated up front; on error the zero Result is
//     returned and f is never evaluated.
//
// Pipeline:
//  1. bisect-style sweep at opts.Resolution, collecting sign-change
//     brackets in left-to-right order.
//  2. per bracket, up to SeedsPerBracket evenly spaced guesses starting
//     at the bracket's lower endpoint are refined with opts.Patience and
//     opts.Tolerance.  The first root confirmed strictly inside the
//     bracket is appended to the result; a failed refinement abandons
//     the bracket; an out-of-bracket convergence is skipped silently.
//
// Roots are appended in bracket order, so the output is sorted left to
// right regardless of opts.Workers; with Workers > 1 brackets are probed
// concurrently and the result is identical to the sequential one.
//
// Non-detection is not an error: an interval with no sign changes yields
// empty Roots and Brackets and a nil error.
//
// Errors: ErrInvalidInterval, ErrBadResolution, ErrBadPatience,
// ErrBadTolerance, ErrBadWorkers.
//
// Complexity: O(Resolution) scan evaluations plus at most
// SeedsPerBracket·(Patience+1) refiner evaluations per bracket.
func Search[T constraints.Float](f dual.Func[T], opts Options[T]) (Result[T], error) {
	// Stage 1 - validate every knob before touching f.
	if err := opts.validate(); err != nil {
		return Result[T]{}, err
	}

	// Stage 2 - resolve the trace sink once; nil stays silent.
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	// Stage 3 - single sweep for sign changes.  Options were validated
	// above, so the scan cannot reject them.
	brackets, err := bisect.Scan(f, bisect.Options[T]{
		Lower:      opts.Lower,
		Upper:      opts.Upper,
		Resolution: opts.Resolution,
	})
	if err != nil {
		return Result[T]{}, err
	}
	log.Debug("scan complete",
		zap.Int("brackets", len(brackets)),
		zap.Float64("lower", float64(opts.Lower)),
		zap.Float64("upper", float64(opts.Upper)))

	// Stage 4 - probe brackets, sequentially or on a bounded worker pool.
	s := &searcher[T]{f: f, opts: opts, log: log}

	var roots []T
	if opts.Workers > 1 && len(brackets) > 1 {
		roots = s.probeParallel(brackets)
	} else {
		roots = s.probeSequential(brackets)
	}

	log.Debug("search complete", zap.Int("roots", len(roots)))

	return Result[T]{Roots: roots, Brackets: brackets}, nil
}

// probeSequential walks the brackets in scan order.
func (s *searcher[T]) probeSequential(brackets []bisect.Bracket[T]) []T {
	roots := make([]T, 0, len(brackets))

	var (
		root T
		ok   bool
	)
	for _, br := range brackets {
		if root, ok = s.probe(br); ok {
			roots = append(roots, root)
		}
	}

	return roots
}

// probe refines up to SeedsPerBracket guesses inside br and reports the
// first root confirmed strictly inside it.
func (s *searcher[T]) probe(br bisect.Bracket[T]) (T, bool) {
	step := (br.Upper - br.Lower) / T(SeedsPerBracket)

	var (
		guess T                // current starting estimate
		res   newton.Result[T] // refinement outcome for this seed
		err   error            // refinement error (degenerate derivative)
		i     int              // seed index
	)
	for i = 0; i < SeedsPerBracket; i++ {
		guess = br.Lower + T(i)*step

		res, err = newton.Refine(s.f, newton.Options[T]{
			Guess:     guess,
			Patience:  s.opts.Patience,
			Tolerance: s.opts.Tolerance,
			Logger:    s.opts.Logger,
		})
		if err != nil || !res.Found {
			// One stubborn seed condemns the whole bracket: later seeds
			// would walk the same terrain at the same cost.
			s.log.Debug("abandoning bracket",
				zap.Float64("lower", float64(br.Lower)),
				zap.Float64("upper", float64(br.Upper)),
				zap.Int("seed", i),
				zap.NamedError("cause", err))

			return 0, false
		}

		if br.Lower < res.Root && res.Root < br.Upper {
			s.log.Debug("root confirmed",
				zap.Float64("root", float64(res.Root)),
				zap.Int("seed", i),
				zap.Int("iterations", res.Iterations))

			return res.Root, true
		}

		// Converged, but escaped the bracket: some other bracket owns
		// that root.  Try the next seed.
		s.log.Debug("root outside bracket",
			zap.Float64("root", float64(res.Root)),
			zap.Float64("lower", float64(br.Lower)),
			zap.Float64("upper", float64(br.Upper)),
			zap.Int("seed", i))
	}

	return 0, false
}
