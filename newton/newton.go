// Package newton - Newton–Raphson refinement on dual numbers.
//
// One dual evaluation per step supplies f(xₙ) and f′(xₙ) together, so the
// classic update xₙ₊₁ = xₙ − f(xₙ)/f′(xₙ) never touches a finite
// difference.  Convergence is judged on the step size |xₙ₊₁ − xₙ|; the
// iteration budget (patience) turns divergence into a reported outcome
// instead of an endless loop.
package newton

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/dualroot/dual"
)

// refineHint is attached to give-up traces; it mirrors the advice the
// tool has always printed for stubborn guesses.
const refineHint = "try updating the initial guess or increasing the tolerance or patience"

// Refine runs Newton–Raphson from opts.Guess until the step size drops
// below opts.Tolerance or the patience budget is exhausted.
//
// Contracts:
//   - f must be evaluatable at every visited estimate; NaN/Inf values are
//     tolerated and simply burn patience.
//   - opts.Patience ≥ 1 and opts.Tolerance > 0 (validated up front).
//
// The convergence test reads |xₙ₊₁ − xₙ| < Tolerance, never |f(xₙ)|:
// tolerance speaks the units of x, so rescaling f cannot change the
// verdict or the iteration path.
//
// Returns:
//   - converged: Result{Root, Found: true, Iterations}.
//   - exhausted: Result{Found: false, Iterations: Patience+1} and a nil
//     error — non-convergence is an outcome, not a failure of the call.
//   - ErrDerivativeVanished when f′(xₙ) == 0 exactly; the Result carries
//     the iterations consumed so far.
//   - ErrBadPatience / ErrBadTolerance on invalid options.
//
// Complexity: one dual evaluation per iteration, O(1) space.
func Refine[T constraints.Float](f dual.Func[T], opts Options[T]) (Result[T], error) {
	// Stage 1 - validate configuration before any evaluation.
	if err := opts.validate(); err != nil {
		return Result[T]{}, err
	}

	// Stage 2 - resolve the trace sink once; nil stays silent.
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	var (
		current = opts.Guess   // running estimate xₙ
		next    T              // candidate estimate xₙ₊₁
		y       dual.Number[T] // f evaluated at the current estimate
		count   int            // Newton steps consumed
	)

	for {
		count++

		// Stage 3 - one dual evaluation yields value and slope together.
		y = f(dual.Var(current))
		if y.Deriv == 0 {
			log.Debug("derivative vanished",
				zap.Float64("estimate", float64(current)),
				zap.Int("iterations", count))

			return Result[T]{Iterations: count},
				fmt.Errorf("%w at x=%v", ErrDerivativeVanished, float64(current))
		}

		// Stage 4 - Newton step.
		next = current - y.Real/y.Deriv

		// Stage 5 - step-size convergence test.
		if abs(next-current) < opts.Tolerance {
			log.Debug("found root",
				zap.Float64("root", float64(next)),
				zap.Int("iterations", count))

			return Result[T]{Root: next, Found: true, Iterations: count}, nil
		}

		// Stage 6 - budget check; the estimate in flight is discarded.
		if count > opts.Patience {
			log.Debug("failed to find root",
				zap.Float64("guess", float64(opts.Guess)),
				zap.Float64("last", float64(next)),
				zap.Int("iterations", count),
				zap.String("hint", refineHint))

			return Result[T]{Iterations: count}, nil
		}

		current = next
	}
}

// validate checks the numeric knobs; the logger is free-form.
func (o Options[T]) validate() error {
	if o.Patience < 1 {
		return ErrBadPatience
	}
	if o.Tolerance <= 0 {
		return ErrBadTolerance
	}

	return nil
}

// abs is a generic |x|; math.Abs would force a float64 round-trip.
func abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}
