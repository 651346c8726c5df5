// Package bisect - the sign-change scanner that feeds brackets to the
// Newton refiner.
//
// The interval is swept in Resolution equal steps, nudged by the machine
// epsilon of T.  The nudge matters twice: a root sitting exactly on a
// sub-interval boundary would otherwise evaluate to zero at both samples
// and never register as a strict sign change, and the final samples
// deliberately drift a hair past Upper so the right edge is never lost
// to rounding.
package bisect

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/dualroot/dual"
)

// Scan sweeps [opts.Lower, opts.Upper] and returns every sub-interval
// whose endpoint values have strictly opposite signs, in left-to-right
// order.  No sign change yields an empty, error-free result.
//
// Contracts:
//   - f is evaluated value-only (constant seeds, derivative channel 0),
//     exactly twice per sub-interval.
//   - opts.Lower < opts.Upper and opts.Resolution ≥ 1 (validated first).
//
// A zero at a sample point is not a sign change: the comparison is
// strict on both sides, so tangent touches and exact-zero samples are
// skipped rather than half-counted.
//
// Limitations by construction: even-multiplicity roots never flip the
// sign, and two roots inside one sub-interval cancel out.  Raise
// Resolution to separate close pairs.
//
// Errors: ErrInvalidInterval, ErrBadResolution.
//
// Complexity: O(Resolution) dual evaluations, O(hits) space.
func Scan[T constraints.Float](f dual.Func[T], opts Options[T]) ([]Bracket[T], error) {
	// Stage 1 - validate the interval and resolution up front.
	if err := opts.validate(); err != nil {
		return nil, err
	}

	// Stage 2 - sampling step with the epsilon nudge.
	step := (opts.Upper-opts.Lower)/T(opts.Resolution) + dual.Epsilon[T]()

	var (
		brackets []Bracket[T] // detected sign changes, scan order
		a, b     T            // current sub-interval endpoints
		fa, fb   T            // sampled values at a and b
		i        int          // sub-interval index
	)

	// Stage 3 - sweep; endpoints recomputed from Lower to avoid
	// accumulating the step error across the interval.
	for i = 0; i < opts.Resolution; i++ {
		a = opts.Lower + T(i)*step
		b = a + step

		fa = f(dual.Const(a)).Real
		fb = f(dual.Const(b)).Real

		if (fa > 0 && fb < 0) || (fa < 0 && fb > 0) {
			brackets = append(brackets, Bracket[T]{Lower: a, Upper: b})
		}
	}

	return brackets, nil
}
