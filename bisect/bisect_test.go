package bisect_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dualroot/bisect"
	"github.com/katalvlaran/dualroot/dual"
)

// sine is the canonical scan target; roots at every k·π.
func sine(x dual.Number[float64]) dual.Number[float64] { return x.Sin() }

// TestDefaultOptions pins the package defaults.
func TestDefaultOptions(t *testing.T) {
	opts := bisect.DefaultOptions(-5.0, 5.0)

	assert.Equal(t, -5.0, opts.Lower)
	assert.Equal(t, 5.0, opts.Upper)
	assert.Equal(t, bisect.DefaultResolution, opts.Resolution)
}

// TestScan_ValidatesOptions checks that degenerate intervals and a bad
// resolution surface as sentinels before f is evaluated even once.
func TestScan_ValidatesOptions(t *testing.T) {
	calls := 0
	f := func(x dual.Number[float64]) dual.Number[float64] {
		calls++

		return x
	}

	_, err := bisect.Scan(f, bisect.Options[float64]{Lower: 1, Upper: 1, Resolution: 10})
	assert.ErrorIs(t, err, bisect.ErrInvalidInterval, "empty interval must be rejected")

	_, err = bisect.Scan(f, bisect.Options[float64]{Lower: 2, Upper: 1, Resolution: 10})
	assert.ErrorIs(t, err, bisect.ErrInvalidInterval, "inverted interval must be rejected")

	_, err = bisect.Scan(f, bisect.Options[float64]{Lower: 0, Upper: 1, Resolution: 0})
	assert.ErrorIs(t, err, bisect.ErrBadResolution, "zero resolution must be rejected")

	assert.Zero(t, calls, "validation precedes any evaluation of f")
}

// TestScan_SineThreeBrackets sweeps sin over [−5,5] at resolution 1000 and
// expects exactly the three brackets around −π, 0 and π, in scan order.
func TestScan_SineThreeBrackets(t *testing.T) {
	brackets, err := bisect.Scan(sine, bisect.DefaultOptions(-5.0, 5.0))

	require.NoError(t, err)
	require.Len(t, brackets, 3, "sin has exactly 3 roots in [-5,5]")

	roots := []float64{-math.Pi, 0, math.Pi}
	for i, br := range brackets {
		assert.Less(t, br.Lower, roots[i], "bracket %d starts below its root", i)
		assert.Greater(t, br.Upper, roots[i], "bracket %d ends above its root", i)
	}
}

// TestScan_CosineFourBrackets sweeps cos over [−5,5] and expects four
// brackets: ±π/2 and ±3π/2.
func TestScan_CosineFourBrackets(t *testing.T) {
	cosine := func(x dual.Number[float64]) dual.Number[float64] { return x.Cos() }

	brackets, err := bisect.Scan(cosine, bisect.DefaultOptions(-5.0, 5.0))

	require.NoError(t, err)
	require.Len(t, brackets, 4, "cos has exactly 4 roots in [-5,5]")

	roots := []float64{-3 * math.Pi / 2, -math.Pi / 2, math.Pi / 2, 3 * math.Pi / 2}
	for i, br := range brackets {
		assert.Less(t, br.Lower, roots[i], "bracket %d starts below its root", i)
		assert.Greater(t, br.Upper, roots[i], "bracket %d ends above its root", i)
	}
}

// TestScan_NoSignChange sweeps x²+1, which never crosses zero: the result
// must be empty with a nil error.
func TestScan_NoSignChange(t *testing.T) {
	positive := func(x dual.Number[float64]) dual.Number[float64] {
		return x.Mul(x).Shift(1)
	}

	brackets, err := bisect.Scan(positive, bisect.DefaultOptions(-2.0, 2.0))

	require.NoError(t, err, "an empty harvest is not an error")
	assert.Empty(t, brackets)
}

// TestScan_BoundaryRootCaughtByOffset scans f(x)=x over [−1,1] at
// resolution 2.  Without the epsilon nudge the middle sample would land
// exactly on the root and the strict comparison would miss it; with the
// nudge the sample lands just past zero and the bracket is found.
func TestScan_BoundaryRootCaughtByOffset(t *testing.T) {
	identity := func(x dual.Number[float64]) dual.Number[float64] { return x }

	brackets, err := bisect.Scan(identity, bisect.Options[float64]{
		Lower:      -1,
		Upper:      1,
		Resolution: 2,
	})

	require.NoError(t, err)
	require.Len(t, brackets, 1, "the boundary root must be caught")
	assert.Less(t, brackets[0].Lower, 0.0)
	assert.Greater(t, brackets[0].Upper, 0.0)
}

// TestScan_ExactZeroSampleIsNotASignChange constructs a function whose
// value at one sample point is exactly zero: the strict comparison must
// skip it, leaving the root invisible at this resolution.
func TestScan_ExactZeroSampleIsNotASignChange(t *testing.T) {
	// Root placed exactly on the second sample: step = (2-0)/2 + eps,
	// so the sample after 0 sits at 1+eps.
	shift := 1.0 + dual.Epsilon[float64]()
	f := func(x dual.Number[float64]) dual.Number[float64] {
		return x.Shift(-shift)
	}

	brackets, err := bisect.Scan(f, bisect.Options[float64]{
		Lower:      0,
		Upper:      2,
		Resolution: 2,
	})

	require.NoError(t, err)
	assert.Empty(t, brackets, "a zero-valued sample must not count as a flip")
}

// TestScan_LastSampleDriftsPastUpper instruments f to record the largest
// argument seen: the epsilon nudge pushes the final sample past Upper.
func TestScan_LastSampleDriftsPastUpper(t *testing.T) {
	maxArg := math.Inf(-1)
	f := func(x dual.Number[float64]) dual.Number[float64] {
		if x.Real > maxArg {
			maxArg = x.Real
		}

		return x.Sin()
	}

	_, err := bisect.Scan(f, bisect.Options[float64]{Lower: 0, Upper: 1, Resolution: 10})

	require.NoError(t, err)
	assert.Greater(t, maxArg, 1.0, "the final sample reaches past Upper")
}

// TestScan_EvaluationPattern pins the evaluation contract: two value-only
// samples per sub-interval, derivative channel never seeded.
func TestScan_EvaluationPattern(t *testing.T) {
	var (
		calls  int
		seeded bool
	)
	f := func(x dual.Number[float64]) dual.Number[float64] {
		calls++
		if x.Deriv != 0 {
			seeded = true
		}

		return x.Sin()
	}

	_, err := bisect.Scan(f, bisect.Options[float64]{Lower: -5, Upper: 5, Resolution: 25})

	require.NoError(t, err)
	assert.Equal(t, 50, calls, "two evaluations per sub-interval")
	assert.False(t, seeded, "scanning needs values only, never derivatives")
}

// TestScan_BracketsInScanOrder confirms left-to-right ordering of the
// returned brackets.
func TestScan_BracketsInScanOrder(t *testing.T) {
	brackets, err := bisect.Scan(sine, bisect.DefaultOptions(-8.0, 8.0))

	require.NoError(t, err)
	require.Len(t, brackets, 5, "sin has 5 roots in [-8,8]")
	for i := 1; i < len(brackets); i++ {
		assert.Less(t, brackets[i-1].Lower, brackets[i].Lower,
			"brackets must arrive in scan order")
	}
}

// TestScan_Float32 runs the scanner at single precision; the three sine
// brackets must still be found.
func TestScan_Float32(t *testing.T) {
	f := func(x dual.Number[float32]) dual.Number[float32] { return x.Sin() }

	brackets, err := bisect.Scan(f, bisect.DefaultOptions[float32](-5, 5))

	require.NoError(t, err)
	require.Len(t, brackets, 3)
	assert.Less(t, brackets[1].Lower, float32(0))
	assert.Greater(t, brackets[1].Upper, float32(0))
}
