// Package newton defines configuration, result types and sentinel errors
// for the Newton–Raphson refiner.
package newton

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by Refine.
var (
	// ErrBadPatience indicates a non-positive iteration budget.
	ErrBadPatience = errors.New("newton: patience must be positive")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("newton: tolerance must be positive")

	// ErrDerivativeVanished indicates that f′ evaluated to exactly zero at
	// the current estimate, so the Newton step is undefined there.
	ErrDerivativeVanished = errors.New("newton: derivative vanished")
)

// Default iteration budget and step tolerance for DefaultOptions.
const (
	// DefaultPatience bounds a standalone refinement run.
	DefaultPatience = 1000

	// DefaultTolerance is the step-size threshold |xₙ₊₁−xₙ| must drop below.
	DefaultTolerance = 1e-4
)

// Options configures a single Newton–Raphson run.
//
// Guess     - starting estimate x₀.
// Patience  - iteration budget; the run gives up after Patience+1 steps.
// Tolerance - step-size convergence threshold (units of x, not of f).
// Logger    - optional trace sink; nil disables tracing entirely.
type Options[T constraints.Float] struct {
	Guess     T           // starting estimate
	Patience  int         // must be ≥ 1
	Tolerance T           // must be > 0
	Logger    *zap.Logger // nil means silent
}

// DefaultOptions returns Options seeded at guess with the package defaults:
// Patience = DefaultPatience, Tolerance = DefaultTolerance, no logger.
func DefaultOptions[T constraints.Float](guess T) Options[T] {
	return Options[T]{
		Guess:     guess,
		Patience:  DefaultPatience,
		Tolerance: DefaultTolerance,
	}
}

// Result is the outcome of one refinement run.
//
// Found distinguishes convergence from a gracefully exhausted budget;
// Root is meaningful only when Found is true.
type Result[T constraints.Float] struct {
	// Root is the estimate that satisfied the step-size test.
	Root T

	// Found reports whether the run converged within patience.
	Found bool

	// Iterations counts the Newton steps consumed (patience+1 on a
	// non-converged run).
	Iterations int
}
