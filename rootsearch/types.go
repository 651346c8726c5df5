// Package rootsearch defines configuration, result types and sentinel
// errors for the scan-then-refine root search.
package rootsearch

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/dualroot/bisect"
)

// Sentinel errors returned by Search.  Validation happens at this
// boundary, so the sentinels of the underlying stages never escape.
var (
	// ErrInvalidInterval indicates that the search interval is empty or
	// inverted: Lower must be strictly below Upper.
	ErrInvalidInterval = errors.New("rootsearch: lower bound must be strictly below upper")

	// ErrBadResolution indicates a non-positive scan resolution.
	ErrBadResolution = errors.New("rootsearch: resolution must be positive")

	// ErrBadPatience indicates a non-positive refinement budget.
	ErrBadPatience = errors.New("rootsearch: patience must be positive")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("rootsearch: tolerance must be positive")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("rootsearch: workers must not be negative")
)

// Defaults used by DefaultOptions.
const (
	// DefaultResolution is the bracket-scan sub-interval count.
	DefaultResolution = 1000

	// DefaultPatience bounds each per-seed refinement run; it is higher
	// than the standalone newton default because a search probes up to
	// SeedsPerBracket guesses per bracket.
	DefaultPatience = 2000

	// DefaultTolerance is the step-size threshold handed to the refiner.
	DefaultTolerance = 1e-4
)

// SeedsPerBracket is the number of evenly spaced starting guesses probed
// inside each bracket, beginning at its lower endpoint.  Probing stops at
// the first confirmed root or the first failed refinement.
const SeedsPerBracket = 100

// Options configures a Search run.
//
// Lower, Upper - the interval to sweep; Lower must be strictly below Upper.
// Resolution   - scan sub-intervals (bisect stage).
// Patience     - per-seed refinement budget (newton stage).
// Tolerance    - step-size convergence threshold (newton stage).
// Workers      - 0 or 1 probes brackets sequentially; n > 1 probes up to
// n brackets concurrently with identical output.
// Logger       - optional trace sink shared by all stages; nil is silent.
type Options[T constraints.Float] struct {
	Lower      T           // interval start
	Upper      T           // interval end
	Resolution int         // must be ≥ 1
	Patience   int         // must be ≥ 1
	Tolerance  T           // must be > 0
	Workers    int         // must be ≥ 0; ≤ 1 means sequential
	Logger     *zap.Logger // nil means silent
}

// DefaultOptions returns Options for [lower, upper] with the package
// defaults: Resolution 1000, Patience 2000, Tolerance 1e-4, sequential
// probing, no logger.
func DefaultOptions[T constraints.Float](lower, upper T) Options[T] {
	return Options[T]{
		Lower:      lower,
		Upper:      upper,
		Resolution: DefaultResolution,
		Patience:   DefaultPatience,
		Tolerance:  DefaultTolerance,
	}
}

// validate checks every knob before any evaluation of f.
func (o Options[T]) validate() error {
	if o.Lower >= o.Upper {
		return ErrInvalidInterval
	}
	if o.Resolution < 1 {
		return ErrBadResolution
	}
	if o.Patience < 1 {
		return ErrBadPatience
	}
	if o.Tolerance <= 0 {
		return ErrBadTolerance
	}
	if o.Workers < 0 {
		return ErrBadWorkers
	}

	return nil
}

// Result is the outcome of a Search run.
//
// Roots and Brackets are aligned with scan order, but not with each
// other: every detected bracket appears in Brackets, while Roots holds
// only the confirmed ones (at most one per bracket).
type Result[T constraints.Float] struct {
	// Roots lists the confirmed roots, left to right.
	Roots []T

	// Brackets lists every sign change the scan detected, including
	// those the refiner later abandoned.
	Brackets []bisect.Bracket[T]
}
