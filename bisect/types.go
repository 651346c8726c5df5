// Package bisect defines the bracket type, scan configuration and
// sentinel errors for the sign-change scanner.
package bisect

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by Scan.
var (
	// ErrInvalidInterval indicates that the scan interval is empty or
	// inverted: Lower must be strictly below Upper.
	ErrInvalidInterval = errors.New("bisect: lower bound must be strictly below upper")

	// ErrBadResolution indicates a non-positive sub-interval count.
	ErrBadResolution = errors.New("bisect: resolution must be positive")
)

// DefaultResolution is the sub-interval count used by DefaultOptions.
const DefaultResolution = 1000

// Bracket is a sub-interval whose sampled endpoint values had strictly
// opposite signs at detection time, so it encloses at least one root of
// a continuous function.
type Bracket[T constraints.Float] struct {
	// Lower is the left endpoint of the bracket.
	Lower T

	// Upper is the right endpoint; always Lower + step for the scan that
	// produced it, which may reach slightly past the scanned interval.
	Upper T
}

// Options configures a scan.
//
// Lower, Upper - the interval to sweep; Lower must be strictly below Upper.
// Resolution   - number of equal sub-intervals to sample; higher values
// catch closer root pairs at proportionally higher cost.
type Options[T constraints.Float] struct {
	Lower      T   // interval start
	Upper      T   // interval end, exclusive of the epsilon drift
	Resolution int // must be ≥ 1
}

// DefaultOptions returns Options for [lower, upper] with
// Resolution = DefaultResolution.
func DefaultOptions[T constraints.Float](lower, upper T) Options[T] {
	return Options[T]{
		Lower:      lower,
		Upper:      upper,
		Resolution: DefaultResolution,
	}
}

// validate checks interval shape and resolution.
func (o Options[T]) validate() error {
	if o.Lower >= o.Upper {
		return ErrInvalidInterval
	}
	if o.Resolution < 1 {
		return ErrBadResolution
	}

	return nil
}
