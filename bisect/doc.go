// Package bisect locates sign changes of a scalar function by sampling a
// bounded interval at fixed resolution.
//
// 🚀 What is bracket scanning?
//
//	A continuous function that is negative at one point and positive at
//	another must cross zero in between.  Sweeping the interval in small
//	steps and recording every strict sign flip yields a list of brackets,
//	each guaranteed (up to sampling resolution) to hold at least one root.
//	Brackets are the raw material for the Newton refinement stage in
//	dualroot/newton and dualroot/rootsearch.
//
// ✨ Key features:
//   - strict sign test: exact zeros at samples never half-count as flips
//   - epsilon-nudged step: boundary roots stay visible, the last samples
//     intentionally drift a hair past Upper rather than stop short of it
//   - value-only evaluation: constant dual seeds, no derivative cost
//   - generic over float32 and float64 via constraints.Float
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/dualroot/bisect"
//	  "github.com/katalvlaran/dualroot/dual"
//	)
//
//	f := func(x dual.Number[float64]) dual.Number[float64] {
//	  return x.Sin()
//	}
//	brackets, err := bisect.Scan(f, bisect.DefaultOptions(-5.0, 5.0))
//	// three brackets: around −π, 0 and π
//
// Caveats:
//
//   - Completeness is bounded by Resolution: root pairs closer than one
//     step cancel out, and even-multiplicity roots never flip the sign.
//   - Brackets report the sampled endpoints, so an Upper may sit slightly
//     past the scanned interval; downstream acceptance checks handle it.
//
// Performance: O(Resolution) evaluations, two per sub-interval.
//
// See examples in example_test.go.
package bisect
