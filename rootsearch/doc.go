// Package rootsearch finds the real roots of a scalar differentiable
// function inside a bounded interval: scan for sign changes, refine each
// bracket with Newton–Raphson, report at most one root per bracket.
//
// 🚀 What is the pipeline?
//
//	Newton's method is fast but local; bracketing is global but coarse.
//	Search combines them: a fixed-resolution sweep (dualroot/bisect)
//	harvests every strict sign change, then up to 100 evenly spaced
//	guesses per bracket are polished with dual-number Newton steps
//	(dualroot/newton).  The caller writes f once, in plain arithmetic on
//	dual.Number, and derivatives come along for free.
//
// ✨ Key features:
//   - one result per bracket: the first root confirmed strictly inside it
//   - early abandon: a seed that fails to converge condemns its bracket
//     instead of burning the remaining budget
//   - strays discarded: a refinement that escapes its bracket is dropped
//     silently; the bracket that owns the root reports it instead
//   - deterministic output: roots arrive in left-to-right scan order;
//     Workers > 1 probes brackets concurrently with identical results
//   - sentinel-error validation: malformed options never touch f
//   - optional zap tracing across all stages (silent by default)
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/dualroot/dual"
//	  "github.com/katalvlaran/dualroot/rootsearch"
//	)
//
//	f := func(x dual.Number[float64]) dual.Number[float64] {
//	  return x.Sin()
//	}
//	res, err := rootsearch.Search(f, rootsearch.DefaultOptions(-5.0, 5.0))
//	if err != nil { … }
//	fmt.Println(res.Roots)    // ≈ [-π, 0, π]
//	fmt.Println(res.Brackets) // the three sign changes behind them
//
// Caveats:
//
//   - Completeness is bounded by Resolution: even-multiplicity roots
//     never flip the sign, and root pairs inside one sub-interval cancel.
//   - Patience bounds each seed, not the search: a pathological f costs
//     at most SeedsPerBracket·(Patience+1) evaluations per bracket.
//
// See examples in example_test.go.
package rootsearch
