// Package newton refines a single root estimate with the Newton–Raphson
// method, powered by exact derivatives from dualroot/dual.
//
// 🚀 What is Newton–Raphson?
//
//	From an estimate xₙ, follow the tangent of f down to its zero:
//	xₙ₊₁ = xₙ − f(xₙ)/f′(xₙ).  Near a simple root the error roughly
//	squares every step, which is why a handful of iterations usually
//	suffices.  The derivative comes from a dual-number evaluation, so
//	callers write plain arithmetic and never supply f′ themselves.
//
// ✨ Key features:
//   - one dual evaluation per step: value + exact slope, no finite differences
//   - step-size convergence test: |xₙ₊₁ − xₙ| < Tolerance, scale-invariant in f
//   - patience budget: divergence and cycling end in a clean Found=false
//   - zero-derivative detection: ErrDerivativeVanished instead of silent NaNs
//   - optional zap tracing of every verdict (silent by default)
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/dualroot/dual"
//	  "github.com/katalvlaran/dualroot/newton"
//	)
//
//	f := func(x dual.Number[float64]) dual.Number[float64] {
//	  return x.Sin() // roots at k·π
//	}
//	res, err := newton.Refine(f, newton.DefaultOptions(2.0))
//	if err != nil { … }
//	if res.Found {
//	  fmt.Println("root:", res.Root, "in", res.Iterations, "steps") // ≈ π
//	}
//
// Caveats:
//
//   - Convergence is local: a bad guess may walk to a different root or
//     run out of patience.  Pair with dualroot/bisect for bracketing, or
//     use dualroot/rootsearch for the full pipeline.
//   - A converged Result reports the estimate after the final step; with
//     the default tolerance it sits within ~1e-4 of the true root.
//
// See examples in example_test.go.
package newton
