// Package dual implements forward-mode automatic differentiation with
// dual numbers, generic over float32 and float64.
//
// 🚀 What is a dual number?
//
//	A pair (re, d) that behaves like re + d·ε with ε² = 0.  Evaluating an
//	ordinary arithmetic expression on dual numbers propagates the exact
//	derivative alongside the value — no symbolic algebra, no finite
//	differences, no truncation error.  Seed the input with Var (d = 1),
//	read f(x) and f′(x) off the result.  It’s the engine behind:
//	  • Newton–Raphson root refinement (see dualroot/newton)
//	  • Sensitivity analysis of scalar models
//	  • Gradient checks for hand-derived formulas
//
// ✨ Key features:
//   - value semantics: every operation returns a new Number, inputs never mutate
//   - full elementary-function set: Sin/Cos/Tan, Asin/Acos/Atan, Sinh/Cosh/Tanh,
//     Exp/Log/Sqrt/Pow/Abs, plus arithmetic and affine helpers (Scale, Shift)
//   - generic over constraints.Float — one implementation, both precisions
//   - second-order variant Dual2 for f, f′ and f″ in a single pass
//   - Epsilon[T]() exposes the unit roundoff of the instantiated precision
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dualroot/dual"
//
//	// f(x) = x·sin(x) + 2,  f′(3) = sin(3) + 3·cos(3)
//	f := func(x dual.Number[float64]) dual.Number[float64] {
//	  return x.Mul(x.Sin()).Shift(2)
//	}
//	y := f(dual.Var(3.0))
//	fmt.Println(y.Real, y.Deriv) // value and exact derivative at 3
//
// Performance:
//
//   - Each operation costs a constant handful of floating-point ops;
//     a dual evaluation of f is a small constant factor over a plain one.
//   - No allocations: Number and Dual2 are plain value structs.
//
// See examples in example_test.go and the root-finding pipeline in
// dualroot/newton, dualroot/bisect and dualroot/rootsearch.
package dual
