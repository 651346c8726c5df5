// Package dual defines the dual-number types, their constructors and the
// scalar-function contract shared by the root-finding packages.
package dual

import "golang.org/x/exp/constraints"

// Number is a first-order dual number over the float type T.
//
// Real carries the value, Deriv the coefficient of ε (the derivative part).
// Arithmetic on Number propagates derivatives by the chain rule, so after
//
//	y := f(Var(x0))
//
// y.Real == f(x0) and y.Deriv == f′(x0), exactly (up to roundoff of the
// individual operations — never a finite-difference approximation).
type Number[T constraints.Float] struct {
	// Real is the value component.
	Real T

	// Deriv is the derivative component (the ε coefficient).
	Deriv T
}

// Func is a scalar function evaluated on dual numbers.
//
// It is the input contract of newton.Refine, bisect.Scan and
// rootsearch.Search: implement f using Number's methods and every caller
// obtains the value and the exact derivative in one evaluation.
type Func[T constraints.Float] func(Number[T]) Number[T]

// Var returns v seeded as the differentiation variable (Deriv = 1).
// Evaluating f at Var(v) yields f(v) and f′(v).
func Var[T constraints.Float](v T) Number[T] {
	return Number[T]{Real: v, Deriv: 1}
}

// Const returns v as a constant (Deriv = 0): it contributes no derivative.
func Const[T constraints.Float](v T) Number[T] {
	return Number[T]{Real: v}
}

// New returns a Number with explicit value and derivative components.
func New[T constraints.Float](re, d T) Number[T] {
	return Number[T]{Real: re, Deriv: d}
}

// Dual2 is a second-order dual number: value, first and second derivative.
//
// It mirrors Number with an extra ε² channel, so one evaluation of f at
// Var2(x0) yields f(x0), f′(x0) and f″(x0).  The root-finding pipeline
// only consumes Number; Dual2 serves callers who also need curvature
// (e.g. Halley steps or convexity checks).
type Dual2[T constraints.Float] struct {
	// Real is the value component.
	Real T

	// Deriv is the first-derivative component.
	Deriv T

	// Deriv2 is the second-derivative component.
	Deriv2 T
}

// Var2 returns v seeded as the differentiation variable
// (Deriv = 1, Deriv2 = 0).
func Var2[T constraints.Float](v T) Dual2[T] {
	return Dual2[T]{Real: v, Deriv: 1}
}

// Const2 returns v as a constant (both derivative components zero).
func Const2[T constraints.Float](v T) Dual2[T] {
	return Dual2[T]{Real: v}
}

// New2 returns a Dual2 with explicit value and derivative components.
func New2[T constraints.Float](re, d, d2 T) Dual2[T] {
	return Dual2[T]{Real: re, Deriv: d, Deriv2: d2}
}

// Epsilon returns the unit roundoff of T: the smallest eps with
// 1+eps > 1 in T's arithmetic (2⁻⁵² for float64, 2⁻²³ for float32).
//
// bisect.Scan adds it to the sampling step so that roots sitting exactly
// on a sub-interval boundary still produce a sign change.
func Epsilon[T constraints.Float]() T {
	var eps T = 1
	for T(1)+eps/2 != T(1) {
		eps /= 2
	}

	return eps
}
