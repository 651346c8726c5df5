// Package dual - Number operations: arithmetic, affine helpers and
// elementary functions.
//
// Every method is a pure function of its receiver and arguments; results
// are returned, receivers never mutate.  Derivative components follow the
// usual calculus rules:
//
//	(u+v)′ = u′+v′        (uv)′ = u′v + uv′
//	(u/v)′ = (u′v − uv′)/v²   f(u)′ = f′(u)·u′
//
// Elementary functions evaluate through package math in float64 and
// convert back to T, so float32 instantiations lose no more precision
// than a float32 call chain would anyway.
package dual

import (
	"fmt"
	"math"
)

// Add returns x + y.
func (x Number[T]) Add(y Number[T]) Number[T] {
	return Number[T]{Real: x.Real + y.Real, Deriv: x.Deriv + y.Deriv}
}

// Sub returns x − y.
func (x Number[T]) Sub(y Number[T]) Number[T] {
	return Number[T]{Real: x.Real - y.Real, Deriv: x.Deriv - y.Deriv}
}

// Mul returns x·y with the product rule.
func (x Number[T]) Mul(y Number[T]) Number[T] {
	return Number[T]{
		Real:  x.Real * y.Real,
		Deriv: x.Deriv*y.Real + x.Real*y.Deriv,
	}
}

// Div returns x/y with the quotient rule.
// A zero y.Real follows IEEE semantics: ±Inf or NaN propagate into the result.
func (x Number[T]) Div(y Number[T]) Number[T] {
	return Number[T]{
		Real:  x.Real / y.Real,
		Deriv: (x.Deriv*y.Real - x.Real*y.Deriv) / (y.Real * y.Real),
	}
}

// Neg returns −x.
func (x Number[T]) Neg() Number[T] {
	return Number[T]{Real: -x.Real, Deriv: -x.Deriv}
}

// Scale returns s·x for a plain scalar s.
func (x Number[T]) Scale(s T) Number[T] {
	return Number[T]{Real: s * x.Real, Deriv: s * x.Deriv}
}

// Shift returns x + s for a plain scalar s (derivative unchanged).
func (x Number[T]) Shift(s T) Number[T] {
	return Number[T]{Real: x.Real + s, Deriv: x.Deriv}
}

// Sin returns sin(x); derivative cos(x)·x′.
func (x Number[T]) Sin() Number[T] {
	s, c := math.Sincos(float64(x.Real))

	return Number[T]{Real: T(s), Deriv: x.Deriv * T(c)}
}

// Cos returns cos(x); derivative −sin(x)·x′.
func (x Number[T]) Cos() Number[T] {
	s, c := math.Sincos(float64(x.Real))

	return Number[T]{Real: T(c), Deriv: -x.Deriv * T(s)}
}

// Tan returns tan(x); derivative x′/cos²(x).
func (x Number[T]) Tan() Number[T] {
	c := math.Cos(float64(x.Real))

	return Number[T]{
		Real:  T(math.Tan(float64(x.Real))),
		Deriv: x.Deriv / T(c*c),
	}
}

// Asin returns arcsin(x); derivative x′/√(1−x²).
// Outside [−1,1] the math package yields NaN, which propagates.
func (x Number[T]) Asin() Number[T] {
	re := float64(x.Real)

	return Number[T]{
		Real:  T(math.Asin(re)),
		Deriv: x.Deriv / T(math.Sqrt(1-re*re)),
	}
}

// Acos returns arccos(x); derivative −x′/√(1−x²).
func (x Number[T]) Acos() Number[T] {
	re := float64(x.Real)

	return Number[T]{
		Real:  T(math.Acos(re)),
		Deriv: -x.Deriv / T(math.Sqrt(1-re*re)),
	}
}

// Atan returns arctan(x); derivative x′/(1+x²).
func (x Number[T]) Atan() Number[T] {
	re := float64(x.Real)

	return Number[T]{
		Real:  T(math.Atan(re)),
		Deriv: x.Deriv / T(1+re*re),
	}
}

// Sinh returns sinh(x); derivative cosh(x)·x′.
func (x Number[T]) Sinh() Number[T] {
	re := float64(x.Real)

	return Number[T]{
		Real:  T(math.Sinh(re)),
		Deriv: x.Deriv * T(math.Cosh(re)),
	}
}

// Cosh returns cosh(x); derivative sinh(x)·x′.
func (x Number[T]) Cosh() Number[T] {
	re := float64(x.Real)

	return Number[T]{
		Real:  T(math.Cosh(re)),
		Deriv: x.Deriv * T(math.Sinh(re)),
	}
}

// Tanh returns tanh(x); derivative x′/cosh²(x).
func (x Number[T]) Tanh() Number[T] {
	c := math.Cosh(float64(x.Real))

	return Number[T]{
		Real:  T(math.Tanh(float64(x.Real))),
		Deriv: x.Deriv / T(c*c),
	}
}

// Exp returns eˣ; derivative eˣ·x′.
func (x Number[T]) Exp() Number[T] {
	e := T(math.Exp(float64(x.Real)))

	return Number[T]{Real: e, Deriv: x.Deriv * e}
}

// Log returns ln(x); derivative x′/x.
// Non-positive values follow math.Log semantics (−Inf at 0, NaN below).
func (x Number[T]) Log() Number[T] {
	return Number[T]{
		Real:  T(math.Log(float64(x.Real))),
		Deriv: x.Deriv / x.Real,
	}
}

// Sqrt returns √x; derivative x′/(2√x).
func (x Number[T]) Sqrt() Number[T] {
	s := T(math.Sqrt(float64(x.Real)))

	return Number[T]{Real: s, Deriv: x.Deriv / (2 * s)}
}

// Pow returns x^p for a plain scalar exponent p;
// derivative p·x^(p−1)·x′.
func (x Number[T]) Pow(p T) Number[T] {
	re, fp := float64(x.Real), float64(p)

	return Number[T]{
		Real:  T(math.Pow(re, fp)),
		Deriv: x.Deriv * T(fp*math.Pow(re, fp-1)),
	}
}

// Abs returns |x|; derivative sign(x)·x′, with the convention that the
// derivative at exactly zero is zero.
func (x Number[T]) Abs() Number[T] {
	switch {
	case x.Real > 0:
		return x
	case x.Real < 0:
		return x.Neg()
	default:
		return Number[T]{Real: x.Real}
	}
}

// String renders the number as value±derivativeε, e.g. "1.5+0.25ε".
func (x Number[T]) String() string {
	return fmt.Sprintf("%g%+gε", float64(x.Real), float64(x.Deriv))
}
