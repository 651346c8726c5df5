// Package dual - Dual2 operations: the second-order counterpart of dual.go.
//
// For g = f(u) with u carrying (u, u′, u″) the channels compose as
//
//	g      = f(u)
//	g.Deriv  = f′(u)·u′
//	g.Deriv2 = f″(u)·u′² + f′(u)·u″
//
// which is the second-order chain rule; products and quotients use the
// Leibniz forms spelled out on each method.
package dual

import (
	"fmt"
	"math"
)

// Add returns x + y.
func (x Dual2[T]) Add(y Dual2[T]) Dual2[T] {
	return Dual2[T]{
		Real:   x.Real + y.Real,
		Deriv:  x.Deriv + y.Deriv,
		Deriv2: x.Deriv2 + y.Deriv2,
	}
}

// Sub returns x − y.
func (x Dual2[T]) Sub(y Dual2[T]) Dual2[T] {
	return Dual2[T]{
		Real:   x.Real - y.Real,
		Deriv:  x.Deriv - y.Deriv,
		Deriv2: x.Deriv2 - y.Deriv2,
	}
}

// Mul returns x·y; second channel is u″v + 2u′v′ + uv″.
func (x Dual2[T]) Mul(y Dual2[T]) Dual2[T] {
	return Dual2[T]{
		Real:   x.Real * y.Real,
		Deriv:  x.Deriv*y.Real + x.Real*y.Deriv,
		Deriv2: x.Deriv2*y.Real + 2*x.Deriv*y.Deriv + x.Real*y.Deriv2,
	}
}

// Div returns q = x/y; from x = q·y the second channel solves to
// (x″ − 2q′y′ − q·y″)/y.
func (x Dual2[T]) Div(y Dual2[T]) Dual2[T] {
	q := x.Real / y.Real
	d1 := (x.Deriv*y.Real - x.Real*y.Deriv) / (y.Real * y.Real)

	return Dual2[T]{
		Real:   q,
		Deriv:  d1,
		Deriv2: (x.Deriv2 - 2*d1*y.Deriv - q*y.Deriv2) / y.Real,
	}
}

// Neg returns −x.
func (x Dual2[T]) Neg() Dual2[T] {
	return Dual2[T]{Real: -x.Real, Deriv: -x.Deriv, Deriv2: -x.Deriv2}
}

// Scale returns s·x for a plain scalar s.
func (x Dual2[T]) Scale(s T) Dual2[T] {
	return Dual2[T]{Real: s * x.Real, Deriv: s * x.Deriv, Deriv2: s * x.Deriv2}
}

// Shift returns x + s for a plain scalar s (derivatives unchanged).
func (x Dual2[T]) Shift(s T) Dual2[T] {
	return Dual2[T]{Real: x.Real + s, Deriv: x.Deriv, Deriv2: x.Deriv2}
}

// Sin returns sin(x) with both derivative channels.
func (x Dual2[T]) Sin() Dual2[T] {
	s, c := math.Sincos(float64(x.Real))

	return Dual2[T]{
		Real:   T(s),
		Deriv:  x.Deriv * T(c),
		Deriv2: x.Deriv2*T(c) - x.Deriv*x.Deriv*T(s),
	}
}

// Cos returns cos(x) with both derivative channels.
func (x Dual2[T]) Cos() Dual2[T] {
	s, c := math.Sincos(float64(x.Real))

	return Dual2[T]{
		Real:   T(c),
		Deriv:  -x.Deriv * T(s),
		Deriv2: -x.Deriv2*T(s) - x.Deriv*x.Deriv*T(c),
	}
}

// Exp returns eˣ; second channel eˣ·(x″ + x′²).
func (x Dual2[T]) Exp() Dual2[T] {
	e := T(math.Exp(float64(x.Real)))

	return Dual2[T]{
		Real:   e,
		Deriv:  x.Deriv * e,
		Deriv2: e * (x.Deriv2 + x.Deriv*x.Deriv),
	}
}

// Log returns ln(x); second channel x″/x − (x′/x)².
func (x Dual2[T]) Log() Dual2[T] {
	r := x.Deriv / x.Real

	return Dual2[T]{
		Real:   T(math.Log(float64(x.Real))),
		Deriv:  r,
		Deriv2: x.Deriv2/x.Real - r*r,
	}
}

// Sqrt returns √x; second channel x″/(2√x) − x′²/(4x√x).
func (x Dual2[T]) Sqrt() Dual2[T] {
	s := T(math.Sqrt(float64(x.Real)))

	return Dual2[T]{
		Real:   s,
		Deriv:  x.Deriv / (2 * s),
		Deriv2: x.Deriv2/(2*s) - x.Deriv*x.Deriv/(4*x.Real*s),
	}
}

// Pow returns x^p for a plain scalar exponent p.
func (x Dual2[T]) Pow(p T) Dual2[T] {
	re, fp := float64(x.Real), float64(p)
	f1 := T(fp * math.Pow(re, fp-1))
	f2 := T(fp * (fp - 1) * math.Pow(re, fp-2))

	return Dual2[T]{
		Real:   T(math.Pow(re, fp)),
		Deriv:  x.Deriv * f1,
		Deriv2: x.Deriv2*f1 + x.Deriv*x.Deriv*f2,
	}
}

// String renders the number as value±d1ε±d2ε², e.g. "1+2ε+0.5ε²".
func (x Dual2[T]) String() string {
	return fmt.Sprintf("%g%+gε%+gε²",
		float64(x.Real), float64(x.Deriv), float64(x.Deriv2))
}
