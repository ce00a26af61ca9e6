package dimgo

import (
	"cmp"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/dimgo/dim"
)

// Scalar is a single value of numeric type N with dimension D.
//
// The zero value is zero. Scalars of one type compare with ==; scalars of
// different dimensions are different types and neither assign nor convert
// to each other.
type Scalar[N constraints.Float, D dim.Dimension] struct {
	_ [0]D
	v N
}

// New returns the scalar v with dimension D.
//
//	d := dimgo.New[dim.Length](30.0)
//	m := dimgo.New[dim.Mass, float32](2)
func New[D dim.Dimension, N constraints.Float](v N) Scalar[N, D] {
	return Scalar[N, D]{v: v}
}

// Number wraps a raw number as a dimensionless scalar.
func Number[N constraints.Float](v N) Scalar[N, dim.Dimensionless] {
	return Scalar[N, dim.Dimensionless]{v: v}
}

// Float unwraps a dimensionless scalar. Scalars of any other dimension do
// not fit the parameter type.
func Float[N constraints.Float](x Scalar[N, dim.Dimensionless]) N {
	return x.v
}

// Value returns the raw number.
func (x Scalar[N, D]) Value() N {
	return x.v
}

// Dimension returns the descriptor of D.
func (x Scalar[N, D]) Dimension() dim.Exponents {
	return dim.Of[D]()
}

// Equal reports whether x == y.
func (x Scalar[N, D]) Equal(y Scalar[N, D]) bool { return x.v == y.v }

// Less reports whether x < y.
func (x Scalar[N, D]) Less(y Scalar[N, D]) bool { return x.v < y.v }

// LessEqual reports whether x <= y.
func (x Scalar[N, D]) LessEqual(y Scalar[N, D]) bool { return x.v <= y.v }

// Greater reports whether x > y.
func (x Scalar[N, D]) Greater(y Scalar[N, D]) bool { return x.v > y.v }

// GreaterEqual reports whether x >= y.
func (x Scalar[N, D]) GreaterEqual(y Scalar[N, D]) bool { return x.v >= y.v }

// Compare returns -1, 0 or +1 following cmp.Compare.
func (x Scalar[N, D]) Compare(y Scalar[N, D]) int {
	return cmp.Compare(x.v, y.v)
}

// Add returns x + y.
func (x Scalar[N, D]) Add(y Scalar[N, D]) Scalar[N, D] {
	return Scalar[N, D]{v: x.v + y.v}
}

// Sub returns x - y.
func (x Scalar[N, D]) Sub(y Scalar[N, D]) Scalar[N, D] {
	return Scalar[N, D]{v: x.v - y.v}
}

// Pos returns a copy of x.
func (x Scalar[N, D]) Pos() Scalar[N, D] {
	return x
}

// Neg returns -x.
func (x Scalar[N, D]) Neg() Scalar[N, D] {
	return Scalar[N, D]{v: -x.v}
}

// Scale returns x * k.
func (x Scalar[N, D]) Scale(k N) Scalar[N, D] {
	return Scalar[N, D]{v: x.v * k}
}

// Quo returns x / k.
func (x Scalar[N, D]) Quo(k N) Scalar[N, D] {
	return Scalar[N, D]{v: x.v / k}
}

// AddAssign sets x to x + y and returns x.
func (x *Scalar[N, D]) AddAssign(y Scalar[N, D]) *Scalar[N, D] {
	x.v += y.v
	return x
}

// SubAssign sets x to x - y and returns x.
func (x *Scalar[N, D]) SubAssign(y Scalar[N, D]) *Scalar[N, D] {
	x.v -= y.v
	return x
}

// ScaleAssign sets x to x * k and returns x.
func (x *Scalar[N, D]) ScaleAssign(k N) *Scalar[N, D] {
	x.v *= k
	return x
}

// QuoAssign sets x to x / k and returns x.
func (x *Scalar[N, D]) QuoAssign(k N) *Scalar[N, D] {
	x.v /= k
	return x
}

// Mul returns x * y with the declared dimension R, which must be A∘B.
//
//	v := dimgo.Mul[dim.Speed](distance, frequency)
func Mul[R dim.Dimension, N constraints.Float, A, B dim.Dimension](x Scalar[N, A], y Scalar[N, B]) Scalar[N, R] {
	checkProduct[R, A, B]("multiply")
	return Scalar[N, R]{v: x.v * y.v}
}

// Div returns x / y with the declared dimension R, which must be A∘B⁻¹.
func Div[R dim.Dimension, N constraints.Float, A, B dim.Dimension](x Scalar[N, A], y Scalar[N, B]) Scalar[N, R] {
	checkQuotient[R, A, B]("divide")
	return Scalar[N, R]{v: x.v / y.v}
}

// Reciprocal returns k / x with the declared dimension R, which must be D⁻¹.
func Reciprocal[R dim.Dimension, N constraints.Float, D dim.Dimension](k N, x Scalar[N, D]) Scalar[N, R] {
	d := dim.Of[D]()
	mustUnary("invert", dim.Of[R](), d.Invert(), d)
	return Scalar[N, R]{v: k / x.v}
}
