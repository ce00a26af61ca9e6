package dimgo

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/dimgo/dim"
	"github.com/hupe1980/dimgo/internal/kernel"
)

// Coords is the coordinate storage of a vector or point: an array [K]N with
// 1 <= K <= 16. K is the spatial size.
type Coords[N constraints.Float] interface {
	kernel.Coords[N]
}

// Vector is a K-component quantity (C = [K]N) whose components all have
// dimension D. The zero value is the zero vector.
type Vector[N constraints.Float, D dim.Dimension, C Coords[N]] struct {
	_ [0]D
	c C
}

// NewVector returns the vector with components c.
//
//	v := dimgo.NewVector[dim.Length, float64]([3]float64{1, 2, 3})
func NewVector[D dim.Dimension, N constraints.Float, C Coords[N]](c C) Vector[N, D, C] {
	return Vector[N, D, C]{c: c}
}

// At returns component i. It panics if i is out of range.
func (v Vector[N, D, C]) At(i int) Scalar[N, D] {
	return Scalar[N, D]{v: v.c[i]}
}

// Set sets component i. It panics if i is out of range.
func (v *Vector[N, D, C]) Set(i int, s Scalar[N, D]) {
	v.c[i] = s.v
}

// Len returns the spatial size K.
func (v Vector[N, D, C]) Len() int {
	return len(v.c)
}

// Raw returns the raw components.
func (v Vector[N, D, C]) Raw() C {
	return v.c
}

// Dimension returns the descriptor of D.
func (v Vector[N, D, C]) Dimension() dim.Exponents {
	return dim.Of[D]()
}

// Equal reports whether all components are equal.
func (v Vector[N, D, C]) Equal(w Vector[N, D, C]) bool {
	for i := 0; i < len(v.c); i++ {
		if v.c[i] != w.c[i] {
			return false
		}
	}
	return true
}

// Add returns v + w.
func (v Vector[N, D, C]) Add(w Vector[N, D, C]) Vector[N, D, C] {
	kernel.Add[N](&v.c, &w.c)
	return v
}

// Sub returns v - w.
func (v Vector[N, D, C]) Sub(w Vector[N, D, C]) Vector[N, D, C] {
	kernel.Sub[N](&v.c, &w.c)
	return v
}

// Pos returns a copy of v.
func (v Vector[N, D, C]) Pos() Vector[N, D, C] {
	return v
}

// Neg returns -v.
func (v Vector[N, D, C]) Neg() Vector[N, D, C] {
	kernel.Neg[N](&v.c)
	return v
}

// Scale multiplies every component by k.
func (v Vector[N, D, C]) Scale(k N) Vector[N, D, C] {
	kernel.Scale(&v.c, k)
	return v
}

// Quo divides every component by k.
func (v Vector[N, D, C]) Quo(k N) Vector[N, D, C] {
	kernel.Quo(&v.c, k)
	return v
}

// AddAssign sets v to v + w and returns v.
func (v *Vector[N, D, C]) AddAssign(w Vector[N, D, C]) *Vector[N, D, C] {
	kernel.Add[N](&v.c, &w.c)
	return v
}

// SubAssign sets v to v - w and returns v.
func (v *Vector[N, D, C]) SubAssign(w Vector[N, D, C]) *Vector[N, D, C] {
	kernel.Sub[N](&v.c, &w.c)
	return v
}

// ScaleAssign sets v to v * k and returns v.
func (v *Vector[N, D, C]) ScaleAssign(k N) *Vector[N, D, C] {
	kernel.Scale(&v.c, k)
	return v
}

// QuoAssign sets v to v / k and returns v.
func (v *Vector[N, D, C]) QuoAssign(k N) *Vector[N, D, C] {
	kernel.Quo(&v.c, k)
	return v
}

// MulVector multiplies every component of v by s. R must be A∘B.
//
//	velocity := dimgo.MulVector[dim.Speed](displacement, frequency)
func MulVector[R dim.Dimension, N constraints.Float, A, B dim.Dimension, C Coords[N]](v Vector[N, A, C], s Scalar[N, B]) Vector[N, R, C] {
	checkProduct[R, A, B]("multiply")
	kernel.Scale(&v.c, s.v)
	return Vector[N, R, C]{c: v.c}
}

// DivVector divides every component of v by s. R must be A∘B⁻¹.
func DivVector[R dim.Dimension, N constraints.Float, A, B dim.Dimension, C Coords[N]](v Vector[N, A, C], s Scalar[N, B]) Vector[N, R, C] {
	checkQuotient[R, A, B]("divide")
	kernel.Quo(&v.c, s.v)
	return Vector[N, R, C]{c: v.c}
}

// Dot returns the inner product of x and y. R must be A∘B.
func Dot[R dim.Dimension, N constraints.Float, A, B dim.Dimension, C Coords[N]](x Vector[N, A, C], y Vector[N, B, C]) Scalar[N, R] {
	checkProduct[R, A, B]("dot")
	return Scalar[N, R]{v: kernel.Dot[N](&x.c, &y.c)}
}

// SquaredNorm returns Dot(x, x). R must be D∘D.
func SquaredNorm[R dim.Dimension, N constraints.Float, D dim.Dimension, C Coords[N]](x Vector[N, D, C]) Scalar[N, R] {
	checkSquare[R, D]("square norm of")
	return Scalar[N, R]{v: kernel.Dot[N](&x.c, &x.c)}
}

// Norm returns the Euclidean length of x. The root of D∘D is always exact,
// so the result keeps the dimension of x.
func Norm[N constraints.Float, D dim.Dimension, C Coords[N]](x Vector[N, D, C]) Scalar[N, D] {
	return Scalar[N, D]{v: N(math.Sqrt(float64(kernel.Dot[N](&x.c, &x.c))))}
}

// Cross returns the cross product of two three-component vectors. R must be
// A∘B. Cross(x, x) is exactly zero.
func Cross[R dim.Dimension, N constraints.Float, A, B dim.Dimension](x Vector[N, A, [3]N], y Vector[N, B, [3]N]) Vector[N, R, [3]N] {
	checkProduct[R, A, B]("cross")
	return Vector[N, R, [3]N]{c: kernel.Cross3(x.c, y.c)}
}
