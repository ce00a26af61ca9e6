package dimgo

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/dimgo/dim"
	"github.com/hupe1980/dimgo/internal/kernel"
)

// Point is an affine position with K coordinates (C = [K]N) of dimension D.
// The zero value is the origin.
//
// A point is not a vector: it is only translated by a Vector of the same
// N, D and C, and two points only yield their displacement (Diff) or
// distance. Points never convert to vectors.
type Point[N constraints.Float, D dim.Dimension, C Coords[N]] struct {
	_ [0]D
	p C
}

// NewPoint returns the point with coordinates c.
func NewPoint[D dim.Dimension, N constraints.Float, C Coords[N]](c C) Point[N, D, C] {
	return Point[N, D, C]{p: c}
}

// At returns coordinate i. It panics if i is out of range.
func (p Point[N, D, C]) At(i int) Scalar[N, D] {
	return Scalar[N, D]{v: p.p[i]}
}

// Set sets coordinate i. It panics if i is out of range.
func (p *Point[N, D, C]) Set(i int, s Scalar[N, D]) {
	p.p[i] = s.v
}

// Len returns the spatial size K.
func (p Point[N, D, C]) Len() int {
	return len(p.p)
}

// Raw returns the raw coordinates.
func (p Point[N, D, C]) Raw() C {
	return p.p
}

// Dimension returns the descriptor of D.
func (p Point[N, D, C]) Dimension() dim.Exponents {
	return dim.Of[D]()
}

// Equal reports whether all coordinates are equal.
func (p Point[N, D, C]) Equal(q Point[N, D, C]) bool {
	for i := 0; i < len(p.p); i++ {
		if p.p[i] != q.p[i] {
			return false
		}
	}
	return true
}

// Add returns p translated by v.
func (p Point[N, D, C]) Add(v Vector[N, D, C]) Point[N, D, C] {
	kernel.Add[N](&p.p, &v.c)
	return p
}

// Sub returns p translated by -v.
func (p Point[N, D, C]) Sub(v Vector[N, D, C]) Point[N, D, C] {
	kernel.Sub[N](&p.p, &v.c)
	return p
}

// AddAssign translates p by v and returns p.
func (p *Point[N, D, C]) AddAssign(v Vector[N, D, C]) *Point[N, D, C] {
	kernel.Add[N](&p.p, &v.c)
	return p
}

// SubAssign translates p by -v and returns p.
func (p *Point[N, D, C]) SubAssign(v Vector[N, D, C]) *Point[N, D, C] {
	kernel.Sub[N](&p.p, &v.c)
	return p
}

// Diff returns the displacement p - q.
func (p Point[N, D, C]) Diff(q Point[N, D, C]) Vector[N, D, C] {
	kernel.Sub[N](&p.p, &q.p)
	return Vector[N, D, C]{c: p.p}
}

// SquaredDistance returns SquaredNorm(p.Diff(q)). R must be D∘D.
func SquaredDistance[R dim.Dimension, N constraints.Float, D dim.Dimension, C Coords[N]](p, q Point[N, D, C]) Scalar[N, R] {
	checkSquare[R, D]("square distance in")
	return Scalar[N, R]{v: kernel.SquaredL2[N](&p.p, &q.p)}
}

// Distance returns Norm(p.Diff(q)); it has the dimension of the points.
func Distance[N constraints.Float, D dim.Dimension, C Coords[N]](p, q Point[N, D, C]) Scalar[N, D] {
	return Scalar[N, D]{v: N(math.Sqrt(float64(kernel.SquaredL2[N](&p.p, &q.p))))}
}
