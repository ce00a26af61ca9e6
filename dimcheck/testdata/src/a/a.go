package a

import (
	"github.com/hupe1980/dimgo"
	"github.com/hupe1980/dimgo/dim"
)

var (
	x = dimgo.New[dim.Length](2.0)
	t = dimgo.New[dim.Time](4.0)
	m = dimgo.New[dim.Mass](1.0)
	a = dimgo.New[dim.Area](9.0)

	v = dimgo.NewVector[dim.Speed, float64]([3]float64{1, 2, 3})
	r = dimgo.NewVector[dim.Length, float64]([3]float64{1, 0, 0})
	p = dimgo.NewPoint[dim.Length, float64]([2]float64{0, 0})
	q = dimgo.NewPoint[dim.Length, float64]([2]float64{3, 4})
)

func valid(n int) {
	_ = dimgo.Div[dim.Speed](x, t)
	_ = dimgo.Mul[dim.Area](x, x)
	_ = dimgo.Reciprocal[dim.Frequency](1.0, t)
	_ = dimgo.MulVector[dim.Momentum](v, m)
	_ = dimgo.DivVector[dim.Speed](r, t)
	_ = dimgo.Dot[dim.Area](r, r)
	_ = dimgo.SquaredNorm[dim.Area](r)
	_ = dimgo.Cross[dim.Dim[dim.Pos2, dim.Zero, dim.Neg1]](r, v)
	_ = dimgo.SquaredDistance[dim.Area](p, q)
	_ = dimgo.Pow[dim.Volume](x, 3)
	_ = dimgo.Pow[dim.Dimensionless](x, 0)
	_ = dimgo.Sqrt[dim.Length](a)
}

func invalid(n int) {
	_ = dimgo.Mul[dim.Length](x, t)                    // want `dim: multiply length \(1,0,0\), time \(0,0,1\): result declared as length \(1,0,0\), want \(1,0,1\)`
	_ = dimgo.Div[dim.Speed](t, x)                     // want `dim: divide time \(0,0,1\), length \(1,0,0\): result declared as speed \(1,0,-1\), want \(-1,0,1\)`
	_ = dimgo.Reciprocal[dim.Time](1.0, t)             // want `dim: invert time \(0,0,1\): result declared as time \(0,0,1\), want frequency \(0,0,-1\)`
	_ = dimgo.MulVector[dim.Speed](v, m)               // want `result declared as speed \(1,0,-1\), want momentum \(1,1,-1\)`
	_ = dimgo.DivVector[dim.Length](r, t)              // want `dim: divide length`
	_ = dimgo.Dot[dim.Length](r, r)                    // want `dim: dot length \(1,0,0\), length \(1,0,0\)`
	_ = dimgo.SquaredNorm[dim.Length](r)               // want `dim: square norm of length \(1,0,0\)`
	_ = dimgo.Cross[dim.Area](r, v)                    // want `dim: cross length`
	_ = dimgo.SquaredDistance[dim.Length](p, q)        // want `dim: square distance in length`
	_ = dimgo.Pow[dim.Area](x, 3)                      // want `dim: raise to power 3 length \(1,0,0\): result declared as area \(2,0,0\), want volume \(3,0,0\)`
	_ = dimgo.Pow[dim.Area](x, n)                      // want `dimgo.Pow: exponent must be a constant`
	_ = dimgo.Sqrt[dim.Length](x)                      // want `dim: length \(1,0,0\) is not evenly divisible by 2`
	_ = dimgo.Cbrt[dim.Length](a)                      // want `dim: area \(2,0,0\) is not evenly divisible by 3`
	_ = dimgo.Sqrt[dim.Area](dimgo.New[dim.Area](4.0)) // want `dim: sqrt area \(2,0,0\): result declared as area \(2,0,0\), want length \(1,0,0\)`
}

func generic[D dim.Dimension](s dimgo.Scalar[float64, D]) {
	_ = dimgo.Mul[dim.Length](s, s)
}

func apply(f func(dimgo.Scalar[float64, dim.Length], dimgo.Scalar[float64, dim.Length]) dimgo.Scalar[float64, dim.Area]) {
	_ = f(x, x)
}

func funcValues() {
	div := dimgo.Div[dim.Speed, float64, dim.Length, dim.Time]
	_ = div(x, t)
	apply(dimgo.Mul[dim.Area, float64, dim.Length, dim.Length])

	mul := dimgo.Mul[dim.Length, float64, dim.Length, dim.Time] // want `dim: multiply length \(1,0,0\), time \(0,0,1\): result declared as length \(1,0,0\), want \(1,0,1\)`
	_ = mul(x, t)
	sqrt := dimgo.Sqrt[dim.Length, float64, dim.Length] // want `dim: length \(1,0,0\) is not evenly divisible by 2`
	_ = sqrt(x)
	pow := dimgo.Pow[dim.Volume, float64, dim.Length] // want `dimgo.Pow: exponent must be a constant`
	_ = pow(x, 3)
}
