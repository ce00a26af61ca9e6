package dimgo

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/hupe1980/dimgo/dim"
	"github.com/hupe1980/dimgo/internal/kernel"
)

// Abs returns |x|.
func Abs[N constraints.Float, D dim.Dimension](x Scalar[N, D]) Scalar[N, D] {
	return Scalar[N, D]{v: N(math.Abs(float64(x.v)))}
}

// Hypot returns sqrt(x*x + y*y) without undue overflow or underflow.
func Hypot[N constraints.Float, D dim.Dimension](x, y Scalar[N, D]) Scalar[N, D] {
	return Scalar[N, D]{v: N(math.Hypot(float64(x.v), float64(y.v)))}
}

// Pow returns x raised to the integer power p. R must be D scaled by p; p
// should be a constant so dimcheck can verify the call.
//
//	v := dimgo.Pow[dim.Volume](side, 3)
//	w := dimgo.Pow[dim.Dim[dim.Neg3, dim.Zero, dim.Zero]](side, -3)
func Pow[R dim.Dimension, N constraints.Float, D dim.Dimension](x Scalar[N, D], p int) Scalar[N, R] {
	checkPower[R, D](p)
	return Scalar[N, R]{v: ipow(x.v, p)}
}

// ipow uses exact repeated squaring; 4^-3 is exactly 1/64.
func ipow[N constraints.Float](x N, p int) N {
	n := uint(p)
	if p < 0 {
		n = -n
	}
	r := N(1)
	for n > 0 {
		if n&1 == 1 {
			r *= x
		}
		x *= x
		n >>= 1
	}
	if p < 0 {
		return 1 / r
	}
	return r
}

// Sqrt returns the square root of x. Every exponent of D must be even and R
// must be D/2. Negative values yield NaN.
func Sqrt[R dim.Dimension, N constraints.Float, D dim.Dimension](x Scalar[N, D]) Scalar[N, R] {
	checkRoot[R, D]("sqrt", 2)
	return Scalar[N, R]{v: N(math.Sqrt(float64(x.v)))}
}

// Cbrt returns the real cube root of x. Every exponent of D must be a
// multiple of three and R must be D/3.
func Cbrt[R dim.Dimension, N constraints.Float, D dim.Dimension](x Scalar[N, D]) Scalar[N, R] {
	checkRoot[R, D]("cbrt", 3)
	return Scalar[N, R]{v: N(math.Cbrt(float64(x.v)))}
}

// Kernel names the reduction kernel selected for this CPU ("generic" or
// "fma"). See DIMGO_KERNEL.
func Kernel() string {
	return kernel.Active().String()
}
