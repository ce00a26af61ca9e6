// Package dimgo is a minimal copy of the dimgo API for analyzer tests.
package dimgo

import "github.com/hupe1980/dimgo/dim"

type Float interface{ ~float32 | ~float64 }

type Coords[N Float] interface{ ~[2]N | ~[3]N }

type Scalar[N Float, D dim.Dimension] struct{ v N }

type Vector[N Float, D dim.Dimension, C Coords[N]] struct{ c C }

type Point[N Float, D dim.Dimension, C Coords[N]] struct{ p C }

func New[D dim.Dimension, N Float](v N) Scalar[N, D] { return Scalar[N, D]{v: v} }

func NewVector[D dim.Dimension, N Float, C Coords[N]](c C) Vector[N, D, C] {
	return Vector[N, D, C]{c: c}
}

func NewPoint[D dim.Dimension, N Float, C Coords[N]](c C) Point[N, D, C] {
	return Point[N, D, C]{p: c}
}

func Mul[R dim.Dimension, N Float, A, B dim.Dimension](x Scalar[N, A], y Scalar[N, B]) Scalar[N, R] {
	return Scalar[N, R]{}
}

func Div[R dim.Dimension, N Float, A, B dim.Dimension](x Scalar[N, A], y Scalar[N, B]) Scalar[N, R] {
	return Scalar[N, R]{}
}

func Reciprocal[R dim.Dimension, N Float, D dim.Dimension](k N, x Scalar[N, D]) Scalar[N, R] {
	return Scalar[N, R]{}
}

func MulVector[R dim.Dimension, N Float, A, B dim.Dimension, C Coords[N]](v Vector[N, A, C], s Scalar[N, B]) Vector[N, R, C] {
	return Vector[N, R, C]{}
}

func DivVector[R dim.Dimension, N Float, A, B dim.Dimension, C Coords[N]](v Vector[N, A, C], s Scalar[N, B]) Vector[N, R, C] {
	return Vector[N, R, C]{}
}

func Dot[R dim.Dimension, N Float, A, B dim.Dimension, C Coords[N]](x Vector[N, A, C], y Vector[N, B, C]) Scalar[N, R] {
	return Scalar[N, R]{}
}

func SquaredNorm[R dim.Dimension, N Float, D dim.Dimension, C Coords[N]](x Vector[N, D, C]) Scalar[N, R] {
	return Scalar[N, R]{}
}

func Cross[R dim.Dimension, N Float, A, B dim.Dimension](x Vector[N, A, [3]N], y Vector[N, B, [3]N]) Vector[N, R, [3]N] {
	return Vector[N, R, [3]N]{}
}

func SquaredDistance[R dim.Dimension, N Float, D dim.Dimension, C Coords[N]](p Point[N, D, C], q Point[N, D, C]) Scalar[N, R] {
	return Scalar[N, R]{}
}

func Pow[R dim.Dimension, N Float, D dim.Dimension](x Scalar[N, D], p int) Scalar[N, R] {
	return Scalar[N, R]{}
}

func Sqrt[R dim.Dimension, N Float, D dim.Dimension](x Scalar[N, D]) Scalar[N, R] {
	return Scalar[N, R]{}
}

func Cbrt[R dim.Dimension, N Float, D dim.Dimension](x Scalar[N, D]) Scalar[N, R] {
	return Scalar[N, R]{}
}
