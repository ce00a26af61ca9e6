// Package dimgo provides dimensioned physical quantities whose units are
// checked by the Go type system.
//
// A quantity carries a dimension: an exponent triple over length (L), mass
// (M) and time (T). The dimension is a type argument, so a length and a time
// are distinct types and adding them does not compile. Quantities are plain
// values with the same size as their raw numbers and no run-time tag.
//
// # Quick Start
//
//	x := dimgo.New[dim.Length](30.0)
//	t := dimgo.New[dim.Time](5.0)
//
//	v := dimgo.Div[dim.Speed](x, t)   // 6 m/s
//	x = x.Add(dimgo.New[dim.Length](1.0))
//	// x.Add(t)                       // does not compile
//
//	r := dimgo.NewVector[dim.Length, float64]([3]float64{3, 4, 0})
//	n := dimgo.Norm(r)                // 5, a length
//
// # Quantities
//
//	Scalar[N, D]     a single number of dimension D
//	Vector[N, D, C]  K components of dimension D, stored in C = [K]N
//	Point[N, D, C]   a position in a K-dimensional space of dimension D
//
// N is float32 or float64. K ranges from 1 to 16. Points and vectors differ:
// a point plus a vector is a point, the difference of two points is a
// vector, and two points cannot be added.
//
// # Dimensions
//
// Package dim defines the dimension types. Each exponent is a marker type
// (Neg12 … Zero … Pos12) and a dimension is dim.Dim[L, M, T]. Two dimensions
// with equal exponents are the same type; the catalog names (dim.Speed,
// dim.Force, ...) are aliases.
//
// # Dimension-changing operations
//
// Go generics cannot add type-level integers, so operations that produce a
// new dimension (Mul, Div, Reciprocal, MulVector, DivVector, Dot,
// SquaredNorm, Cross, SquaredDistance, Pow, Sqrt, Cbrt) take the result
// dimension as their first type argument:
//
//	p := dimgo.Mul[dim.Momentum](m, v)
//
// The declared result is verified twice. The dimcheck analyzer
// (cmd/dimcheck) reports a wrong declaration before the program runs:
//
//	go vet -vettool=$(which dimcheck) ./...
//
// At run time every such call also compares the exponents and panics with a
// *dim.ErrMismatch or *dim.ErrNotDivisible on disagreement. The check
// compares two small structs and does not allocate on success.
//
// # Numerics
//
// Dot products and squared norms accumulate in float64. On CPUs with fused
// multiply-add the accumulation uses math.FMA. Set DIMGO_KERNEL=generic to
// force the portable kernel. Kernel reports the active one.
package dimgo
