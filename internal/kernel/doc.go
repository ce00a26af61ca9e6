// Package kernel provides the component loops behind dimgo vectors and points.
//
// Vectors are fixed-size arrays selected through the Coords constraint, so
// every loop here is written against a pointer to a generic array.
//
// Reductions (Dot, SquaredL2) accumulate in float64. On CPUs with hardware
// fused multiply-add they use math.FMA; elsewhere a plain loop.
//
// The selection can be overridden with the DIMGO_KERNEL environment variable
// ("generic" or "fma"). An override naming an unavailable kind is ignored.
package kernel
