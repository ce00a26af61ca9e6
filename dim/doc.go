// Package dim provides mechanical dimension descriptors.
//
// A dimension is the triple of exponents of length, mass and time. It exists in
// two forms:
//
//   - Exponents, a plain value used for composition and diagnostics.
//   - Dim[L, M, T], a zero-size phantom type used to tag quantities. Each
//     integer exponent has exactly one marker type (Neg12 … Zero … Pos12), so
//     two Dim types are identical iff their exponents match.
//
// # Composition
//
//	speed := dim.LengthExponents.Combine(dim.TimeExponents.Invert()) // (1,0,-1)
//	area := dim.LengthExponents.Scale(2)                            // (2,0,0)
//	side, err := area.DivideExact(2)                                 // (1,0,0), nil
//
// # Catalog
//
// Common mechanical dimensions are type aliases:
//
//	var _ dim.Speed = dim.Dim[dim.Pos1, dim.Zero, dim.Neg1]{}
//
// Dimensions outside the catalog are spelled out directly, e.g. the
// gravitational constant is dim.Dim[dim.Pos3, dim.Neg1, dim.Neg2].
package dim

//go:generate go run ./cmd/generator -max 12 -o exponents_gen.go -pkg dim
