// Package dimcheck defines an analyzer that verifies dimension-changing
// dimgo calls before the program runs.
//
// Same-dimension operations (Add, Sub, comparisons, assignment) are checked
// by the Go compiler. Operations that produce a new dimension (Mul, Div,
// Reciprocal, MulVector, DivVector, Dot, SquaredNorm, Cross,
// SquaredDistance, Pow, Sqrt, Cbrt) take their result dimension as an
// explicit type argument. dimcheck derives the result from the operand
// dimensions and reports every call whose declared result disagrees, every
// root of a dimension that is not evenly divisible and every Pow with a
// non-constant exponent. Instantiations used as function values are checked
// where they are formed; a Pow function value is always reported since its
// exponent is only known at the call.
//
// # Usage
//
//	go install github.com/hupe1980/dimgo/cmd/dimcheck@latest
//	go vet -vettool=$(which dimcheck) ./...
//
// Calls inside generic code whose dimensions are type parameters cannot be
// resolved statically; dimgo's run-time guard covers them.
package dimcheck
