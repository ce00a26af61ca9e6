package dim

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrZeroDivisor is returned by DivideExact for k == 0.
	ErrZeroDivisor = errors.New("dim: zero root index")

	// ErrOutOfRange indicates an exponent without a marker type.
	ErrOutOfRange = errors.New("dim: exponent out of range")
)

// ErrNotDivisible indicates a root of a dimension whose exponents are not
// all multiples of the root index.
type ErrNotDivisible struct {
	Exponents Exponents
	Divisor   int
}

func (e *ErrNotDivisible) Error() string {
	return fmt.Sprintf("dim: %s is not evenly divisible by %d", Describe(e.Exponents), e.Divisor)
}

// ErrMismatch indicates a dimension-changing operation whose declared result
// dimension differs from the one derived from its operands.
type ErrMismatch struct {
	Op       string
	Operands []Exponents
	Declared Exponents
	Want     Exponents
}

func (e *ErrMismatch) Error() string {
	ops := make([]string, len(e.Operands))
	for i, o := range e.Operands {
		ops[i] = Describe(o)
	}
	return fmt.Sprintf("dim: %s %s: result declared as %s, want %s",
		e.Op, strings.Join(ops, ", "), Describe(e.Declared), Describe(e.Want))
}

// Check returns an *ErrMismatch when declared differs from want.
func Check(op string, declared, want Exponents, operands ...Exponents) error {
	if declared == want {
		return nil
	}
	return &ErrMismatch{Op: op, Operands: operands, Declared: declared, Want: want}
}
