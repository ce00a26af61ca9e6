package dim

import "fmt"

// Exponents is a dimension descriptor: the powers of length (L), mass (M)
// and time (T). Two descriptors are equal iff all three exponents match.
type Exponents struct {
	L int
	M int
	T int
}

// Combine returns the dimension of a product of quantities with
// dimensions e and o.
func (e Exponents) Combine(o Exponents) Exponents {
	return Exponents{L: e.L + o.L, M: e.M + o.M, T: e.T + o.T}
}

// Invert returns the dimension of the reciprocal of a quantity with dimension e.
func (e Exponents) Invert() Exponents {
	return Exponents{L: -e.L, M: -e.M, T: -e.T}
}

// Scale returns the dimension of a quantity with dimension e raised to the
// integer power k.
func (e Exponents) Scale(k int) Exponents {
	return Exponents{L: e.L * k, M: e.M * k, T: e.T * k}
}

// DivideExact returns the dimension of the k-th root of a quantity with
// dimension e. It fails when any exponent is not a multiple of k; the
// result is never truncated.
func (e Exponents) DivideExact(k int) (Exponents, error) {
	if k == 0 {
		return Exponents{}, ErrZeroDivisor
	}
	if e.L%k != 0 || e.M%k != 0 || e.T%k != 0 {
		return Exponents{}, &ErrNotDivisible{Exponents: e, Divisor: k}
	}
	return Exponents{L: e.L / k, M: e.M / k, T: e.T / k}, nil
}

// IsDimensionless reports whether e is (0,0,0).
func (e Exponents) IsDimensionless() bool {
	return e == Exponents{}
}

// InRange reports whether every exponent of e has a marker type.
func (e Exponents) InRange() bool {
	return inRange(e.L) && inRange(e.M) && inRange(e.T)
}

func (e Exponents) String() string {
	return fmt.Sprintf("(%d,%d,%d)", e.L, e.M, e.T)
}

func inRange(v int) bool {
	return v >= -MaxExponent && v <= MaxExponent
}

// Exponent is implemented by the generated marker types Neg12 … Pos12.
type Exponent interface {
	Value() int
	exponent()
}

// Dimension is implemented only by Dim. It is the constraint of every
// dimension type parameter.
type Dimension interface {
	Exponents() Exponents
	dimension()
}

// Dim is the phantom type of the dimension (L, M, T). It has no fields and
// is never stored: quantities embed it as a zero-length array.
type Dim[L, M, T Exponent] struct{}

// Exponents returns the descriptor encoded by the type parameters.
func (Dim[L, M, T]) Exponents() Exponents {
	var (
		l L
		m M
		t T
	)
	return Exponents{L: l.Value(), M: m.Value(), T: t.Value()}
}

func (Dim[L, M, T]) dimension() {}

// Of returns the descriptor of the dimension type D.
func Of[D Dimension]() Exponents {
	var d D
	return d.Exponents()
}

// ExponentName returns the marker type name for exponent v.
func ExponentName(v int) (string, bool) {
	if !inRange(v) {
		return "", false
	}
	return exponentNames[v+MaxExponent], true
}

// ParseExponentName returns the exponent denoted by a marker type name.
func ParseExponentName(name string) (int, bool) {
	for i, n := range exponentNames {
		if n == name {
			return i - MaxExponent, true
		}
	}
	return 0, false
}

// TypeName returns the Go spelling of the Dim type for e, e.g.
// "Dim[Pos1, Zero, Neg1]". It fails with ErrOutOfRange when an exponent has
// no marker type.
func TypeName(e Exponents) (string, error) {
	if !e.InRange() {
		return "", fmt.Errorf("%w: %s", ErrOutOfRange, e)
	}
	l, _ := ExponentName(e.L)
	m, _ := ExponentName(e.M)
	t, _ := ExponentName(e.T)
	return fmt.Sprintf("Dim[%s, %s, %s]", l, m, t), nil
}
