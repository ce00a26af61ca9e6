package dimgo

import (
	"fmt"

	"github.com/hupe1980/dimgo/dim"
)

// Guards run on every dimension-changing call. The comparison is between two
// small structs; the error is only built on the failure path.

func mustBinary(op string, declared, want, a, b dim.Exponents) {
	if declared != want {
		panic(&dim.ErrMismatch{Op: op, Operands: []dim.Exponents{a, b}, Declared: declared, Want: want})
	}
}

func mustUnary(op string, declared, want, a dim.Exponents) {
	if declared != want {
		panic(&dim.ErrMismatch{Op: op, Operands: []dim.Exponents{a}, Declared: declared, Want: want})
	}
}

func checkProduct[R, A, B dim.Dimension](op string) {
	a, b := dim.Of[A](), dim.Of[B]()
	mustBinary(op, dim.Of[R](), a.Combine(b), a, b)
}

func checkQuotient[R, A, B dim.Dimension](op string) {
	a, b := dim.Of[A](), dim.Of[B]()
	mustBinary(op, dim.Of[R](), a.Combine(b.Invert()), a, b)
}

func checkSquare[R, D dim.Dimension](op string) {
	d := dim.Of[D]()
	mustUnary(op, dim.Of[R](), d.Scale(2), d)
}

func checkPower[R, D dim.Dimension](p int) {
	d := dim.Of[D]()
	if r, want := dim.Of[R](), d.Scale(p); r != want {
		mustUnary(fmt.Sprintf("raise to power %d", p), r, want, d)
	}
}

func checkRoot[R, D dim.Dimension](op string, k int) {
	d := dim.Of[D]()
	want, err := d.DivideExact(k)
	if err != nil {
		panic(err)
	}
	mustUnary(op, dim.Of[R](), want, d)
}
