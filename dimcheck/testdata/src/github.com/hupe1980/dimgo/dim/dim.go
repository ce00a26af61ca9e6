// Package dim is a minimal copy of the dimgo dimension types for analyzer tests.
package dim

type Exponent interface{ Value() int }

type Neg2 struct{}
type Neg1 struct{}
type Zero struct{}
type Pos1 struct{}
type Pos2 struct{}
type Pos3 struct{}

func (Neg2) Value() int { return -2 }
func (Neg1) Value() int { return -1 }
func (Zero) Value() int { return 0 }
func (Pos1) Value() int { return 1 }
func (Pos2) Value() int { return 2 }
func (Pos3) Value() int { return 3 }

type Dimension interface{ dimension() }

type Dim[L, M, T Exponent] struct{}

func (Dim[L, M, T]) dimension() {}

type (
	Dimensionless = Dim[Zero, Zero, Zero]
	Length        = Dim[Pos1, Zero, Zero]
	Mass          = Dim[Zero, Pos1, Zero]
	Time          = Dim[Zero, Zero, Pos1]
	Speed         = Dim[Pos1, Zero, Neg1]
	Momentum      = Dim[Pos1, Pos1, Neg1]
	Energy        = Dim[Pos2, Pos1, Neg2]
	Frequency     = Dim[Zero, Zero, Neg1]
	Area          = Dim[Pos2, Zero, Zero]
	Volume        = Dim[Pos3, Zero, Zero]
)
