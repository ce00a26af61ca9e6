package kernel

import (
	"math"
	"os"
	"strings"

	"golang.org/x/exp/constraints"
)

// Coords is the set of coordinate arrays a vector or point may use.
type Coords[N constraints.Float] interface {
	~[1]N | ~[2]N | ~[3]N | ~[4]N | ~[5]N | ~[6]N | ~[7]N | ~[8]N |
		~[9]N | ~[10]N | ~[11]N | ~[12]N | ~[13]N | ~[14]N | ~[15]N | ~[16]N
}

// Kind identifies a reduction implementation.
type Kind uint8

const (
	// Generic is a plain multiply-add loop.
	Generic Kind = iota
	// FMA uses hardware fused multiply-add.
	FMA
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case Generic:
		return "generic"
	case FMA:
		return "fma"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "fma":
		return FMA, true
	default:
		return Generic, false
	}
}

// EnvOverride names the environment variable consulted at init.
const EnvOverride = "DIMGO_KERNEL"

var (
	active Kind

	// set by platform-specific init
	hasFMA bool
)

// initKind is called from platform-specific init functions after CPU
// features are detected.
func initKind() {
	active = selectKind(os.Getenv(EnvOverride))
}

func selectKind(override string) Kind {
	if override != "" {
		if k, ok := ParseKind(override); ok && Available(k) {
			return k
		}
	}
	if hasFMA {
		return FMA
	}
	return Generic
}

// Available reports whether k can run on this CPU.
func Available(k Kind) bool {
	switch k {
	case Generic:
		return true
	case FMA:
		return hasFMA
	default:
		return false
	}
}

// Active returns the kind selected at init.
func Active() Kind {
	return active
}

// Dot returns the sum of a[i]*b[i].
func Dot[N constraints.Float, C Coords[N]](a, b *C) N {
	if active == FMA {
		return dotFMA[N](a, b)
	}
	return dotGeneric[N](a, b)
}

func dotGeneric[N constraints.Float, C Coords[N]](a, b *C) N {
	var acc float64
	for i := 0; i < len(*a); i++ {
		acc += float64((*a)[i]) * float64((*b)[i])
	}
	return N(acc)
}

func dotFMA[N constraints.Float, C Coords[N]](a, b *C) N {
	var acc float64
	for i := 0; i < len(*a); i++ {
		acc = math.FMA(float64((*a)[i]), float64((*b)[i]), acc)
	}
	return N(acc)
}

// SquaredL2 returns the sum of (a[i]-b[i])^2. The differences are rounded
// to N first, so the result equals Dot(d, d) for the N-typed difference d.
func SquaredL2[N constraints.Float, C Coords[N]](a, b *C) N {
	if active == FMA {
		return squaredL2FMA[N](a, b)
	}
	return squaredL2Generic[N](a, b)
}

func squaredL2Generic[N constraints.Float, C Coords[N]](a, b *C) N {
	var acc float64
	for i := 0; i < len(*a); i++ {
		d := float64((*a)[i] - (*b)[i])
		acc += d * d
	}
	return N(acc)
}

func squaredL2FMA[N constraints.Float, C Coords[N]](a, b *C) N {
	var acc float64
	for i := 0; i < len(*a); i++ {
		d := float64((*a)[i] - (*b)[i])
		acc = math.FMA(d, d, acc)
	}
	return N(acc)
}

// Add sets dst[i] += src[i].
func Add[N constraints.Float, C Coords[N]](dst, src *C) {
	for i := 0; i < len(*dst); i++ {
		(*dst)[i] += (*src)[i]
	}
}

// Sub sets dst[i] -= src[i].
func Sub[N constraints.Float, C Coords[N]](dst, src *C) {
	for i := 0; i < len(*dst); i++ {
		(*dst)[i] -= (*src)[i]
	}
}

// Scale sets dst[i] *= k.
func Scale[N constraints.Float, C Coords[N]](dst *C, k N) {
	for i := 0; i < len(*dst); i++ {
		(*dst)[i] *= k
	}
}

// Quo sets dst[i] /= k.
func Quo[N constraints.Float, C Coords[N]](dst *C, k N) {
	for i := 0; i < len(*dst); i++ {
		(*dst)[i] /= k
	}
}

// Neg sets dst[i] = -dst[i].
func Neg[N constraints.Float, C Coords[N]](dst *C) {
	for i := 0; i < len(*dst); i++ {
		(*dst)[i] = -(*dst)[i]
	}
}

// Cross3 returns the cross product a × b.
//
// Each product is rounded before the subtraction (the conversions forbid
// fusing), so Cross3(a, a) is exactly zero.
func Cross3[N constraints.Float](a, b [3]N) [3]N {
	return [3]N{
		N(a[1]*b[2]) - N(a[2]*b[1]),
		N(a[2]*b[0]) - N(a[0]*b[2]),
		N(a[0]*b[1]) - N(a[1]*b[0]),
	}
}
