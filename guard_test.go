package dimgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dimgo/dim"
)

func TestGuardRejectsWrongResult(t *testing.T) {
	f := New[dim.Frequency](1.0)

	tests := []struct {
		name string
		fn   func()
		msg  string
	}{
		{
			"Mul",
			func() { Mul[dim.Length](meters(1), f) },
			"dim: multiply length (1,0,0), frequency (0,0,-1): result declared as length (1,0,0), want speed (1,0,-1)",
		},
		{
			"Div",
			func() { Div[dim.Speed](f, meters(1)) },
			"dim: divide frequency (0,0,-1), length (1,0,0): result declared as speed (1,0,-1), want (-1,0,-1)",
		},
		{
			"Reciprocal",
			func() { Reciprocal[dim.Length](1, meters(2)) },
			"dim: invert length (1,0,0): result declared as length (1,0,0), want wavenumber (-1,0,0)",
		},
		{
			"Pow",
			func() { Pow[dim.Area](meters(2), 3) },
			"dim: raise to power 3 length (1,0,0): result declared as area (2,0,0), want volume (3,0,0)",
		},
		{
			"Sqrt",
			func() { Sqrt[dim.Area](New[dim.Area](4.0)) },
			"dim: sqrt area (2,0,0): result declared as area (2,0,0), want length (1,0,0)",
		},
		{
			"SquaredNorm",
			func() { SquaredNorm[dim.Length](NewVector[dim.Length, float64]([2]float64{3, 4})) },
			"dim: square norm of length (1,0,0): result declared as length (1,0,0), want area (2,0,0)",
		},
		{
			"Dot",
			func() {
				Dot[dim.Force](NewVector[dim.Force, float64]([2]float64{1, 2}), NewVector[dim.Length, float64]([2]float64{3, 4}))
			},
			"dim: dot force (1,1,-2), length (1,0,0): result declared as force (1,1,-2), want energy (2,1,-2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithError(t, tt.msg, tt.fn)
		})
	}
}

func TestGuardRejectsInexactRoot(t *testing.T) {
	err := recoverError(func() { Sqrt[dim.Length](meters(4)) })
	var nd *dim.ErrNotDivisible
	require.ErrorAs(t, err, &nd)
	assert.Equal(t, 2, nd.Divisor)

	err = recoverError(func() { Cbrt[dim.Length](New[dim.Area](8.0)) })
	require.ErrorAs(t, err, &nd)
	assert.Equal(t, 3, nd.Divisor)
	assert.Equal(t, dim.AreaExponents, nd.Exponents)
}

func TestGuardErrorIsTyped(t *testing.T) {
	err := recoverError(func() { Mul[dim.Energy](meters(1), meters(1)) })
	var mm *dim.ErrMismatch
	require.ErrorAs(t, err, &mm)
	assert.Equal(t, "multiply", mm.Op)
	assert.Equal(t, dim.EnergyExponents, mm.Declared)
	assert.Equal(t, dim.AreaExponents, mm.Want)
	assert.Equal(t, []dim.Exponents{dim.LengthExponents, dim.LengthExponents}, mm.Operands)
}

func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}
