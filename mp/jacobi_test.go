package mp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJacobi(t *testing.T) {
	// Legendre values against closed forms
	{
		x := 0.3
		P := Jacobi(3, 0, 0, New(x))
		assert.Equal(t, 4, len(P))
		assert.True(t, near(Float64(P[0]), 1))
		assert.True(t, near(Float64(P[1]), x))
		assert.True(t, near(Float64(P[2]), 0.5*(3*x*x-1)))
		assert.True(t, near(Float64(P[3]), 0.5*(5*x*x*x-3*x)))
	}
	// degree 1 with general weights: P_1^(a,b) = (a-b+(a+b+2)x)/2
	{
		x, alpha, beta := -0.7, 3., 0.
		P := Jacobi(1, alpha, beta, New(x))
		assert.True(t, near(Float64(P[1]), 0.5*(alpha-beta+(alpha+beta+2)*x)))
	}
	// degenerate requests
	assert.Nil(t, Jacobi(-1, 0, 0, New(0)))
	assert.Equal(t, 1, len(Jacobi(0, 2, 0, New(0.5))))
}

func TestJacobiDiff(t *testing.T) {
	// dP2/dx = 3x, dP3/dx = (15x^2-3)/2 for Legendre
	x := -0.25
	dP := JacobiDiff(3, 0, 0, New(x))
	assert.True(t, near(Float64(dP[0]), 0))
	assert.True(t, near(Float64(dP[1]), 1))
	assert.True(t, near(Float64(dP[2]), 3*x))
	assert.True(t, near(Float64(dP[3]), 0.5*(15*x*x-3)))

	// finite difference cross-check with a nonzero alpha
	var (
		alpha, beta = 5., 0.
		h           = 1.e-6
		n           = 4
	)
	dP = JacobiDiff(n, alpha, beta, New(x))
	Pp := Jacobi(n, alpha, beta, New(x+h))
	Pm := Jacobi(n, alpha, beta, New(x-h))
	for k := 0; k <= n; k++ {
		fd := (Float64(Pp[k]) - Float64(Pm[k])) / (2 * h)
		assert.InDelta(t, fd, Float64(dP[k]), 1.e-5)
	}
}

func TestScalarHelpers(t *testing.T) {
	assert.True(t, near(Float64(Sqrt(Int(2))), math.Sqrt2))
	assert.True(t, near(Float64(PowInt(New(0.5), 3)), 0.125))
	assert.True(t, near(Float64(PowInt(New(2), -2)), 0.25))
	assert.True(t, near(Float64(PowInt(New(0), 0)), 1))
	assert.True(t, near(Float64(Quo(Int(1), Int(3))), 1./3))
	assert.True(t, near(Float64(Add(Int(1), Int(2), Int(3))), 6))
	assert.True(t, near(Float64(Neg(New(1.5))), -1.5))
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1.e-12*math.Max(1, math.Abs(b))
}
