package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Transpose and Mul
	{
		A := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		AT := A.Transpose()
		nr, nc := AT.Dims()
		assert.Equal(t, 3, nr)
		assert.Equal(t, 2, nc)
		assert.Equal(t, 4., AT.At(0, 1))

		B := A.Mul(AT)
		assert.True(t, near(B.At(0, 0), 14))
		assert.True(t, near(B.At(0, 1), 32))
		assert.True(t, near(B.At(1, 1), 77))
	}
	// Col / Row extraction
	{
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		assert.Equal(t, []float64{2, 4}, A.Col(1).Data())
		assert.Equal(t, []float64{3, 4}, A.Row(1).Data())
	}
}

func TestChop(t *testing.T) {
	A := NewMatrix(1, 4, []float64{1.e-11, -1.e-11, 1.e-9, -0.5})
	A.Chop(1.e-10)
	assert.Equal(t, 0., A.At(0, 0))
	assert.Equal(t, 0., A.At(0, 1))
	assert.Equal(t, 1.e-9, A.At(0, 2))
	assert.Equal(t, -0.5, A.At(0, 3))
}

func TestLUSolve(t *testing.T) {
	// known 2x2 system
	{
		A := NewMatrix(2, 2, []float64{2, 1, 1, 3})
		B := NewMatrix(2, 1, []float64{5, 10})
		X, err := A.LUSolve(B)
		assert.NoError(t, err)
		assert.True(t, near(X.At(0, 0), 1))
		assert.True(t, near(X.At(1, 0), 3))
	}
	// non-square systems are rejected before the solver sees them
	{
		A := NewMatrix(3, 2)
		_, err := A.LUSolve(NewMatrix(3, 1))
		assert.Error(t, err)
	}
	// singular systems surface the solver failure
	{
		A := NewMatrix(2, 2, []float64{1, 2, 2, 4})
		_, err := A.LUSolve(NewMatrix(2, 1, []float64{1, 1}))
		assert.Error(t, err)
	}
}

func TestVector(t *testing.T) {
	v := NewVector(3, []float64{1, -2, 3})
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, -2., v.AtVec(1))
	w := v.Copy().POW(2).Scale(2)
	assert.Equal(t, []float64{2, 8, 18}, w.Data())
	assert.Equal(t, -2., v.AtVec(1)) // original untouched
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1.e-12*math.Max(1, math.Abs(b))
}
