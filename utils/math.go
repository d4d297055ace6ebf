package utils

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		return math.Pow(x, float64(pp))
	}
	if p < 0 {
		p = -pp
		flipped = true
	}
	y = 1
	for i := 0; i < p; i++ {
		y *= x
	}
	if flipped {
		y = 1. / y
	}
	return
}

// NewSymTriDiagonal builds the symmetric tridiagonal matrix with main
// diagonal d0 and super/sub diagonal d1, used for Golub-Welsch quadrature.
func NewSymTriDiagonal(d0, d1 []float64) (J *mat.SymDense) {
	var (
		n = len(d0)
	)
	J = mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		J.SetSym(i, i, d0[i])
	}
	for i := 0; i < n-1; i++ {
		J.SetSym(i, i+1, d1[i])
	}
	return
}
