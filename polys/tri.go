package polys

import "math/big"

// TriBasis is the Dubiner-style orthonormal basis on the reference
// triangle {(p,q) : p,q >= -1, p+q <= 0}, built from Jacobi polynomials on
// the collapsed coordinates
//
//	a = 2(1+p)/(1-q) - 1, b = q
//
// The collapse is singular along q = 1 (the top vertex); that input maps to
// the limiting value a = -1.
type TriBasis struct {
	Order int
}

func (tb *TriBasis) Name() string { return "tri" }
func (tb *TriBasis) Dims() int    { return 2 }

func (tb *TriBasis) NumModes() int { return tb.Order * (tb.Order + 1) / 2 }

func (tb *TriBasis) forEachMode(f func(i, j int)) {
	for i := 0; i < tb.Order; i++ {
		for j := 0; j < tb.Order-i; j++ {
			f(i, j)
		}
	}
}

func (tb *TriBasis) Degrees() (degs []int) {
	tb.forEachMode(func(i, j int) {
		degs = append(degs, i+j)
	})
	return
}

func triCollapse(p, q *big.Float) (a, b *big.Float) {
	one := mpi(1)
	if q.Cmp(one) != 0 {
		// a = 2(1+p)/(1-q) - 1
		a = sub(quo(mul(mpi(2), add(one, p)), sub(one, q)), one)
	} else {
		a = mpi(-1)
	}
	b = q
	return
}

// triNorm is sqrt((2i+1)(2i+2j+2)) / 2^(i+1), the orthonormalization
// constant shared by the triangle and prism bases.
func triNorm(i, j int) *big.Float {
	return quo(sqrt(mpi((2*i+1)*(2*i+2*j+2))), powi(mpi(2), i+1))
}

func (tb *TriBasis) OrthoAtPoint(c []*big.Float) (ob []*big.Float) {
	var (
		a, b = triCollapse(c[0], c[1])
		N    = tb.Order
		f    = jacobiSeq(N-1, 0, 0, a)
		g    = make([][]*big.Float, len(f))
		omb  = sub(mpi(1), b)
	)
	for i := range f {
		g[i] = jacobiSeq(N-1-i, float64(2*i+1), 0, b)
	}
	ob = make([]*big.Float, 0, tb.NumModes())
	tb.forEachMode(func(i, j int) {
		pa := mul(f[i], powi(omb, i))
		ob = append(ob, mul(triNorm(i, j), pa, g[i][j]))
	})
	return
}

func (tb *TriBasis) JacOrthoAtPoint(c []*big.Float) (ob [][]*big.Float) {
	var (
		a, b = triCollapse(c[0], c[1])
		N    = tb.Order
		f    = jacobiSeq(N-1, 0, 0, a)
		df   = jacobiDiffSeq(N-1, 0, 0, a)
		g    = make([][]*big.Float, len(f))
		dg   = make([][]*big.Float, len(f))
		one  = mpi(1)
		omb  = sub(one, b)
		opa  = add(one, a)
	)
	for i := range f {
		g[i] = jacobiSeq(N-1-i, float64(2*i+1), 0, b)
		dg[i] = jacobiDiffSeq(N-1-i, float64(2*i+1), 0, b)
	}
	ob = make([][]*big.Float, 0, tb.NumModes())
	tb.forEachMode(func(i, j int) {
		// (1-b)^(i-1) appears with the chain rule factor; the i = 0 case
		// never multiplies a nonzero term, so it is pinned to 1
		tmp := one
		if i > 0 {
			tmp = powi(omb, i-1)
		}
		pij := mul(mpi(2), tmp, df[i], g[i][j])
		qij := add(
			mul(tmp, add(mul(mpi(-i), f[i]), mul(opa, df[i])), g[i][j]),
			mul(powi(omb, i), f[i], dg[i][j]))
		cij := triNorm(i, j)
		ob = append(ob, []*big.Float{mul(cij, pij), mul(cij, qij)})
	})
	return
}
