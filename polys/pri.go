package polys

import "math/big"

// PriBasis is the orthonormal basis on the reference prism, the tensor
// product of the triangle basis in (p,q) with the orthonormalized Legendre
// basis in r. The triangle collapse a = 2(1+p)/(1-q) - 1 is singular along
// q = 1 and maps there to its limit a = -1.
type PriBasis struct {
	Order int
}

func (pr *PriBasis) Name() string { return "pri" }
func (pr *PriBasis) Dims() int    { return 3 }

func (pr *PriBasis) NumModes() int {
	return pr.Order * pr.Order * (pr.Order + 1) / 2
}

func (pr *PriBasis) forEachMode(f func(i, j, k int)) {
	for i := 0; i < pr.Order; i++ {
		for j := 0; j < pr.Order-i; j++ {
			for k := 0; k < pr.Order; k++ {
				f(i, j, k)
			}
		}
	}
}

func (pr *PriBasis) Degrees() (degs []int) {
	pr.forEachMode(func(i, j, k int) {
		degs = append(degs, i+j+k)
	})
	return
}

func (pr *PriBasis) OrthoAtPoint(cd []*big.Float) (ob []*big.Float) {
	var (
		a, b = triCollapse(cd[0], cd[1])
		c    = cd[2]
		N    = pr.Order
		f    = jacobiSeq(N-1, 0, 0, a)
		g    = make([][]*big.Float, len(f))
		pc   = legendreNorm(N, c)
		omb  = sub(mpi(1), b)
	)
	for i := range f {
		g[i] = jacobiSeq(N-1-i, float64(2*i+1), 0, b)
	}
	ob = make([]*big.Float, 0, pr.NumModes())
	pr.forEachMode(func(i, j, k int) {
		pij := mul(triNorm(i, j), powi(omb, i), f[i], g[i][j])
		ob = append(ob, mul(pij, pc[k]))
	})
	return
}

func (pr *PriBasis) JacOrthoAtPoint(cd []*big.Float) (ob [][]*big.Float) {
	var (
		a, b = triCollapse(cd[0], cd[1])
		c    = cd[2]
		N    = pr.Order
		f    = jacobiSeq(N-1, 0, 0, a)
		df   = jacobiDiffSeq(N-1, 0, 0, a)
		g    = make([][]*big.Float, len(f))
		dg   = make([][]*big.Float, len(f))
		hc   = legendreNorm(N, c)
		dhc  = legendreNormDiff(N, c)
		one  = mpi(1)
		omb  = sub(one, b)
		opa  = add(one, a)
	)
	for i := range f {
		g[i] = jacobiSeq(N-1-i, float64(2*i+1), 0, b)
		dg[i] = jacobiDiffSeq(N-1-i, float64(2*i+1), 0, b)
	}
	ob = make([][]*big.Float, 0, pr.NumModes())
	pr.forEachMode(func(i, j, k int) {
		cij := triNorm(i, j)
		tmp := one
		if i > 0 {
			tmp = powi(omb, i-1)
		}
		pij := mul(cij, mpi(2), tmp, df[i], g[i][j])
		qij := mul(cij, add(
			mul(tmp, add(mul(mpi(-i), f[i]), mul(opa, df[i])), g[i][j]),
			mul(powi(omb, i), f[i], dg[i][j])))
		rij := mul(cij, powi(omb, i), f[i], g[i][j])
		ob = append(ob, []*big.Float{
			mul(pij, hc[k]), mul(qij, hc[k]), mul(rij, dhc[k]),
		})
	})
	return
}
