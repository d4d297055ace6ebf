package polys

import "math/big"

// TetBasis is the orthonormal (Proriol-Koornwinder-Dubiner) basis on the
// reference tetrahedron {(p,q,r) : p,q,r >= -1, p+q+r <= -1}, built on the
// collapsed coordinates
//
//	a = -2(1+p)/(q+r) - 1, b = 2(1+q)/(1-r) - 1, c = r
//
// The a collapse is singular along r = -q and the b collapse along r = 1;
// both inputs map to the limiting value -1.
type TetBasis struct {
	Order int
}

func (tb *TetBasis) Name() string { return "tet" }
func (tb *TetBasis) Dims() int    { return 3 }

func (tb *TetBasis) NumModes() int {
	return tb.Order * (tb.Order + 1) * (tb.Order + 2) / 6
}

func (tb *TetBasis) forEachMode(f func(i, j, k int)) {
	for i := 0; i < tb.Order; i++ {
		for j := 0; j < tb.Order-i; j++ {
			for k := 0; k < tb.Order-i-j; k++ {
				f(i, j, k)
			}
		}
	}
}

func (tb *TetBasis) Degrees() (degs []int) {
	tb.forEachMode(func(i, j, k int) {
		degs = append(degs, i+j+k)
	})
	return
}

func tetCollapse(p, q, r *big.Float) (a, b, c *big.Float) {
	one := mpi(1)
	if r.Cmp(neg(q)) != 0 {
		// a = -2(1+p)/(q+r) - 1
		a = sub(quo(mul(mpi(-2), add(one, p)), add(q, r)), one)
	} else {
		a = mpi(-1)
	}
	if r.Cmp(one) != 0 {
		// b = 2(1+q)/(1-r) - 1
		b = sub(quo(mul(mpi(2), add(one, q)), sub(one, r)), one)
	} else {
		b = mpi(-1)
	}
	c = r
	return
}

func (tb *TetBasis) seqs(a, b, c *big.Float, diff bool) (f, df []*big.Float,
	g, dg [][]*big.Float, h, dh [][][]*big.Float) {
	var (
		N = tb.Order
	)
	f = jacobiSeq(N-1, 0, 0, a)
	g = make([][]*big.Float, len(f))
	h = make([][][]*big.Float, len(f))
	if diff {
		df = jacobiDiffSeq(N-1, 0, 0, a)
		dg = make([][]*big.Float, len(f))
		dh = make([][][]*big.Float, len(f))
	}
	for i := range f {
		g[i] = jacobiSeq(N-1-i, float64(2*i+1), 0, b)
		h[i] = make([][]*big.Float, len(g[i]))
		if diff {
			dg[i] = jacobiDiffSeq(N-1-i, float64(2*i+1), 0, b)
			dh[i] = make([][]*big.Float, len(g[i]))
		}
		for j := range g[i] {
			h[i][j] = jacobiSeq(N-1-i-j, float64(2*(i+j+1)), 0, c)
			if diff {
				dh[i][j] = jacobiDiffSeq(N-1-i-j, float64(2*(i+j+1)), 0, c)
			}
		}
	}
	return
}

func (tb *TetBasis) OrthoAtPoint(cd []*big.Float) (ob []*big.Float) {
	var (
		a, b, c          = tetCollapse(cd[0], cd[1], cd[2])
		f, _, g, _, h, _ = tb.seqs(a, b, c, false)
		one              = mpi(1)
		omb              = sub(one, b)
		omc              = sub(one, c)
	)
	ob = make([]*big.Float, 0, tb.NumModes())
	tb.forEachMode(func(i, j, k int) {
		ci := mul(powi(mpi(2), -2*i-1), sqrt(mpi(2*i+1)), powi(omb, i))
		cj := mul(sqrt(mpi(i+j+1)), powi(mpi(2), -j), powi(omc, i+j))
		ck := sqrt(mpi(2*(i+j+k) + 3))
		ob = append(ob, mul(ci, cj, ck, f[i], g[i][j], h[i][j][k]))
	})
	return
}

func (tb *TetBasis) JacOrthoAtPoint(cd []*big.Float) (ob [][]*big.Float) {
	var (
		a, b, c             = tetCollapse(cd[0], cd[1], cd[2])
		f, df, g, dg, h, dh = tb.seqs(a, b, c, true)
		one                 = mpi(1)
		omb                 = sub(one, b)
		omc                 = sub(one, c)
		opa                 = add(one, a)
		opb                 = add(one, b)
	)
	ob = make([][]*big.Float, 0, tb.NumModes())
	tb.forEachMode(func(i, j, k int) {
		ci := mul(powi(mpi(2), -2*i-1), sqrt(mpi(2*i+1)))
		cj := mul(sqrt(mpi(i+j+1)), powi(mpi(2), -j))
		ck := sqrt(mpi(2*(i+j+k) + 3))
		cijk := mul(ci, cj, ck)

		// Deflated collapse weights; the excluded low-index cases only
		// ever multiply terms that vanish there
		tmp1 := one
		if i+j > 0 {
			tmp1 = powi(omc, i+j-1)
		}
		tmp2 := one
		if i > 0 {
			tmp2 = mul(tmp1, powi(omb, i-1))
		}
		ombi := powi(omb, i)

		pijk := mul(mpi(4), tmp2, df[i], g[i][j], h[i][j][k])
		qijk := mul(mpi(2), add(
			mul(tmp2, add(mul(mpi(-i), f[i]), mul(opa, df[i])), g[i][j]),
			mul(tmp1, ombi, f[i], dg[i][j])),
			h[i][j][k])
		rijk := add(
			mul(mpi(2), opa, tmp2, df[i], g[i][j], h[i][j][k]),
			mul(opb, tmp1, ombi, f[i], dg[i][j], h[i][j][k]),
			mul(powi(omc, i+j), ombi, f[i], g[i][j], dh[i][j][k]),
			neg(mul(
				add(mul(mpi(i), opb, tmp2), mul(mpi(i+j), tmp1, ombi)),
				f[i], g[i][j], h[i][j][k])))

		ob = append(ob, []*big.Float{
			mul(cijk, pijk), mul(cijk, qijk), mul(cijk, rijk),
		})
	})
	return
}
