package polys

import "math/big"

// PyrBasis is the orthonormal basis on the reference pyramid with base
// [-1,1]^2 at r = -1 and apex (0,0,1), built on the collapsed coordinates
//
//	a = 2p/(1-r), b = 2q/(1-r), c = r
//
// Both collapses are singular at the apex r = 1, where they take their
// limiting value 0. The tensor expansion in (a,b) is truncated in c at
// degree order - max(i,j) - 1, which keeps the basis hierarchical.
type PyrBasis struct {
	Order int
}

func (pb *PyrBasis) Name() string { return "pyr" }
func (pb *PyrBasis) Dims() int    { return 3 }

func (pb *PyrBasis) NumModes() int {
	// sum over (i,j) of order - max(i,j)
	return pb.Order * (pb.Order + 1) * (2*pb.Order + 1) / 6
}

func (pb *PyrBasis) forEachMode(f func(i, j, k int)) {
	for i := 0; i < pb.Order; i++ {
		for j := 0; j < pb.Order; j++ {
			kMax := pb.Order - i
			if j > i {
				kMax = pb.Order - j
			}
			for k := 0; k < kMax; k++ {
				f(i, j, k)
			}
		}
	}
}

func (pb *PyrBasis) Degrees() (degs []int) {
	pb.forEachMode(func(i, j, k int) {
		degs = append(degs, i+j+k)
	})
	return
}

func pyrCollapse(p, q, r *big.Float) (a, b, c *big.Float) {
	one := mpi(1)
	if r.Cmp(one) != 0 {
		omr := sub(one, r)
		a = quo(mul(mpi(2), p), omr)
		b = quo(mul(mpi(2), q), omr)
	} else {
		a = mpi(0)
		b = mpi(0)
	}
	c = r
	return
}

// pyrScale is 2^(-k-1/4) sqrt(k + 1/2), the per-mode scaling of the (a,b)
// tensor directions.
func pyrScale(n int) (sk []*big.Float) {
	// 2^(-1/4) = 1/sqrt(sqrt(2))
	rootQuarter := quo(mpi(1), sqrt(sqrt(mpi(2))))
	sk = make([]*big.Float, n)
	for k := range sk {
		sk[k] = mul(powi(mpi(2), -k), rootQuarter, sqrtKHalf(k))
	}
	return
}

func (pb *PyrBasis) cseqs(c *big.Float, diff bool) (h, dh [][][]*big.Float) {
	var (
		N = pb.Order
	)
	h = make([][][]*big.Float, N)
	if diff {
		dh = make([][][]*big.Float, N)
	}
	for i := 0; i < N; i++ {
		h[i] = make([][]*big.Float, N)
		if diff {
			dh[i] = make([][]*big.Float, N)
		}
		for j := 0; j < N; j++ {
			m := i
			if j > i {
				m = j
			}
			h[i][j] = jacobiSeq(N-1-m, float64(2*(i+j+1)), 0, c)
			if diff {
				dh[i][j] = jacobiDiffSeq(N-1-m, float64(2*(i+j+1)), 0, c)
			}
		}
	}
	return
}

func (pb *PyrBasis) OrthoAtPoint(cd []*big.Float) (ob []*big.Float) {
	var (
		a, b, c = pyrCollapse(cd[0], cd[1], cd[2])
		N       = pb.Order
		sk      = pyrScale(N)
		fa      = jacobiSeq(N-1, 0, 0, a)
		gb      = jacobiSeq(N-1, 0, 0, b)
		h, _    = pb.cseqs(c, false)
		omc     = sub(mpi(1), c)
	)
	for k := range fa {
		fa[k] = mul(sk[k], fa[k])
		gb[k] = mul(sk[k], gb[k])
	}
	ob = make([]*big.Float, 0, pb.NumModes())
	pb.forEachMode(func(i, j, k int) {
		cij := powi(omc, i+j)
		ck := sqrt(mpi(2*(i+j+k) + 3))
		ob = append(ob, mul(cij, ck, fa[i], gb[j], h[i][j][k]))
	})
	return
}

func (pb *PyrBasis) JacOrthoAtPoint(cd []*big.Float) (ob [][]*big.Float) {
	var (
		a, b, c = pyrCollapse(cd[0], cd[1], cd[2])
		N       = pb.Order
		sk      = pyrScale(N)
		fa      = jacobiSeq(N-1, 0, 0, a)
		gb      = jacobiSeq(N-1, 0, 0, b)
		dfa     = jacobiDiffSeq(N-1, 0, 0, a)
		dgb     = jacobiDiffSeq(N-1, 0, 0, b)
		h, dh   = pb.cseqs(c, true)
		one     = mpi(1)
		omc     = sub(one, c)
	)
	for k := range fa {
		fa[k] = mul(sk[k], fa[k])
		gb[k] = mul(sk[k], gb[k])
		dfa[k] = mul(sk[k], dfa[k])
		dgb[k] = mul(sk[k], dgb[k])
	}
	ob = make([][]*big.Float, 0, pb.NumModes())
	pb.forEachMode(func(i, j, k int) {
		ck := sqrt(mpi(2*(i+j+k) + 3))
		tmp := one
		if i+j > 0 {
			tmp = powi(omc, i+j-1)
		}
		pijk := mul(mpi(2), tmp, dfa[i], gb[j], h[i][j][k])
		qijk := mul(mpi(2), tmp, fa[i], dgb[j], h[i][j][k])
		rijk := add(
			mul(tmp,
				add(
					mul(a, dfa[i], gb[j]),
					mul(b, fa[i], dgb[j]),
					neg(mul(mpi(i+j), fa[i], gb[j]))),
				h[i][j][k]),
			mul(powi(omc, i+j), fa[i], gb[j], dh[i][j][k]))
		ob = append(ob, []*big.Float{
			mul(ck, pijk), mul(ck, qijk), mul(ck, rijk),
		})
	})
	return
}
