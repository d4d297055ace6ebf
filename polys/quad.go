package polys

import "math/big"

// QuadBasis is the tensor product of two orthonormalized Legendre bases on
// the reference quadrilateral [-1,1]^2.
type QuadBasis struct {
	Order int
}

func (qb *QuadBasis) Name() string { return "quad" }
func (qb *QuadBasis) Dims() int    { return 2 }

func (qb *QuadBasis) NumModes() int { return qb.Order * qb.Order }

func (qb *QuadBasis) forEachMode(f func(i, j int)) {
	for i := 0; i < qb.Order; i++ {
		for j := 0; j < qb.Order; j++ {
			f(i, j)
		}
	}
}

func (qb *QuadBasis) Degrees() (degs []int) {
	qb.forEachMode(func(i, j int) {
		degs = append(degs, i+j)
	})
	return
}

func (qb *QuadBasis) OrthoAtPoint(c []*big.Float) (ob []*big.Float) {
	var (
		pa = legendreNorm(qb.Order, c[0])
		pb = legendreNorm(qb.Order, c[1])
	)
	ob = make([]*big.Float, 0, qb.NumModes())
	qb.forEachMode(func(i, j int) {
		ob = append(ob, mul(pa[i], pb[j]))
	})
	return
}

func (qb *QuadBasis) JacOrthoAtPoint(c []*big.Float) (ob [][]*big.Float) {
	var (
		pa  = legendreNorm(qb.Order, c[0])
		pb  = legendreNorm(qb.Order, c[1])
		dpa = legendreNormDiff(qb.Order, c[0])
		dpb = legendreNormDiff(qb.Order, c[1])
	)
	ob = make([][]*big.Float, 0, qb.NumModes())
	qb.forEachMode(func(i, j int) {
		ob = append(ob, []*big.Float{
			mul(dpa[i], pb[j]),
			mul(pa[i], dpb[j]),
		})
	})
	return
}
