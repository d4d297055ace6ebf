package polys

import "math/big"

// LineBasis is the orthonormalized Legendre basis on the reference line
// [-1,1].
type LineBasis struct {
	Order int
}

func (lb *LineBasis) Name() string { return "line" }
func (lb *LineBasis) Dims() int    { return 1 }

func (lb *LineBasis) NumModes() int { return lb.Order }

func (lb *LineBasis) forEachMode(f func(i int)) {
	for i := 0; i < lb.Order; i++ {
		f(i)
	}
}

func (lb *LineBasis) Degrees() (degs []int) {
	lb.forEachMode(func(i int) {
		degs = append(degs, i)
	})
	return
}

func (lb *LineBasis) OrthoAtPoint(c []*big.Float) (ob []*big.Float) {
	var (
		pa = legendreNorm(lb.Order, c[0])
	)
	ob = make([]*big.Float, 0, lb.NumModes())
	lb.forEachMode(func(i int) {
		ob = append(ob, pa[i])
	})
	return
}

func (lb *LineBasis) JacOrthoAtPoint(c []*big.Float) (ob [][]*big.Float) {
	var (
		dpa = legendreNormDiff(lb.Order, c[0])
	)
	ob = make([][]*big.Float, 0, lb.NumModes())
	lb.forEachMode(func(i int) {
		ob = append(ob, []*big.Float{dpa[i]})
	})
	return
}
