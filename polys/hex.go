package polys

import "math/big"

// HexBasis is the triple tensor product of orthonormalized Legendre bases
// on the reference hexahedron [-1,1]^3.
type HexBasis struct {
	Order int
}

func (hb *HexBasis) Name() string { return "hex" }
func (hb *HexBasis) Dims() int    { return 3 }

func (hb *HexBasis) NumModes() int { return hb.Order * hb.Order * hb.Order }

func (hb *HexBasis) forEachMode(f func(i, j, k int)) {
	for i := 0; i < hb.Order; i++ {
		for j := 0; j < hb.Order; j++ {
			for k := 0; k < hb.Order; k++ {
				f(i, j, k)
			}
		}
	}
}

func (hb *HexBasis) Degrees() (degs []int) {
	hb.forEachMode(func(i, j, k int) {
		degs = append(degs, i+j+k)
	})
	return
}

func (hb *HexBasis) OrthoAtPoint(c []*big.Float) (ob []*big.Float) {
	var (
		pa = legendreNorm(hb.Order, c[0])
		pb = legendreNorm(hb.Order, c[1])
		pc = legendreNorm(hb.Order, c[2])
	)
	ob = make([]*big.Float, 0, hb.NumModes())
	hb.forEachMode(func(i, j, k int) {
		ob = append(ob, mul(pa[i], pb[j], pc[k]))
	})
	return
}

func (hb *HexBasis) JacOrthoAtPoint(c []*big.Float) (ob [][]*big.Float) {
	var (
		pa  = legendreNorm(hb.Order, c[0])
		pb  = legendreNorm(hb.Order, c[1])
		pc  = legendreNorm(hb.Order, c[2])
		dpa = legendreNormDiff(hb.Order, c[0])
		dpb = legendreNormDiff(hb.Order, c[1])
		dpc = legendreNormDiff(hb.Order, c[2])
	)
	ob = make([][]*big.Float, 0, hb.NumModes())
	hb.forEachMode(func(i, j, k int) {
		ob = append(ob, []*big.Float{
			mul(dpa[i], pb[j], pc[k]),
			mul(pa[i], dpb[j], pc[k]),
			mul(pa[i], pb[j], dpc[k]),
		})
	})
	return
}
