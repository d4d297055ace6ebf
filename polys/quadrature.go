package polys

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/polylib/utils"
)

// JacobiGQ returns the N+1 point Gauss-Jacobi quadrature rule for the
// weight (1-x)^alpha (1+x)^beta on [-1,1], via Golub-Welsch on the
// symmetric tridiagonal recurrence matrix.
func JacobiGQ(alpha, beta float64, N int) (X, W utils.Vector) {
	var (
		x, w       []float64
		fac        float64
		h1, d0, d1 []float64
	)
	if N == 0 {
		x = []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w = []float64{gamma0(alpha, beta)}
		return utils.NewVector(len(x), x), utils.NewVector(len(w), w)
	}

	h1 = make([]float64, N+1)
	for i := 0; i < N+1; i++ {
		h1[i] = 2*float64(i) + alpha + beta
	}

	// main diagonal: diag((beta^2-alpha^2)./(h1+2)./h1)
	d0 = make([]float64, N+1)
	fac = beta*beta - alpha*alpha
	for i := 0; i < N+1; i++ {
		val := h1[i]
		d0[i] = fac / (val * (val + 2.))
	}
	// Handle division by zero
	eps := 1.e-16
	if alpha+beta < 10*eps {
		d0[0] = 0.
	}

	// 1st upper diagonal
	var ip1 float64
	d1 = make([]float64, N)
	for i := 0; i < N; i++ {
		ip1 = float64(i + 1)
		val := h1[i]
		d1[i] = 2. / (val + 2.)
		d1[i] *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((val + 1.) * (val + 3.)))
	}

	JJ := utils.NewSymTriDiagonal(d0, d1)

	var eig mat.EigenSym
	ok := eig.Factorize(JJ, true)
	if !ok {
		panic("eigenvalue decomposition failed")
	}
	x = eig.Values(x)
	X = utils.NewVector(N+1, x)

	VVr := mat.NewDense(len(x), len(x), nil)
	eig.VectorsTo(VVr)
	W = utils.NewVector(len(x), VVr.RawRowView(0)).POW(2).Scale(gamma0(alpha, beta))
	return X, W
}

// JacobiGL returns the N+1 point Gauss-Lobatto-Jacobi points on [-1,1],
// including both endpoints.
func JacobiGL(alpha, beta float64, N int) (X utils.Vector) {
	var (
		x = make([]float64, N+1)
	)
	if N == 0 {
		return utils.NewVector(1, []float64{0})
	}
	x[0] = -1
	x[N] = 1
	if N > 1 {
		xint, _ := JacobiGQ(alpha+1, beta+1, N-2)
		copy(x[1:N], xint.Data())
	}
	X = utils.NewVector(N+1, x)
	return
}

func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

// Cubature is a quadrature rule over a reference element, exact for the
// polynomial content of the element's orthonormal basis products when
// built with enough 1D points.
type Cubature struct {
	Pts []Point
	W   []float64
}

// ElementCubature builds an nq-point-per-axis quadrature rule for the
// named reference element by tensoring 1D Gauss-Jacobi rules through the
// element's collapsed coordinate map. The Jacobi weight exponents absorb
// the Jacobian factors of the collapse, so the rule has no singular
// weights.
func ElementCubature(name string, nq int) (cub Cubature, err error) {
	switch name {
	case "line":
		x, w := JacobiGQ(0, 0, nq-1)
		for m := 0; m < x.Len(); m++ {
			cub.Pts = append(cub.Pts, Point{x.AtVec(m)})
			cub.W = append(cub.W, w.AtVec(m))
		}
	case "quad":
		x, w := JacobiGQ(0, 0, nq-1)
		for m := 0; m < x.Len(); m++ {
			for n := 0; n < x.Len(); n++ {
				cub.Pts = append(cub.Pts, Point{x.AtVec(m), x.AtVec(n)})
				cub.W = append(cub.W, w.AtVec(m)*w.AtVec(n))
			}
		}
	case "hex":
		x, w := JacobiGQ(0, 0, nq-1)
		for m := 0; m < x.Len(); m++ {
			for n := 0; n < x.Len(); n++ {
				for o := 0; o < x.Len(); o++ {
					cub.Pts = append(cub.Pts, Point{x.AtVec(m), x.AtVec(n), x.AtVec(o)})
					cub.W = append(cub.W, w.AtVec(m)*w.AtVec(n)*w.AtVec(o))
				}
			}
		}
	case "tri":
		// dp dq = (1-b)/2 da db; the (1-b) factor moves into the b rule
		xa, wa := JacobiGQ(0, 0, nq-1)
		xb, wb := JacobiGQ(1, 0, nq-1)
		for m := 0; m < xa.Len(); m++ {
			for n := 0; n < xb.Len(); n++ {
				a, b := xa.AtVec(m), xb.AtVec(n)
				p := (1+a)*(1-b)/2 - 1
				cub.Pts = append(cub.Pts, Point{p, b})
				cub.W = append(cub.W, wa.AtVec(m)*wb.AtVec(n)/2)
			}
		}
	case "tet":
		// dp dq dr = (1-b)/2 ((1-c)/2)^2 da db dc
		xa, wa := JacobiGQ(0, 0, nq-1)
		xb, wb := JacobiGQ(1, 0, nq-1)
		xc, wc := JacobiGQ(2, 0, nq-1)
		for m := 0; m < xa.Len(); m++ {
			for n := 0; n < xb.Len(); n++ {
				for o := 0; o < xc.Len(); o++ {
					a, b, c := xa.AtVec(m), xb.AtVec(n), xc.AtVec(o)
					q := (1+b)*(1-c)/2 - 1
					p := (1+a)*(1-b)*(1-c)/4 - 1
					cub.Pts = append(cub.Pts, Point{p, q, c})
					cub.W = append(cub.W, wa.AtVec(m)*wb.AtVec(n)*wc.AtVec(o)/8)
				}
			}
		}
	case "pri":
		xa, wa := JacobiGQ(0, 0, nq-1)
		xb, wb := JacobiGQ(1, 0, nq-1)
		xc, wc := JacobiGQ(0, 0, nq-1)
		for m := 0; m < xa.Len(); m++ {
			for n := 0; n < xb.Len(); n++ {
				for o := 0; o < xc.Len(); o++ {
					a, b := xa.AtVec(m), xb.AtVec(n)
					p := (1+a)*(1-b)/2 - 1
					cub.Pts = append(cub.Pts, Point{p, b, xc.AtVec(o)})
					cub.W = append(cub.W, wa.AtVec(m)*wb.AtVec(n)*wc.AtVec(o)/2)
				}
			}
		}
	case "pyr":
		// dp dq dr = ((1-c)/2)^2 da db dc
		xa, wa := JacobiGQ(0, 0, nq-1)
		xc, wc := JacobiGQ(2, 0, nq-1)
		for m := 0; m < xa.Len(); m++ {
			for n := 0; n < xa.Len(); n++ {
				for o := 0; o < xc.Len(); o++ {
					a, b, c := xa.AtVec(m), xa.AtVec(n), xc.AtVec(o)
					p := a * (1 - c) / 2
					q := b * (1 - c) / 2
					cub.Pts = append(cub.Pts, Point{p, q, c})
					cub.W = append(cub.W, wa.AtVec(m)*wa.AtVec(n)*wc.AtVec(o)/4)
				}
			}
		}
	default:
		err = errUnknownShape(name)
	}
	return
}
