// Package polys constructs hierarchical L2-orthonormal polynomial bases on
// the canonical reference elements (line, tri, quad, tet, pri, pyr, hex) and
// the nodal (Lagrange) bases associated with a chosen point set on each
// element. The orthonormal bases are built from 1D Jacobi polynomials
// composed through collapsed coordinates, evaluated in extended precision
// and projected to float64.
package polys

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/notargets/polylib/mp"
	"github.com/notargets/polylib/utils"
)

// ChopTol is the magnitude below which projected values are snapped to
// exactly zero. Callers must not rely on sub-tolerance magnitudes surviving.
const ChopTol = 1.e-10

// Point is one reference element coordinate; its length matches the
// element's spatial dimension.
type Point []float64

// ScalarPoints promotes bare 1D coordinates to single-entry Points.
func ScalarPoints(xs []float64) (pts []Point) {
	pts = make([]Point, len(xs))
	for i, x := range xs {
		pts[i] = Point{x}
	}
	return
}

// shapeBasis is the closed set of per-topology orthonormal basis
// generators. All three products of a generator - values, gradients and the
// degree table - share one canonical mode ordering.
type shapeBasis interface {
	Name() string
	Dims() int
	NumModes() int
	Degrees() []int
	// OrthoAtPoint returns the value of every basis function at one point,
	// in canonical order, in extended precision.
	OrthoAtPoint(c []*big.Float) []*big.Float
	// JacOrthoAtPoint returns, per basis function, the gradient with
	// respect to the original reference coordinates.
	JacOrthoAtPoint(c []*big.Float) [][]*big.Float
}

type shapeCtor func(order int) shapeBasis

var shapeRegistry = map[string]shapeCtor{
	"line": func(n int) shapeBasis { return &LineBasis{Order: n} },
	"tri":  func(n int) shapeBasis { return &TriBasis{Order: n} },
	"quad": func(n int) shapeBasis { return &QuadBasis{Order: n} },
	"tet":  func(n int) shapeBasis { return &TetBasis{Order: n} },
	"pri":  func(n int) shapeBasis { return &PriBasis{Order: n} },
	"pyr":  func(n int) shapeBasis { return &PyrBasis{Order: n} },
	"hex":  func(n int) shapeBasis { return &HexBasis{Order: n} },
}

func errUnknownShape(name string) error {
	return fmt.Errorf("unknown element type name %q", name)
}

// ShapeNames returns the registered element type names in no particular
// order.
func ShapeNames() (names []string) {
	for name := range shapeRegistry {
		names = append(names, name)
	}
	return
}

// PolyBasis couples a shape generator with a defining point set. The point
// set is fixed at construction; the Vandermonde matrix derived from it is
// computed once, on first nodal request, and cached for the life of the
// instance.
type PolyBasis struct {
	Order int
	Pts   []Point
	shapeBasis
	vdmOnce sync.Once
	vdm     utils.Matrix
}

// NewPolyBasis resolves name to one of the seven element topologies and
// builds the basis of the given order over pts. Pts may be empty when only
// modal evaluation is needed; nodal requests then fail at solve time.
func NewPolyBasis(name string, order int, pts []Point) (pb *PolyBasis, err error) {
	ctor, ok := shapeRegistry[name]
	if !ok {
		err = errUnknownShape(name)
		return
	}
	if order < 0 {
		err = fmt.Errorf("invalid basis order %d", order)
		return
	}
	pb = &PolyBasis{
		Order:      order,
		Pts:        pts,
		shapeBasis: ctor(order),
	}
	return
}

func toMP(pt Point) (c []*big.Float) {
	c = make([]*big.Float, len(pt))
	for i, x := range pt {
		c[i] = mp.New(x)
	}
	return
}

// OrthoBasisAt evaluates the orthonormal basis at every point, returning
// the [basis, point] matrix of projected, chopped values.
func (pb *PolyBasis) OrthoBasisAt(pts []Point) (P utils.Matrix) {
	var (
		Nm = pb.NumModes()
	)
	P = utils.NewMatrix(Nm, len(pts))
	for k, pt := range pts {
		vals := pb.OrthoAtPoint(toMP(pt))
		for i, v := range vals {
			P.Set(i, k, mp.Float64(v))
		}
	}
	return P.Chop(ChopTol)
}

// JacOrthoBasisAt evaluates the orthonormal basis gradients at every point.
// The result holds one [basis, point] matrix per reference axis, axes in
// the generator's declared order.
func (pb *PolyBasis) JacOrthoBasisAt(pts []Point) (J []utils.Matrix) {
	var (
		Nm = pb.NumModes()
	)
	J = make([]utils.Matrix, pb.Dims())
	for d := range J {
		J[d] = utils.NewMatrix(Nm, len(pts))
	}
	for k, pt := range pts {
		grads := pb.JacOrthoAtPoint(toMP(pt))
		for i, g := range grads {
			for d, v := range g {
				J[d].Set(i, k, mp.Float64(v))
			}
		}
	}
	for d := range J {
		J[d].Chop(ChopTol)
	}
	return
}

// Vandermonde is the generalized Vandermonde matrix of the basis over its
// own defining point set, rows points and columns basis functions. It is
// computed at most once per instance.
func (pb *PolyBasis) Vandermonde() utils.Matrix {
	pb.vdmOnce.Do(func() {
		if len(pb.Pts) == 0 {
			// modal-only basis; nodal requests are rejected before the
			// solve ever sees this
			return
		}
		pb.vdm = pb.OrthoBasisAt(pb.Pts).Transpose()
	})
	return pb.vdm
}

// NodalBasisAt evaluates the nodal (cardinal) basis associated with the
// defining point set at epts, returning the [point, node] matrix. The
// Vandermonde matrix must be square and nonsingular; an ill-posed point set
// surfaces as a solver error.
func (pb *PolyBasis) NodalBasisAt(epts []Point) (N utils.Matrix, err error) {
	if len(pb.Pts) == 0 {
		err = fmt.Errorf("nodal basis requested for %s basis with no defining points", pb.Name())
		return
	}
	// the coefficient solve runs against V^T, whose columns are the basis
	// values at the defining points; the cardinal property fails otherwise
	C, err := pb.Vandermonde().Transpose().LUSolve(pb.OrthoBasisAt(epts))
	if err != nil {
		return
	}
	N = C.Transpose().Chop(ChopTol)
	return
}

// JacNodalBasisAt evaluates the nodal basis gradients at epts, one
// [point, node] matrix per reference axis.
func (pb *PolyBasis) JacNodalBasisAt(epts []Point) (J []utils.Matrix, err error) {
	if len(pb.Pts) == 0 {
		err = fmt.Errorf("nodal basis requested for %s basis with no defining points", pb.Name())
		return
	}
	var (
		VT = pb.Vandermonde().Transpose()
		B  = pb.JacOrthoBasisAt(epts)
	)
	J = make([]utils.Matrix, len(B))
	for d := range B {
		var C utils.Matrix
		if C, err = VT.LUSolve(B[d]); err != nil {
			J = nil
			return
		}
		J[d] = C.Transpose().Chop(ChopTol)
	}
	return
}

// Local aliases keep the hand-derived basis formulas close to their
// mathematical form.
var (
	add  = mp.Add
	sub  = mp.Sub
	mul  = mp.Mul
	quo  = mp.Quo
	neg  = mp.Neg
	sqrt = mp.Sqrt
	powi = mp.PowInt
	mpi  = mp.Int

	jacobiSeq     = mp.Jacobi
	jacobiDiffSeq = mp.JacobiDiff
)

// legendreNorm evaluates the n orthonormalized Legendre polynomials
// sqrt(k + 1/2) P_k^(0,0), k = 0..n-1, at one point.
func legendreNorm(n int, x *big.Float) (p []*big.Float) {
	jp := mp.Jacobi(n-1, 0, 0, x)
	p = make([]*big.Float, len(jp))
	for k, pk := range jp {
		p[k] = mp.Mul(sqrtKHalf(k), pk)
	}
	return
}

func legendreNormDiff(n int, x *big.Float) (p []*big.Float) {
	djp := mp.JacobiDiff(n-1, 0, 0, x)
	p = make([]*big.Float, len(djp))
	for k, dpk := range djp {
		p[k] = mp.Mul(sqrtKHalf(k), dpk)
	}
	return
}

// sqrtKHalf is sqrt(k + 1/2), the 1D Legendre normalization constant.
func sqrtKHalf(k int) *big.Float {
	return mp.Sqrt(mp.Quo(mp.Int(2*k+1), mp.Int(2)))
}
