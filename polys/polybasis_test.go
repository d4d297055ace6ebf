package polys

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/polylib/utils"
)

var allShapes = []string{"line", "tri", "quad", "tet", "pri", "pyr", "hex"}

func TestFactory(t *testing.T) {
	pb, err := NewPolyBasis("tri", 3, nil)
	require.NoError(t, err)
	assert.Equal(t, "tri", pb.Name())
	assert.Equal(t, 2, pb.Dims())
	assert.Equal(t, 6, pb.NumModes())

	_, err = NewPolyBasis("octagon", 3, nil)
	assert.Error(t, err)
	_, err = NewPolyBasis("tet", -1, nil)
	assert.Error(t, err)
}

func TestLineBasisValues(t *testing.T) {
	// order 2 holds the two orthonormalized Legendre modes sqrt(1/2) and
	// sqrt(3/2) x
	pb, err := NewPolyBasis("line", 2, nil)
	require.NoError(t, err)
	P := pb.OrthoBasisAt(ScalarPoints([]float64{-1, 0, 1}))
	var (
		c0 = math.Sqrt(0.5)
		c1 = math.Sqrt(1.5)
	)
	for k := 0; k < 3; k++ {
		assert.True(t, near(P.At(0, k), c0))
	}
	assert.True(t, near(P.At(1, 0), -c1))
	assert.True(t, near(P.At(1, 1), 0))
	assert.True(t, near(P.At(1, 2), c1))
}

func TestLineNodalIdentity(t *testing.T) {
	pts := ScalarPoints([]float64{-1, 0, 1})
	pb, err := NewPolyBasis("line", 3, pts)
	require.NoError(t, err)
	N, err := pb.NodalBasisAt(pts)
	require.NoError(t, err)
	assertIdentity(t, N, 1.e-10)
}

// TestNodalSolveOrientation pins the coefficient solve to the transposed
// Vandermonde matrix: V^T N^T must reproduce the orthonormal basis values
// at the evaluation points. The Vandermonde matrix is never symmetric, so
// solving against V itself would break the cardinal property silently.
func TestNodalSolveOrientation(t *testing.T) {
	pts, err := StdPoints("tri", 3)
	require.NoError(t, err)
	pb, err := NewPolyBasis("tri", 3, pts)
	require.NoError(t, err)

	epts := []Point{{-0.3, -0.5}, {-0.9, 0.1}, {0.2, -0.7}}
	N, err := pb.NodalBasisAt(epts)
	require.NoError(t, err)

	B := pb.OrthoBasisAt(epts)
	R := pb.Vandermonde().Transpose().Mul(N.Transpose())
	nr, nc := B.Dims()
	for i := 0; i < nr; i++ {
		for k := 0; k < nc; k++ {
			assert.InDelta(t, B.At(i, k), R.At(i, k), 1.e-9)
		}
	}

	// cardinal property at the defining points themselves
	I, err := pb.NodalBasisAt(pts)
	require.NoError(t, err)
	assertIdentity(t, I, 1.e-9)
}

func TestQuadConstantBasis(t *testing.T) {
	// order 1 is the single constant mode, value 1/2 anywhere on [-1,1]^2
	pb, err := NewPolyBasis("quad", 1, nil)
	require.NoError(t, err)
	P := pb.OrthoBasisAt([]Point{{0, 0}, {-1, 1}, {0.7, -0.3}})
	nr, nc := P.Dims()
	assert.Equal(t, 1, nr)
	assert.Equal(t, 3, nc)
	for k := 0; k < nc; k++ {
		assert.True(t, near(P.At(0, k), 0.5))
	}
}

func TestDegreeTables(t *testing.T) {
	for _, name := range allShapes {
		for order := 1; order <= 4; order++ {
			pb, err := NewPolyBasis(name, order, nil)
			require.NoError(t, err)
			degs := pb.Degrees()
			assert.Equal(t, pb.NumModes(), len(degs), "%s order %d", name, order)
			assert.Equal(t, 0, degs[0])
			for _, d := range degs {
				assert.GreaterOrEqual(t, d, 0)
			}
			// values and degree table come from the same enumeration
			P := pb.OrthoBasisAt([]Point{interiorPoint(name)})
			nr, _ := P.Dims()
			assert.Equal(t, len(degs), nr)
		}
	}
}

func TestChopTruncation(t *testing.T) {
	// sqrt(3/2) x at x = 1e-12 is far below the truncation tolerance and
	// must be reported as exactly zero
	pb, err := NewPolyBasis("line", 2, nil)
	require.NoError(t, err)
	P := pb.OrthoBasisAt(ScalarPoints([]float64{1.e-12}))
	assert.Equal(t, 0., P.At(1, 0))
}

func TestEmptyPointSetNodalFails(t *testing.T) {
	pb, err := NewPolyBasis("tri", 2, nil)
	require.NoError(t, err)
	_, err = pb.NodalBasisAt([]Point{{0, 0}})
	assert.Error(t, err)
	_, err = pb.JacNodalBasisAt([]Point{{0, 0}})
	assert.Error(t, err)
}

func TestVandermondeCached(t *testing.T) {
	pts, err := StdPoints("tri", 3)
	require.NoError(t, err)
	pb, err := NewPolyBasis("tri", 3, pts)
	require.NoError(t, err)
	V1 := pb.Vandermonde()
	V2 := pb.Vandermonde()
	assert.Same(t, &V1.Data()[0], &V2.Data()[0])
}

func TestVandermondeConcurrentFirstAccess(t *testing.T) {
	pts, err := StdPoints("tet", 3)
	require.NoError(t, err)
	pb, err := NewPolyBasis("tet", 3, pts)
	require.NoError(t, err)
	var (
		done = make(chan utils.Matrix, 8)
	)
	for g := 0; g < 8; g++ {
		go func() {
			done <- pb.Vandermonde()
		}()
	}
	first := <-done
	for g := 1; g < 8; g++ {
		V := <-done
		assert.Same(t, &first.Data()[0], &V.Data()[0])
	}
}

func interiorPoint(name string) Point {
	switch name {
	case "line":
		return Point{0.3}
	case "tri":
		return Point{-0.4, -0.3}
	case "quad":
		return Point{0.3, -0.2}
	case "tet":
		return Point{-0.5, -0.4, -0.3}
	case "pri":
		return Point{-0.4, -0.3, 0.2}
	case "pyr":
		return Point{0.1, -0.2, -0.3}
	case "hex":
		return Point{0.3, -0.2, 0.1}
	}
	panic("unknown shape " + name)
}

func assertIdentity(t *testing.T, M utils.Matrix, tol float64) {
	t.Helper()
	nr, nc := M.Dims()
	assert.Equal(t, nr, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			want := 0.
			if i == j {
				want = 1.
			}
			assert.InDelta(t, want, M.At(i, j), tol, "entry (%d,%d)", i, j)
		}
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1.e-10*math.Max(1, math.Abs(b))
}
