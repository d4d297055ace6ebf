package polys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGradientConsistency compares the analytic gradients against central
// finite differences of the basis values at an interior point of each
// shape. The agreement tightens quadratically with the step size.
func TestGradientConsistency(t *testing.T) {
	for _, name := range allShapes {
		for order := 1; order <= 4; order++ {
			pb, err := NewPolyBasis(name, order, nil)
			require.NoError(t, err)
			var (
				pt   = interiorPoint(name)
				J    = pb.JacOrthoBasisAt([]Point{pt})
				dims = pb.Dims()
				Nm   = pb.NumModes()
				h    = 1.e-5
			)
			require.Equal(t, dims, len(J))
			for d := 0; d < dims; d++ {
				pp := append(Point{}, pt...)
				pm := append(Point{}, pt...)
				pp[d] += h
				pm[d] -= h
				Pp := pb.OrthoBasisAt([]Point{pp})
				Pm := pb.OrthoBasisAt([]Point{pm})
				for i := 0; i < Nm; i++ {
					fd := (Pp.At(i, 0) - Pm.At(i, 0)) / (2 * h)
					assert.InDelta(t, fd, J[d].At(i, 0), 5.e-6,
						"%s order %d mode %d axis %d", name, order, i, d)
				}
			}
		}
	}
}

// TestGradientConvergence verifies the finite difference error actually
// shrinks with the step, i.e. the analytic gradient is the limit.
func TestGradientConvergence(t *testing.T) {
	pb, err := NewPolyBasis("tet", 4, nil)
	require.NoError(t, err)
	var (
		pt = interiorPoint("tet")
		J  = pb.JacOrthoBasisAt([]Point{pt})
		i  = pb.NumModes() - 1 // highest mode has the largest derivatives
	)
	errAt := func(h float64) float64 {
		pp := append(Point{}, pt...)
		pm := append(Point{}, pt...)
		pp[2] += h
		pm[2] -= h
		Pp := pb.OrthoBasisAt([]Point{pp})
		Pm := pb.OrthoBasisAt([]Point{pm})
		fd := (Pp.At(i, 0) - Pm.At(i, 0)) / (2 * h)
		d := fd - J[2].At(i, 0)
		if d < 0 {
			d = -d
		}
		return d
	}
	e1 := errAt(1.e-2)
	e2 := errAt(1.e-3)
	assert.Less(t, e2, e1)
}
