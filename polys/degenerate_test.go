package polys

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDegenerateCollapsePoints evaluates each shape exactly on the
// boundary locus where its coordinate collapse is singular. The special
// cased limit must produce finite values that agree with the approach from
// nearby regular points.
func TestDegenerateCollapsePoints(t *testing.T) {
	var (
		eps   = 1.e-7
		cases = []struct {
			shape    string
			singular Point
			nearby   Point
		}{
			// tri/pri: a = 2(1+p)/(1-q) - 1 blows up at q = 1
			{"tri", Point{-1, 1}, Point{-1, 1 - eps}},
			{"pri", Point{-1, 1, 0.2}, Point{-1, 1 - eps, 0.2}},
			// tet: a singular at r = -q, b singular at r = 1
			{"tet", Point{-1, -0.5, 0.5}, Point{-1, -0.5, 0.5 - eps}},
			{"tet", Point{-1, -1, 1}, Point{-1, -1, 1 - eps}},
			// pyr: both collapses singular at the apex r = 1
			{"pyr", Point{0, 0, 1}, Point{0, 0, 1 - eps}},
		}
	)
	for _, tc := range cases {
		for order := 1; order <= 4; order++ {
			pb, err := NewPolyBasis(tc.shape, order, nil)
			require.NoError(t, err)

			P := pb.OrthoBasisAt([]Point{tc.singular})
			Q := pb.OrthoBasisAt([]Point{tc.nearby})
			for i := 0; i < pb.NumModes(); i++ {
				v := P.At(i, 0)
				require.False(t, math.IsNaN(v) || math.IsInf(v, 0),
					"%s order %d mode %d at %v", tc.shape, order, i, tc.singular)
				assert.InDelta(t, Q.At(i, 0), v, 1.e-4,
					"%s order %d mode %d limit", tc.shape, order, i)
			}

			J := pb.JacOrthoBasisAt([]Point{tc.singular})
			for d := range J {
				for i := 0; i < pb.NumModes(); i++ {
					g := J[d].At(i, 0)
					require.False(t, math.IsNaN(g) || math.IsInf(g, 0),
						"%s order %d mode %d gradient axis %d", tc.shape, order, i, d)
				}
			}
		}
	}
}
