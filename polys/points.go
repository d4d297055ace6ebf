package polys

import "fmt"

// StdPoints returns a standard interpolation point set for the named
// reference element whose cardinality matches the basis cardinality at the
// given order, suitable for building a well-posed nodal basis. Tensor axes
// use Gauss-Lobatto points; simplex directions use equispaced lattices.
func StdPoints(name string, order int) (pts []Point, err error) {
	if order < 1 {
		return nil, fmt.Errorf("invalid basis order %d", order)
	}
	switch name {
	case "line":
		for _, x := range lineStdPoints(order) {
			pts = append(pts, Point{x})
		}
	case "quad":
		xs := lineStdPoints(order)
		for _, x := range xs {
			for _, y := range xs {
				pts = append(pts, Point{x, y})
			}
		}
	case "hex":
		xs := lineStdPoints(order)
		for _, x := range xs {
			for _, y := range xs {
				for _, z := range xs {
					pts = append(pts, Point{x, y, z})
				}
			}
		}
	case "tri":
		for _, pq := range triLattice(order) {
			pts = append(pts, Point{pq[0], pq[1]})
		}
	case "tet":
		if order == 1 {
			pts = []Point{{-0.5, -0.5, -0.5}}
			break
		}
		h := 2. / float64(order-1)
		for i := 0; i < order; i++ {
			for j := 0; j < order-i; j++ {
				for k := 0; k < order-i-j; k++ {
					pts = append(pts, Point{
						-1 + h*float64(k), -1 + h*float64(j), -1 + h*float64(i),
					})
				}
			}
		}
	case "pri":
		zs := lineStdPoints(order)
		for _, pq := range triLattice(order) {
			for _, z := range zs {
				pts = append(pts, Point{pq[0], pq[1], z})
			}
		}
	case "pyr":
		// one (order-k)^2 tensor grid per level, shrunk to the local
		// cross section; the apex itself is never a node
		for k := 0; k < order; k++ {
			r := 2.*float64(k)/float64(order) - 1
			scale := (1 - r) / 2
			xs := equispaced(order - k)
			for _, x := range xs {
				for _, y := range xs {
					pts = append(pts, Point{x * scale, y * scale, r})
				}
			}
		}
	default:
		err = errUnknownShape(name)
	}
	return
}

func lineStdPoints(n int) []float64 {
	if n == 1 {
		return []float64{0}
	}
	return JacobiGL(0, 0, n-1).Data()
}

func equispaced(n int) (xs []float64) {
	if n == 1 {
		return []float64{0}
	}
	xs = make([]float64, n)
	h := 2. / float64(n-1)
	for i := range xs {
		xs[i] = -1 + h*float64(i)
	}
	return
}

func triLattice(order int) (pts [][2]float64) {
	if order == 1 {
		return [][2]float64{{-1. / 3, -1. / 3}}
	}
	h := 2. / float64(order-1)
	for i := 0; i < order; i++ {
		for j := 0; j < order-i; j++ {
			pts = append(pts, [2]float64{-1 + h*float64(j), -1 + h*float64(i)})
		}
	}
	return
}
