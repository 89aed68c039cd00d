package edgearc

import "math"

// RingPositions returns n node positions evenly spaced on a circle of the
// given radius centered at the origin. This is the arrangement that
// circular-mode arcs assume: every endpoint shares one enclosing circle
// around the origin.
func RingPositions(n int, radius float64) []Point {
	pts := make([]Point, n)
	if n == 0 {
		return pts
	}
	step := 2 * math.Pi / float64(n)
	for i := range pts {
		s, c := math.Sincos(float64(i) * step)
		pts[i] = Pt(radius*c, radius*s)
	}
	return pts
}

// LinePositions returns n node positions evenly spaced along the x axis,
// starting at the origin.
func LinePositions(n int, spacing float64) []Point {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Pt(float64(i)*spacing, 0)
	}
	return pts
}
