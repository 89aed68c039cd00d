package edgearc

import "math"

// EdgeArc derives the cubic Bézier control polygon for one graph edge.
//
// When circular is true, both endpoints are assumed to lie on a common
// circle centered at the origin. The interior control points are the
// endpoints scaled toward the origin by 1 − d/r, where d is half the chord
// length and r is the distance of end from the origin. The end point's
// radius is used for both factors; with exactly co-circular endpoints the
// two radii agree, and for slightly perturbed input we keep the end-radius
// convention rather than computing them independently. Longer chords bow in
// further. An endpoint at the origin (r = 0) collapses the interior control
// points to the origin. Fold does not apply in circular mode.
//
// When circular is false, the control points sit at distance d from their
// endpoints, rotated away from the edge direction by (π/2)·curvature.
// curvature 0 yields a degenerate straight-line polygon, 1 bends a
// half-circle's worth, and a negative sign flips the bend side. With fold
// set, the control points' y coordinates are replaced by |y|·sign(curvature)
// so that edges drawn in either direction bend toward the same side; x is
// deliberately left untouched.
//
// The endpoints are never perturbed: P0 == start and P3 == end exactly.
// Degenerate input (start == end) yields a zero-length polygon rather than
// an error.
func EdgeArc(start, end Point, circular bool, curvature float64, fold bool) CubicBez {
	if circular {
		d := 0.5 * start.Distance(end)
		r := Vec2(end).Hypot()
		var f float64
		if r != 0 {
			f = 1 - d/r
		}
		return CubicBez{
			P0: start,
			P1: Point(Vec2(start).Mul(f)),
			P2: Point(Vec2(end).Mul(f)),
			P3: end,
		}
	}

	delta := end.Sub(start)
	d := 0.5 * delta.Hypot()
	edgeAngle := delta.Angle()
	bendAngle := 0.5 * math.Pi * curvature
	p1 := start.Translate(VecFromAngle(edgeAngle - bendAngle).Mul(d))
	p2 := end.Translate(VecFromAngle(edgeAngle - math.Pi + bendAngle).Mul(d))
	if fold {
		s := sign(curvature)
		p1.Y = math.Abs(p1.Y) * s
		p2.Y = math.Abs(p2.Y) * s
	}
	return CubicBez{
		P0: start,
		P1: p1,
		P2: p2,
		P3: end,
	}
}

// sign returns -1, 0, or 1 depending on the sign of f.
func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}
