package edgearc

import "math"

// CubicBez is the control polygon of a cubic Bézier segment: the true
// endpoints P0 and P3, and the two interior control points P1 and P2.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the curve at parameter t. Generally, t is in the range [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	pm := c.Eval(0.5)
	return CubicBez{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		CubicBez{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// IsNaN reports whether any control point has a NaN coordinate.
func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// IsLinear reports whether all four control points are colinear within the
// given tolerance, i.e. whether the curve degenerates to a straight segment.
func (c CubicBez) IsLinear(tolerance float64) bool {
	d := c.P3.Sub(c.P0)
	if d.Hypot() == 0 {
		return c.P1.Distance(c.P0) <= tolerance && c.P2.Distance(c.P0) <= tolerance
	}
	n := d.Normalize()
	return math.Abs(n.Cross(c.P1.Sub(c.P0))) <= tolerance &&
		math.Abs(n.Cross(c.P2.Sub(c.P0))) <= tolerance
}
