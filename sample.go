package edgearc

// SamplePoint is one vertex of a sampled arc: a position and the normalized
// curve parameter it was evaluated at, 0 at the start endpoint and 1 at the
// end endpoint.
type SamplePoint struct {
	Point
	T float64
}

// SampleCubic evaluates the cubic at n evenly spaced parameter values
// t = i/(n-1) and returns the resulting points in strictly increasing
// parameter order. The first and last points are the polygon's endpoints
// exactly, with no floating point drift.
//
// n must be at least 2; smaller values panic, as the result could not
// contain both endpoints.
func SampleCubic(c CubicBez, n int) []SamplePoint {
	if n < 2 {
		panic("edgearc: SampleCubic needs at least 2 samples")
	}
	pts := make([]SamplePoint, n)
	pts[0] = SamplePoint{Point: c.P0, T: 0}
	for i := 1; i < n-1; i++ {
		t := float64(i) / float64(n-1)
		pts[i] = SamplePoint{Point: c.Eval(t), T: t}
	}
	pts[n-1] = SamplePoint{Point: c.P3, T: 1}
	return pts
}
