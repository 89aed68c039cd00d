package edgearc

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSampleCubicEndpointsExact(t *testing.T) {
	c := EdgeArc(Pt(0.1, 0.2), Pt(7.3, -4.9), false, 0.8, false)
	for _, n := range []int{2, 3, 7, 100} {
		pts := SampleCubic(c, n)
		if len(pts) != n {
			t.Fatalf("got %d points, want %d", len(pts), n)
		}
		// No floating drift allowed at the endpoints.
		if pts[0].Point != c.P0 || pts[0].T != 0 {
			t.Errorf("n=%d: first point = %+v, want %v at t=0", n, pts[0], c.P0)
		}
		if pts[n-1].Point != c.P3 || pts[n-1].T != 1 {
			t.Errorf("n=%d: last point = %+v, want %v at t=1", n, pts[n-1], c.P3)
		}
	}
}

func TestSampleCubicMonotone(t *testing.T) {
	c := EdgeArc(Pt(0, 0), Pt(2, 0), false, 1, false)
	pts := SampleCubic(c, 50)
	for i := 1; i < len(pts); i++ {
		if pts[i].T <= pts[i-1].T {
			t.Fatalf("t not strictly increasing at %d: %g then %g", i, pts[i-1].T, pts[i].T)
		}
	}
}

func TestSampleCubicMatchesEval(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, -1), Pt(4, 0)}
	pts := SampleCubic(c, 11)
	for i, sp := range pts {
		want := c.Eval(float64(i) / 10)
		diff(t, want, sp.Point, cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestSampleCubicDegenerate(t *testing.T) {
	// A zero-length polygon still samples to monotone parameters.
	c := EdgeArc(Pt(1, 1), Pt(1, 1), false, 1, false)
	pts := SampleCubic(c, 5)
	for i, sp := range pts {
		if sp.Point != Pt(1, 1) {
			t.Errorf("point %d = %v, want (1, 1)", i, sp.Point)
		}
		if i > 0 && sp.T <= pts[i-1].T {
			t.Errorf("t not increasing at %d", i)
		}
	}
}

func TestSampleCubicTooFew(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SampleCubic(c, 1) did not panic")
		}
	}()
	SampleCubic(CubicBez{}, 1)
}
