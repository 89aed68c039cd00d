package edgearc

import "testing"

func TestSVG(t *testing.T) {
	polys := []CubicBez{
		{Pt(0, 0), Pt(0, -1), Pt(2, -1), Pt(2, 0)},
		{Pt(3, 4), Pt(3.5, 4), Pt(4, 4.5), Pt(4, 5)},
	}
	got := SVG(polys, SVGOptions{})
	want := "M0,0 C0,-1 2,-1 2,0 M3,4 C3.5,4 4,4.5 4,5"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSVGMaxPrecision(t *testing.T) {
	polys := []CubicBez{
		{Pt(1.0/3.0, 0), Pt(0, 0), Pt(0, 0), Pt(1, 1)},
	}
	got := SVG(polys, SVGOptions{MaxPrecision: 3})
	want := "M0.333,0. C0.,0. 0.,0. 1.,1."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
