package edgearc

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// NewCanvas returns a w×h image filled with the background color.
func NewCanvas(w, h int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r, g, b, a := bg.RGBA()
	px := []uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:], px)
	}
	return img
}

// FitRuns uniformly scales and translates the point runs so that their
// joint bounding box is centered in a w×h canvas with the given margin on
// every side. Runs with no extent are centered unscaled.
func FitRuns(runs [][]Point, w, h int, margin float64) [][]Point {
	var minX, minY, maxX, maxY float64
	first := true
	for _, run := range runs {
		for _, pt := range run {
			if first {
				minX, maxX = pt.X, pt.X
				minY, maxY = pt.Y, pt.Y
				first = false
				continue
			}
			minX = min(minX, pt.X)
			maxX = max(maxX, pt.X)
			minY = min(minY, pt.Y)
			maxY = max(maxY, pt.Y)
		}
	}
	if first {
		return nil
	}

	availW := float64(w) - 2*margin
	availH := float64(h) - 2*margin
	scale := 1.0
	if dx, dy := maxX-minX, maxY-minY; dx > 0 || dy > 0 {
		scale = min(availW/max(dx, 1e-12), availH/max(dy, 1e-12))
	}
	center := Pt(0.5*(minX+maxX), 0.5*(minY+maxY))
	offset := Vec(float64(w)/2, float64(h)/2)

	out := make([][]Point, len(runs))
	for i, run := range runs {
		fitted := make([]Point, len(run))
		for j, pt := range run {
			fitted[j] = Point(pt.Sub(center).Mul(scale).Add(offset))
		}
		out[i] = fitted
	}
	return out
}

// StrokePolyline strokes a point run onto dst with the given line width.
// Each segment is rasterized as a filled quad via x/image/vector; for the
// densely sampled runs this package produces, the joints are visually
// seamless.
func StrokePolyline(dst *image.RGBA, pts []Point, width float64, c color.Color) {
	if len(pts) < 2 {
		return
	}
	b := dst.Bounds()
	ras := vector.NewRasterizer(b.Dx(), b.Dy())
	half := 0.5 * width
	for i := 0; i+1 < len(pts); i++ {
		p0, p1 := pts[i], pts[i+1]
		d := p1.Sub(p0)
		if d.Hypot() == 0 {
			continue
		}
		n := Vec(-d.Y, d.X).Normalize().Mul(half)
		a := p0.Translate(n)
		bb := p1.Translate(n)
		cc := p1.Translate(n.Mul(-1))
		dd := p0.Translate(n.Mul(-1))
		ras.MoveTo(float32(a.X), float32(a.Y))
		ras.LineTo(float32(bb.X), float32(bb.Y))
		ras.LineTo(float32(cc.X), float32(cc.Y))
		ras.LineTo(float32(dd.X), float32(dd.Y))
		ras.ClosePath()
	}
	ras.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// FlattenCubic approximates a control polygon with a polyline, recursively
// subdividing until each piece is colinear within the tolerance. The
// result starts at P0 and ends at P3 exactly.
func FlattenCubic(c CubicBez, tolerance float64) []Point {
	pts := []Point{c.P0}
	var rec func(c CubicBez, depth int)
	rec = func(c CubicBez, depth int) {
		if depth >= 16 || c.IsLinear(tolerance) {
			pts = append(pts, c.P3)
			return
		}
		l, r := c.Subdivide()
		rec(l, depth+1)
		rec(r, depth+1)
	}
	rec(c, 0)
	return pts
}

// StrokeCubic strokes a control polygon onto dst by flattening it first,
// for consumers of raw (unsampled) arc output.
func StrokeCubic(dst *image.RGBA, c CubicBez, tolerance, width float64, col color.Color) {
	StrokePolyline(dst, FlattenCubic(c, tolerance), width, col)
}
