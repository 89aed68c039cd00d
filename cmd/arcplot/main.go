// Command arcplot draws the arc edges of a small demonstration graph to a
// PNG file, and optionally emits the raw control polygons as SVG path
// commands.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"os"

	"honnef.co/go/edgearc"
)

var palette = []color.Color{
	color.RGBA{31, 119, 180, 255},
	color.RGBA{255, 127, 14, 255},
	color.RGBA{44, 160, 44, 255},
	color.RGBA{214, 39, 40, 255},
	color.RGBA{148, 103, 189, 255},
	color.RGBA{140, 86, 75, 255},
}

func main() {
	var (
		nodes     = flag.Int("nodes", 12, "number of nodes")
		stride    = flag.Int("stride", 0, "connect node i to node i+stride (0 picks a near-diameter chord)")
		circular  = flag.Bool("circular", true, "arrange nodes on a ring instead of a line")
		curvature = flag.Float64("curvature", 1, "bend strength for linear layouts")
		fold      = flag.Bool("fold", false, "force linear arcs to bend toward one side")
		samples   = flag.Int("n", 100, "sampled points per edge")
		width     = flag.Int("width", 800, "image width in pixels")
		height    = flag.Int("height", 800, "image height in pixels")
		lineWidth = flag.Float64("linewidth", 2, "stroke width in pixels")
		out       = flag.String("o", "arcs.png", "output PNG file")
		svgOut    = flag.String("svg", "", "also write control polygons as SVG path commands to this file")
	)
	flag.Parse()

	if *nodes < 2 {
		fatal("need at least 2 nodes")
	}
	k := *stride
	if k <= 0 {
		k = *nodes/2 - 1
		if k < 1 {
			k = 1
		}
	}

	var pos []edgearc.Point
	if *circular {
		pos = edgearc.RingPositions(*nodes, 100)
	} else {
		pos = edgearc.LinePositions(*nodes, 20)
	}

	var xs, ys, xend, yend, circ []any
	for i := range pos {
		j := (i + k) % *nodes
		if !*circular && j < i {
			continue // no wrap-around on a line
		}
		xs = append(xs, pos[i].X)
		ys = append(ys, pos[i].Y)
		xend = append(xend, pos[j].X)
		yend = append(yend, pos[j].Y)
		circ = append(circ, *circular)
	}

	tbl, err := edgearc.NewTable(
		edgearc.Column{Name: edgearc.ColX, Values: xs},
		edgearc.Column{Name: edgearc.ColY, Values: ys},
		edgearc.Column{Name: edgearc.ColXEnd, Values: xend},
		edgearc.Column{Name: edgearc.ColYEnd, Values: yend},
		edgearc.Column{Name: edgearc.ColCircular, Values: circ},
	)
	if err != nil {
		fatal(err)
	}

	opts := edgearc.ArcOptions{Curvature: *curvature, Fold: *fold, N: *samples}
	expanded, err := edgearc.ExpandArcs(tbl, opts)
	if err != nil {
		fatal(err)
	}
	runs, err := edgearc.Polylines(expanded)
	if err != nil {
		fatal(err)
	}

	img := edgearc.NewCanvas(*width, *height, color.White)
	for i, run := range edgearc.FitRuns(runs, *width, *height, 40) {
		edgearc.StrokePolyline(img, run, *lineWidth, palette[i%len(palette)])
	}

	f, err := os.Create(*out)
	if err != nil {
		fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		fatal(err)
	}
	if err := f.Close(); err != nil {
		fatal(err)
	}

	if *svgOut != "" {
		raw, err := edgearc.ControlPoints(tbl, opts)
		if err != nil {
			fatal(err)
		}
		cubics, err := edgearc.Cubics(raw)
		if err != nil {
			fatal(err)
		}
		path := edgearc.SVG(cubics, edgearc.SVGOptions{MaxPrecision: 3})
		if err := os.WriteFile(*svgOut, []byte(path+"\n"), 0o644); err != nil {
			fatal(err)
		}
	}
}

func fatal(v any) {
	fmt.Fprintln(os.Stderr, "arcplot:", v)
	os.Exit(1)
}
