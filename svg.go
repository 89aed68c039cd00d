package edgearc

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent
	// any given coordinate.
	MaxPrecision int
}

// SVG converts control polygons to a string of SVG path commands, one
// move-and-curve pair per polygon.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(polys []CubicBez, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, polys, opts)
	return sb.String()
}

// WriteSVG converts control polygons to SVG path commands and writes them
// to w.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, polys []CubicBez, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		return strings.TrimRight(s, "0")
	}
	for i, c := range polys {
		if i > 0 {
			writef(" ")
		}
		writef("M%s,%s", format(c.P0.X), format(c.P0.Y))
		writef(" C%s,%s %s,%s %s,%s",
			format(c.P1.X), format(c.P1.Y),
			format(c.P2.X), format(c.P2.Y),
			format(c.P3.X), format(c.P3.Y))
	}
	return err
}
