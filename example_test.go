package edgearc_test

import (
	"fmt"

	"honnef.co/go/edgearc"
)

func ExampleExpandArcs() {
	edges, err := edgearc.NewTable(
		edgearc.Column{Name: edgearc.ColX, Values: []any{0.0}},
		edgearc.Column{Name: edgearc.ColY, Values: []any{0.0}},
		edgearc.Column{Name: edgearc.ColXEnd, Values: []any{2.0}},
		edgearc.Column{Name: edgearc.ColYEnd, Values: []any{0.0}},
		edgearc.Column{Name: edgearc.ColCircular, Values: []any{false}},
	)
	if err != nil {
		panic(err)
	}

	out, err := edgearc.ExpandArcs(edges, edgearc.ArcOptions{Curvature: 1, N: 5})
	if err != nil {
		panic(err)
	}

	xs, _ := out.Floats(edgearc.ColX)
	ys, _ := out.Floats(edgearc.ColY)
	index, _ := out.Floats(edgearc.ColIndex)
	for i := range xs {
		fmt.Printf("(%.4f, %.4f) t=%.2f\n", xs[i], ys[i], index[i])
	}

	// Output:
	// (0.0000, 0.0000) t=0.00
	// (0.3125, -0.5625) t=0.25
	// (1.0000, -0.7500) t=0.50
	// (1.6875, -0.5625) t=0.75
	// (2.0000, 0.0000) t=1.00
}

func ExampleEdgeArc() {
	// An edge between two nodes on the unit circle, drawn in circular
	// layout mode: the arc bows inward toward the origin.
	c := edgearc.EdgeArc(edgearc.Pt(1, 0), edgearc.Pt(0, 1), true, 1, false)
	fmt.Println(c.P0, c.P1, c.P2, c.P3)

	// Output:
	// (1, 0) (0.2928932188134524, 0) (0, 0.2928932188134524) (0, 1)
}
