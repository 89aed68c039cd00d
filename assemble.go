package edgearc

import (
	"fmt"
	"slices"
	"sort"
)

// Column names recognized by the assemblers.
const (
	ColX        = "x"
	ColY        = "y"
	ColXEnd     = "xend"
	ColYEnd     = "yend"
	ColCircular = "circular"
	ColFilter   = "filter"
	ColGroup    = "group"
	ColIndex    = "index"
)

// DefaultSampleCount is the number of points an arc is expanded to when
// [ArcOptions.N] is left zero.
const DefaultSampleCount = 100

// ArcOptions configures the record assemblers.
//
// The zero value draws straight, unfolded edges at the default sample
// count; use [DefaultArcOptions] for the conventional bend of 1.
type ArcOptions struct {
	// Curvature is the signed bend strength for non-circular edges. 0 is a
	// straight line, 1 bends a half-circle's worth, negative values flip
	// the bend side.
	Curvature float64
	// Fold forces non-circular arcs to bend toward one vertical side
	// regardless of edge direction.
	Fold bool
	// N is the number of sampled points per edge. 0 means
	// [DefaultSampleCount]; values below 2 are rejected.
	N int
}

// DefaultArcOptions returns the conventional options: curvature 1, no
// fold, [DefaultSampleCount] samples.
func DefaultArcOptions() ArcOptions {
	return ArcOptions{Curvature: 1, N: DefaultSampleCount}
}

// ExpandArcs turns a table of edges into a table of sampled arc points.
//
// The input carries one row per edge with columns x, y, xend, yend and
// circular, an optional boolean filter column, and any number of
// passthrough styling columns. Rows whose filter cell is false are dropped
// before anything else happens, so they never influence group numbering.
// Each surviving edge gets a dense group id equal to its position among
// survivors, its control polygon from [EdgeArc], and n sampled points from
// [SampleCubic].
//
// The output has one row per sampled point, edge-major and in increasing
// parameter order within each edge: columns x, y, group, index (the
// normalized position along the arc, 0 at the start and 1 at the end), and
// every passthrough column copied from the edge's row.
func ExpandArcs(t *Table, opts ArcOptions) (*Table, error) {
	n, err := sampleCount(opts)
	if err != nil {
		return nil, err
	}
	edges, pass, err := pairedEdges(t)
	if err != nil {
		return nil, err
	}

	rows := len(edges) * n
	xs := make([]any, 0, rows)
	ys := make([]any, 0, rows)
	groups := make([]any, 0, rows)
	index := make([]any, 0, rows)
	passCells := make([][]any, len(pass))
	for k, e := range edges {
		poly := EdgeArc(e.start, e.end, e.circular, opts.Curvature, opts.Fold)
		for _, sp := range SampleCubic(poly, n) {
			xs = append(xs, sp.X)
			ys = append(ys, sp.Y)
			groups = append(groups, k)
			index = append(index, sp.T)
			for i, name := range pass {
				passCells[i] = append(passCells[i], t.Column(name)[e.row])
			}
		}
	}

	cols := []Column{
		{Name: ColX, Values: xs},
		{Name: ColY, Values: ys},
		{Name: ColGroup, Values: groups},
		{Name: ColIndex, Values: index},
	}
	for i, name := range pass {
		cols = append(cols, Column{Name: name, Values: passCells[i]})
	}
	return NewTable(cols...)
}

// ControlPoints derives control polygons for a table of edges without
// sampling them, for callers that hand cubics to a Bézier-capable renderer
// directly. Input shape, filtering and group assignment match [ExpandArcs].
//
// The output has exactly 4 rows per surviving edge, ordered P0, P1, P2,
// P3: columns x, y, group and the passthrough columns. No index column is
// computed.
func ControlPoints(t *Table, opts ArcOptions) (*Table, error) {
	edges, pass, err := pairedEdges(t)
	if err != nil {
		return nil, err
	}

	rows := len(edges) * 4
	xs := make([]any, 0, rows)
	ys := make([]any, 0, rows)
	groups := make([]any, 0, rows)
	passCells := make([][]any, len(pass))
	for k, e := range edges {
		poly := EdgeArc(e.start, e.end, e.circular, opts.Curvature, opts.Fold)
		for _, pt := range [4]Point{poly.P0, poly.P1, poly.P2, poly.P3} {
			xs = append(xs, pt.X)
			ys = append(ys, pt.Y)
			groups = append(groups, k)
			for i, name := range pass {
				passCells[i] = append(passCells[i], t.Column(name)[e.row])
			}
		}
	}

	cols := []Column{
		{Name: ColX, Values: xs},
		{Name: ColY, Values: ys},
		{Name: ColGroup, Values: groups},
	}
	for i, name := range pass {
		cols = append(cols, Column{Name: name, Values: passCells[i]})
	}
	return NewTable(cols...)
}

// ExpandGroupedArcs is [ExpandArcs] for input that carries one row per
// endpoint instead of one row per edge: columns x, y, circular and group,
// with exactly two rows per group value. Rows are stably sorted by group;
// within each group the first row is the start and the second the end of
// the edge.
//
// Unlike [ExpandArcs], the pre-existing group values survive into the
// output, and passthrough columns may differ between the two endpoint
// rows: numeric columns are linearly interpolated along the arc, all other
// columns take the start row's value for every sampled point.
func ExpandGroupedArcs(t *Table, opts ArcOptions) (*Table, error) {
	n, err := sampleCount(opts)
	if err != nil {
		return nil, err
	}
	xs, err := t.Floats(ColX)
	if err != nil {
		return nil, err
	}
	ys, err := t.Floats(ColY)
	if err != nil {
		return nil, err
	}
	circular, err := t.Bools(ColCircular)
	if err != nil {
		return nil, err
	}
	keys := t.Column(ColGroup)
	if keys == nil {
		return nil, fmt.Errorf("column %q: %w", ColGroup, ErrMissingColumn)
	}
	keep, err := filterMask(t)
	if err != nil {
		return nil, err
	}

	var rows []int
	for i := 0; i < t.Len(); i++ {
		if keep[i] {
			rows = append(rows, i)
		}
	}
	if err := checkGroupKeys(keys, rows); err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return lessKey(keys[rows[i]], keys[rows[j]])
	})
	if len(rows)%2 != 0 {
		return nil, fmt.Errorf("%d endpoint rows survive filtering, want an even number: %w",
			len(rows), ErrGroupPairing)
	}

	pass := passthrough(t, ColX, ColY, ColCircular, ColFilter, ColGroup)
	numeric := make([]bool, len(pass))
	for i, name := range pass {
		numeric[i] = numericColumn(t.Column(name), rows)
	}

	outRows := len(rows) / 2 * n
	outX := make([]any, 0, outRows)
	outY := make([]any, 0, outRows)
	outGroup := make([]any, 0, outRows)
	outIndex := make([]any, 0, outRows)
	passCells := make([][]any, len(pass))
	for k := 0; k+1 < len(rows); k += 2 {
		a, b := rows[k], rows[k+1]
		if !sameKey(keys[a], keys[b]) {
			return nil, fmt.Errorf("group %v is not paired with a second endpoint row: %w",
				keys[a], ErrGroupPairing)
		}
		if k+2 < len(rows) && sameKey(keys[rows[k+2]], keys[a]) {
			return nil, fmt.Errorf("group %v has more than two endpoint rows: %w",
				keys[a], ErrGroupPairing)
		}
		poly := EdgeArc(Pt(xs[a], ys[a]), Pt(xs[b], ys[b]), circular[a], opts.Curvature, opts.Fold)
		for _, sp := range SampleCubic(poly, n) {
			outX = append(outX, sp.X)
			outY = append(outY, sp.Y)
			outGroup = append(outGroup, keys[a])
			outIndex = append(outIndex, sp.T)
			for i, name := range pass {
				col := t.Column(name)
				if numeric[i] {
					va, _ := asFloat(col[a])
					vb, _ := asFloat(col[b])
					passCells[i] = append(passCells[i], va+(vb-va)*sp.T)
				} else {
					passCells[i] = append(passCells[i], col[a])
				}
			}
		}
	}

	cols := []Column{
		{Name: ColX, Values: outX},
		{Name: ColY, Values: outY},
		{Name: ColGroup, Values: outGroup},
		{Name: ColIndex, Values: outIndex},
	}
	for i, name := range pass {
		cols = append(cols, Column{Name: name, Values: passCells[i]})
	}
	return NewTable(cols...)
}

// Polylines splits a sampled output table back into one point run per
// edge, in draw order. Runs break where the group column changes.
func Polylines(t *Table) ([][]Point, error) {
	xs, err := t.Floats(ColX)
	if err != nil {
		return nil, err
	}
	ys, err := t.Floats(ColY)
	if err != nil {
		return nil, err
	}
	groups := t.Column(ColGroup)
	if groups == nil {
		return nil, fmt.Errorf("column %q: %w", ColGroup, ErrMissingColumn)
	}

	var out [][]Point
	var run []Point
	for i := range xs {
		if i > 0 && groups[i] != groups[i-1] {
			out = append(out, run)
			run = nil
		}
		run = append(run, Pt(xs[i], ys[i]))
	}
	if run != nil {
		out = append(out, run)
	}
	return out, nil
}

// Cubics reassembles the output of [ControlPoints] into control polygons,
// one per group of four consecutive rows.
func Cubics(t *Table) ([]CubicBez, error) {
	xs, err := t.Floats(ColX)
	if err != nil {
		return nil, err
	}
	ys, err := t.Floats(ColY)
	if err != nil {
		return nil, err
	}
	if len(xs)%4 != 0 {
		return nil, fmt.Errorf("table has %d rows, want a multiple of 4: %w",
			len(xs), ErrColumnLength)
	}

	out := make([]CubicBez, 0, len(xs)/4)
	for i := 0; i < len(xs); i += 4 {
		out = append(out, CubicBez{
			P0: Pt(xs[i], ys[i]),
			P1: Pt(xs[i+1], ys[i+1]),
			P2: Pt(xs[i+2], ys[i+2]),
			P3: Pt(xs[i+3], ys[i+3]),
		})
	}
	return out, nil
}

type pairedEdge struct {
	start    Point
	end      Point
	circular bool
	row      int
}

// pairedEdges validates and filters an edge-per-row input table. Filtering
// runs before group assignment, so dropped edges never occupy a group id.
func pairedEdges(t *Table) ([]pairedEdge, []string, error) {
	xs, err := t.Floats(ColX)
	if err != nil {
		return nil, nil, err
	}
	ys, err := t.Floats(ColY)
	if err != nil {
		return nil, nil, err
	}
	xend, err := t.Floats(ColXEnd)
	if err != nil {
		return nil, nil, err
	}
	yend, err := t.Floats(ColYEnd)
	if err != nil {
		return nil, nil, err
	}
	circular, err := t.Bools(ColCircular)
	if err != nil {
		return nil, nil, err
	}
	keep, err := filterMask(t)
	if err != nil {
		return nil, nil, err
	}

	var edges []pairedEdge
	for i := 0; i < t.Len(); i++ {
		if !keep[i] {
			continue
		}
		edges = append(edges, pairedEdge{
			start:    Pt(xs[i], ys[i]),
			end:      Pt(xend[i], yend[i]),
			circular: circular[i],
			row:      i,
		})
	}
	return edges, passthrough(t, ColX, ColY, ColXEnd, ColYEnd, ColCircular, ColFilter), nil
}

// filterMask evaluates the optional filter column. A missing column keeps
// every row; a present but non-boolean one fails the whole batch.
func filterMask(t *Table) ([]bool, error) {
	if !t.Has(ColFilter) {
		keep := make([]bool, t.Len())
		for i := range keep {
			keep[i] = true
		}
		return keep, nil
	}
	return t.Bools(ColFilter)
}

// passthrough returns the column names that are carried to the output
// unchanged, preserving input order.
func passthrough(t *Table, exclude ...string) []string {
	var out []string
	for _, name := range t.Names() {
		if !slices.Contains(exclude, name) {
			out = append(out, name)
		}
	}
	return out
}

func sampleCount(opts ArcOptions) (int, error) {
	n := opts.N
	if n == 0 {
		n = DefaultSampleCount
	}
	if n < 2 {
		return 0, fmt.Errorf("n = %d, need at least 2 samples per edge: %w", n, ErrSampleCount)
	}
	return n, nil
}

// numericColumn reports whether every cell of col in the given rows holds a
// number, making the column eligible for interpolation along the arc.
func numericColumn(col []any, rows []int) bool {
	for _, i := range rows {
		if _, ok := asFloat(col[i]); !ok {
			return false
		}
	}
	return true
}

// checkGroupKeys validates that group keys are of a single, orderable kind.
func checkGroupKeys(keys []any, rows []int) error {
	var kind int // 0 unset, 1 numeric, 2 string
	for _, i := range rows {
		var k int
		if _, ok := asFloat(keys[i]); ok {
			k = 1
		} else if _, ok := keys[i].(string); ok {
			k = 2
		} else {
			return fmt.Errorf("column %q, row %d: got %T, want a number or string: %w",
				ColGroup, i, keys[i], ErrColumnType)
		}
		if kind == 0 {
			kind = k
		} else if kind != k {
			return fmt.Errorf("column %q mixes numeric and string keys: %w",
				ColGroup, ErrColumnType)
		}
	}
	return nil
}

func lessKey(a, b any) bool {
	if as, ok := a.(string); ok {
		bs, _ := b.(string)
		return as < bs
	}
	af, _ := asFloat(a)
	bf, _ := asFloat(b)
	return af < bf
}

// sameKey reports whether two group keys are equal under the ordering that
// sorts the endpoint rows. Numeric keys compare by value, so differing
// widths of the same number pair up.
func sameKey(a, b any) bool {
	return !lessKey(a, b) && !lessKey(b, a)
}
