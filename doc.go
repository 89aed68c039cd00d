// Package edgearc renders the edges of node-link graph drawings as smooth
// arcs instead of straight segments.
//
// The core is a pure control-polygon generator: [EdgeArc] turns one pair
// of endpoint coordinates into the four points of a cubic Bézier, for two
// node arrangements. In a linear layout the arc bends away from the edge
// by an angle proportional to a signed curvature parameter; in a circular
// layout (all nodes on a common circle around the origin) the arc bows
// inward toward the center, proportional to the chord length.
// [SampleCubic] expands a control polygon into evenly parameterized points
// carrying their position along the path.
//
// On top of the geometry sit three record assemblers that transform whole
// edge batches, exchanged as immutable column-oriented [Table] values:
//
//   - [ExpandArcs] consumes one row per edge (start and end inline) and
//     produces sampled points.
//   - [ExpandGroupedArcs] consumes one row per endpoint, paired by a group
//     column, and additionally interpolates numeric styling columns
//     between the two endpoints along each arc.
//   - [ControlPoints] derives the control polygons without sampling, for
//     renderers that stroke Béziers natively.
//
// All three share the same semantics: an optional boolean filter column
// drops edges before group ids are assigned, validation failures reject
// the whole batch, and degenerate geometry (coincident endpoints, a
// circular endpoint at the origin) degrades silently instead of erroring.
//
// The remaining files are downstream collaborators kept deliberately
// small: node placement helpers ([RingPositions], [LinePositions]), an SVG
// path writer ([WriteSVG]), and a raster stroker ([StrokePolyline]) built
// on golang.org/x/image/vector.
package edgearc
