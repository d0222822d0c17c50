// Package vecpath models freeform 2D drawings as paths of lines, Bézier
// curves and elliptical arcs, and provides the geometry needed to edit them
// interactively, stitch them together, fit them to pen input, and exchange
// them as SVG path data.
//
// # Paths, figures and segments
//
// A [Path] is a sequence of [Figure] values. A figure is a single unbroken
// stroke: a start point followed by [Segment] values, optionally closed. A
// segment's start point is implicit; it is the end of the preceding segment.
//
// Segments are a closed set of kinds, see [SegmentKind]: lines, cubic and
// quadratic Béziers, elliptical arcs in SVG endpoint form, and poly runs of
// lines and Béziers. Poly runs are a compact representation of several
// segments of the same kind and are produced by the path data parser for
// long runs of coordinates following one command letter. [Segment.Units]
// breaks them up again.
//
// # Handles
//
// Editors manipulate geometry through handles, points that can be dragged.
// Every stored point of a segment is one handle. End points are exposed as
// is, but Bézier control points are exposed as the point on the curve at a
// fixed parameter ([CubicProxyT1], [CubicProxyT2] and [QuadProxyT]), so that
// the user always drags a point on the rendered curve. Moving such a handle
// solves for the control point that makes the curve pass through the new
// position, see [CubicSolveP1].
//
// [Figure.HandleCount] and [Path.HandleCount] flatten handles into a single
// index space, and [Path.HandleRef] maps an index back to its figure,
// segment and sub-index. A closed figure whose end coincides with its start
// doesn't expose the start as a separate handle.
//
// # Joining and splitting
//
// [Path.Join] and [JoinFigures] stitch figures whose endpoints touch into
// continuous figures, closing them when their ends meet. [Path.Split] is the
// inverse, decomposing a path into one figure per line, curve or arc.
//
// # Path data
//
// [ParsePath] and [FormatPath] convert between paths and the path data
// mini-language of SVG's d attribute. The formatter emits absolute commands
// only, one letter per segment.
//
// # Curve fitting
//
// [FitCubic] and [FitQuad] fit a single Bézier to sampled points with given
// end tangents, using least squares on a chord length parametrization
// ([ChordLengthParams]). [MaxError] measures the result, and [FitCubics]
// subdivides until a tolerance is met.
//
// # Transformations
//
// Geometry is transformed with [Affine]. Transforming an arc recomputes its
// radii and rotation from the image of its ellipse and flips its sweep
// direction if the transformation mirrors.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [An Algorithm for Automatically Fitting Digitized Curves] by Philip J. Schneider
//   - [SVG implementation notes on elliptical arcs]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [An Algorithm for Automatically Fitting Digitized Curves]: https://dl.acm.org/doi/10.5555/90767.90941
// [SVG implementation notes on elliptical arcs]: https://www.w3.org/TR/SVG11/implnote.html#ArcImplementationNotes
package vecpath
