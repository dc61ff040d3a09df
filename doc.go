// Package centerline converts traced centerlines into compact cubic Bézier
// paths and turns variable-width strokes into closed outlines.
//
// A tracer (see [Tracer]) produces an [Image] of stroke paths: chains of
// knots, each with an anchor, two tangent handles, and the width, opacity
// and color of the stroke at that point. Processing happens in two passes.
//
// [Approximate] replaces runs of segments by single cubics for as long as
// the fit stays within tolerance, never merging across corners.
//
// [Outline] replaces a stroke by the closed fill path of its outline. Both
// sides of every segment are fitted to the envelope of the stroke's varying
// radius, and neighboring pieces are joined at their intersection or with
// round arcs. Strokes that are a single point become circles.
//
// Both passes are built on [FitTangentLengths], which fits a cubic with
// fixed anchors and tangent directions to a set of samples, solving for the
// handle lengths with linear least squares (see [LeastSquares]). Outlining
// additionally relies on [Intersect], which finds intersections of cubic
// Béziers by recursive subdivision.
//
// # Numerical failure
//
// Fitting and intersection are iterative and bounded. Failure to converge is
// reported as a boolean and handled by subdividing the input and trying
// again. Errors are reserved for malformed input, which is rejected before
// any geometry is computed (see [Path.Validate] and [Config.Validate]).
//
// # Coordinates
//
// Coordinates are in image space. Orientation-sensitive helpers describe
// directions as counter-clockwise in a y-up coordinate system; in y-down
// image space that is clockwise.
package centerline
