// Package geom2d provides 2D analytic geometry primitives: points, vectors,
// and the shapes rectangle, ellipse, circle, segment and path. Shapes derive
// their bounding boxes, keep their frames normalized, and answer containment,
// distance and intersection queries against each other.
//
// # Plain and observable shapes
//
// Every shape except [Path] comes in two variants with the same behavior. The
// plain variant ([Rectangle], [Ellipse], [Circle], [Segment]) stores its
// coordinates in fields. The observable variant ([ObservableRectangle],
// [ObservableEllipse], [ObservableCircle], [ObservableSegment]) stores them in
// [observable.Value] cells, exposed to callers only as [observable.ReadOnly]
// views so that writes go through the shape. Writing to an observable shape
// notifies its listeners synchronously, before the setter returns, and only
// for cells whose value actually changed. Derived values such as the width of a frame
// are lazy [observable.Binding]s.
//
// The same split exists for [Point] and [Vector] ([ObservablePoint],
// [ObservableVector]). [PointView] and [VectorView] are read-only views that
// keep reflecting the value they were created from.
//
// Observable shapes must not be copied after first use; use their Clone
// methods instead.
//
// # Normalization
//
// Rectangles and ellipses are defined by a frame (minX, minY, maxX, maxY).
// Every setter keeps minX <= maxX and minY <= maxY: setting a bound past the
// opposite one swaps the two, negative widths and heights are clamped to
// zero, and corners may be given in any order. [RectangularShape.Inflate] is
// the only exception and applies its deltas as given. A circle's radius is
// always stored as its absolute value. None of these cases are errors.
//
// # Intersection
//
// [Shape.Intersects] is symmetric for every pair of shape kinds. Rectangles,
// circles and ellipses only intersect if their interiors overlap, and paths
// are treated as filled regions under their [WindingRule] with the same rule
// against those shapes: a rectangle and the outline of its neighbor do not
// intersect. Between segments and paths, touching counts as intersecting.
// Ellipses without area intersect nothing.
//
// # Paths
//
// A [Path] is a sequence of [PathElement] values built with MoveTo, LineTo,
// QuadTo, CubicTo and ClosePath. Every shape can describe its outline as a
// [PathIterator], optionally transformed by an [Affine]. Curves are
// approximated by lines within [DefaultTolerance] for containment, distance
// and intersection queries, using the method described in [Flattening
// quadratic Béziers]. Circles and ellipses are drawn with four cubic Béziers
// as described in [Approximate a circle with cubic Bézier curves].
//
// # Literature
//
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//   - [Distance from a Point to an Ellipse, an Ellipsoid, or a Hyperellipsoid] by David Eberly
//   - [Flattening quadratic Béziers] by Raph Levien
//
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
// [Distance from a Point to an Ellipse, an Ellipsoid, or a Hyperellipsoid]: https://www.geometrictools.com/Documentation/DistancePointEllipseEllipsoid.pdf
// [Flattening quadratic Béziers]: https://raphlinus.github.io/graphics/curves/2019/12/23/flatten-quadbez.html
package geom2d
