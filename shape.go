package geom2d

import (
	"fmt"
	"math"
)

// Kind identifies the concrete kind of a shape. The set of kinds is closed;
// intersection tests dispatch on the pair of kinds involved.
type Kind int

const (
	RectangleKind Kind = iota + 1
	EllipseKind
	CircleKind
	SegmentKind
	PathKind
)

func (k Kind) String() string {
	switch k {
	case RectangleKind:
		return "rectangle"
	case EllipseKind:
		return "ellipse"
	case CircleKind:
		return "circle"
	case SegmentKind:
		return "segment"
	case PathKind:
		return "path"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is the capability set shared by every shape in this package, whether
// its coordinates are stored in plain fields or in observable cells.
//
// Shape cannot be implemented outside this package.
type Shape interface {
	Kind() Kind

	// BoundingBox returns a new rectangle tightly enclosing the shape.
	BoundingBox() *Rectangle
	// BoundingBoxInto stores the bounding box in box instead of allocating
	// a new rectangle.
	BoundingBoxInto(box *Rectangle)

	IsEmpty() bool

	// Contains reports whether the point (x, y) is inside the shape.
	Contains(x, y float64) bool
	ContainsPoint(p Coords) bool
	// ContainsRectangle reports whether r lies entirely inside the shape.
	ContainsRectangle(r Box) bool

	// ClosestPointTo returns the point of the shape nearest to p. For
	// points inside the shape that is p itself.
	ClosestPointTo(p Coords) Point
	Distance(p Coords) float64
	DistanceSquared(p Coords) float64
	// DistanceL1 returns |dx|+|dy| between p and ClosestPointTo(p).
	DistanceL1(p Coords) float64
	// DistanceLinf returns max(|dx|, |dy|) between p and ClosestPointTo(p).
	DistanceLinf(p Coords) float64

	Translate(dx, dy float64)

	// Intersects reports whether the two shapes overlap. It is symmetric:
	// a.Intersects(b) == b.Intersects(a).
	Intersects(o Shape) bool
	// IntersectsPath consumes it and reports whether the path it describes
	// overlaps the shape. It panics if it fails to produce an element.
	IntersectsPath(it PathIterator) bool

	// PathIterator returns a new iterator over the outline of the shape,
	// transformed by tr. A nil tr means no transformation.
	PathIterator(tr *Affine) PathIterator
	// TransformedShape returns the image of the shape under tr as a new path.
	TransformedShape(tr Affine) *Path

	// Clear resets the shape to its zero state.
	Clear()

	// Equal reports whether o is a shape of the same kind with bit-identical
	// defining coordinates, treating 0 and -0 as equal.
	Equal(o Shape) bool
	// Hash returns a hash consistent with Equal.
	Hash() uint64

	String() string

	geometry() outline
}

// Box is read access to an axis-aligned frame.
type Box interface {
	MinX() float64
	MinY() float64
	MaxX() float64
	MaxY() float64
}

var (
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*ObservableRectangle)(nil)
	_ Shape = (*Ellipse)(nil)
	_ Shape = (*ObservableEllipse)(nil)
	_ Shape = (*Circle)(nil)
	_ Shape = (*ObservableCircle)(nil)
	_ Shape = (*Segment)(nil)
	_ Shape = (*ObservableSegment)(nil)
	_ Shape = (*Path)(nil)
)

// outline is a value snapshot of a shape's geometry. All geometric
// algorithms operate on outlines so that they are shared between the plain
// and the observable variant of a shape.
type outline interface {
	kind() Kind
	bounds() box
	contains(x, y float64) bool
	containsBox(b box) bool
	closest(x, y float64) (float64, float64)
	// appendElements appends the path elements of the outline to dst.
	appendElements(dst []PathElement) []PathElement
	windingRule() WindingRule
	equal(o outline) bool
	hash() uint64
}

func boxOf(b Box) box {
	return box{b.MinX(), b.MinY(), b.MaxX(), b.MaxY()}
}

// The functions below implement the parts of the Shape contract that are
// derived from an outline.

func containsPoint(g outline, p Coords) bool {
	return g.contains(p.X(), p.Y())
}

func closestPoint(g outline, p Coords) Point {
	x, y := g.closest(p.X(), p.Y())
	return Pt(x, y)
}

func distanceTo(g outline, p Coords) float64 {
	return math.Sqrt(distanceSquaredTo(g, p))
}

func distanceSquaredTo(g outline, p Coords) float64 {
	x, y := g.closest(p.X(), p.Y())
	return distanceSquared(x, y, p.X(), p.Y())
}

func distanceL1To(g outline, p Coords) float64 {
	x, y := g.closest(p.X(), p.Y())
	return distanceL1(x, y, p.X(), p.Y())
}

func distanceLinfTo(g outline, p Coords) float64 {
	x, y := g.closest(p.X(), p.Y())
	return distanceLinf(x, y, p.X(), p.Y())
}

func boundingBoxInto(g outline, dst *Rectangle) {
	b := g.bounds()
	dst.setInitiallyFromCorners(b.minX, b.minY, b.maxX, b.maxY)
}

func newBoundingBox(g outline) *Rectangle {
	r := &Rectangle{}
	boundingBoxInto(g, r)
	return r
}

func pathIterator(g outline, tr *Affine) PathIterator {
	return newElementIterator(g.appendElements(nil), g.windingRule(), tr)
}

func transformedShape(g outline, tr Affine) *Path {
	return mustPath(pathIterator(g, &tr))
}

func shapeEqual(g outline, o Shape) bool {
	if o == nil {
		return false
	}
	return g.equal(o.geometry())
}

func intersectsIterator(g outline, it PathIterator) bool {
	return intersects(g, mustPath(it).geometry())
}

func intersectsShape(g outline, o Shape) bool {
	if o == nil {
		return false
	}
	return intersects(g, o.geometry())
}
