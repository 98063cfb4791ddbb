package geom2d

import (
	"fmt"
)

// box is the geometry of an axis-aligned rectangle.
type box struct {
	minX, minY, maxX, maxY float64
}

func (b box) kind() Kind               { return RectangleKind }
func (b box) bounds() box              { return b }
func (b box) windingRule() WindingRule { return NonZero }

func (b box) width() float64  { return b.maxX - b.minX }
func (b box) height() float64 { return b.maxY - b.minY }

func (b box) center() (float64, float64) {
	return (b.minX + b.maxX) / 2, (b.minY + b.maxY) / 2
}

func (b box) contains(x, y float64) bool {
	return x >= b.minX && x <= b.maxX && y >= b.minY && y <= b.maxY
}

// containsBox reports whether o lies inside b. Frames without area neither
// contain nor are contained.
func (b box) containsBox(o box) bool {
	if b.width() <= 0 || b.height() <= 0 || o.width() <= 0 || o.height() <= 0 {
		return false
	}
	return o.minX >= b.minX && o.maxX <= b.maxX && o.minY >= b.minY && o.maxY <= b.maxY
}

func (b box) closest(x, y float64) (float64, float64) {
	return clamp(x, b.minX, b.maxX), clamp(y, b.minY, b.maxY)
}

func (b box) farthest(x, y float64) (float64, float64) {
	cx, cy := b.center()
	fx, fy := b.minX, b.minY
	if x <= cx {
		fx = b.maxX
	}
	if y <= cy {
		fy = b.maxY
	}
	return fx, fy
}

func (b box) appendElements(dst []PathElement) []PathElement {
	var pb pathBuilder
	pb.els = dst
	pb.moveTo(b.minX, b.minY)
	pb.lineTo(b.maxX, b.minY)
	pb.lineTo(b.maxX, b.maxY)
	pb.lineTo(b.minX, b.maxY)
	pb.closePath()
	return pb.els
}

func (b box) coords() []float64 {
	return []float64{b.minX, b.minY, b.maxX, b.maxY}
}

func (b box) equal(o outline) bool {
	ob, ok := o.(box)
	return ok && sameCoords(b.coords(), ob.coords())
}

func (b box) hash() uint64 {
	return hashFloats(tagRectangle, b.minX, b.minY, b.maxX, b.maxY)
}

func (b box) union(o box) box {
	return box{min(b.minX, o.minX), min(b.minY, o.minY), max(b.maxX, o.maxX), max(b.maxY, o.maxY)}
}

// intersection returns the common part of b and o, or the zero box if they
// are disjoint.
func (b box) intersection(o box) box {
	r := box{max(b.minX, o.minX), max(b.minY, o.minY), min(b.maxX, o.maxX), min(b.maxY, o.maxY)}
	if r.minX > r.maxX || r.minY > r.maxY {
		return box{}
	}
	return r
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rect implements the rectangle shape over either kind of frame storage.
type rect[S any, PS framePtr[S]] struct {
	frame[S, PS]
}

func (r *rect[S, PS]) geometry() outline { return r.frameBox() }

func (r *rect[S, PS]) Kind() Kind { return RectangleKind }

func (r *rect[S, PS]) BoundingBox() *Rectangle          { return newBoundingBox(r.frameBox()) }
func (r *rect[S, PS]) BoundingBoxInto(dst *Rectangle)   { boundingBoxInto(r.frameBox(), dst) }
func (r *rect[S, PS]) Contains(x, y float64) bool       { return r.frameBox().contains(x, y) }
func (r *rect[S, PS]) ContainsPoint(p Coords) bool      { return containsPoint(r.frameBox(), p) }
func (r *rect[S, PS]) ContainsRectangle(o Box) bool     { return r.frameBox().containsBox(boxOf(o)) }
func (r *rect[S, PS]) ClosestPointTo(p Coords) Point    { return closestPoint(r.frameBox(), p) }
func (r *rect[S, PS]) Distance(p Coords) float64        { return distanceTo(r.frameBox(), p) }
func (r *rect[S, PS]) DistanceSquared(p Coords) float64 { return distanceSquaredTo(r.frameBox(), p) }
func (r *rect[S, PS]) DistanceL1(p Coords) float64      { return distanceL1To(r.frameBox(), p) }
func (r *rect[S, PS]) DistanceLinf(p Coords) float64    { return distanceLinfTo(r.frameBox(), p) }
func (r *rect[S, PS]) Intersects(o Shape) bool          { return intersectsShape(r.frameBox(), o) }
func (r *rect[S, PS]) IntersectsPath(it PathIterator) bool {
	return intersectsIterator(r.frameBox(), it)
}
func (r *rect[S, PS]) PathIterator(tr *Affine) PathIterator {
	return pathIterator(r.frameBox(), tr)
}
func (r *rect[S, PS]) TransformedShape(tr Affine) *Path { return transformedShape(r.frameBox(), tr) }
func (r *rect[S, PS]) Equal(o Shape) bool               { return shapeEqual(r.frameBox(), o) }
func (r *rect[S, PS]) Hash() uint64                     { return r.frameBox().hash() }

func (r *rect[S, PS]) String() string {
	b := r.frameBox()
	return fmt.Sprintf("Rectangle[(%g, %g), (%g, %g)]", b.minX, b.minY, b.maxX, b.maxY)
}

// FarthestPointTo returns the corner farthest from p.
func (r *rect[S, PS]) FarthestPointTo(p Coords) Point {
	return Pt(r.frameBox().farthest(p.X(), p.Y()))
}

// Area returns the area of the rectangle.
func (r *rect[S, PS]) Area() float64 {
	b := r.frameBox()
	return b.width() * b.height()
}

// Add grows the rectangle so that it contains the point (x, y).
func (r *rect[S, PS]) Add(x, y float64) {
	b := r.frameBox()
	r.store().setBounds(min(b.minX, x), min(b.minY, y), max(b.maxX, x), max(b.maxY, y))
}

// SetUnion grows the rectangle to the union of itself and o.
func (r *rect[S, PS]) SetUnion(o Box) {
	u := r.frameBox().union(boxOf(o))
	r.store().setBounds(u.minX, u.minY, u.maxX, u.maxY)
}

// SetIntersection shrinks the rectangle to its intersection with o. If the
// two are disjoint, the rectangle is cleared.
func (r *rect[S, PS]) SetIntersection(o Box) {
	i := r.frameBox().intersection(boxOf(o))
	r.store().setBounds(i.minX, i.minY, i.maxX, i.maxY)
}

// CreateUnion returns the union of the rectangle and o as a new rectangle.
func (r *rect[S, PS]) CreateUnion(o Box) *Rectangle {
	u := r.frameBox().union(boxOf(o))
	return NewRectangleFromCorners(u.minX, u.minY, u.maxX, u.maxY)
}

// CreateIntersection returns the intersection of the rectangle and o as a
// new rectangle. Disjoint rectangles produce the zero rectangle.
func (r *rect[S, PS]) CreateIntersection(o Box) *Rectangle {
	i := r.frameBox().intersection(boxOf(o))
	return NewRectangleFromCorners(i.minX, i.minY, i.maxX, i.maxY)
}

func (r *rect[S, PS]) IsInf() bool {
	b := r.frameBox()
	return isInf(b.coords()...)
}

func (r *rect[S, PS]) IsNaN() bool {
	b := r.frameBox()
	return isNaN(b.coords()...)
}

// Rectangle is an axis-aligned rectangle stored in plain fields. The zero
// value is the empty rectangle at the origin.
type Rectangle struct {
	rect[plainFrame, *plainFrame]
}

// NewRectangle returns the rectangle spanned by (x, y) and (x+width,
// y+height).
func NewRectangle(x, y, width, height float64) *Rectangle {
	r := &Rectangle{}
	r.setInitiallyFromCorners(x, y, x+width, y+height)
	return r
}

// NewRectangleFromCorners returns the rectangle spanned by two arbitrary
// corners.
func NewRectangleFromCorners(x1, y1, x2, y2 float64) *Rectangle {
	r := &Rectangle{}
	r.setInitiallyFromCorners(x1, y1, x2, y2)
	return r
}

// NewRectangleFromBox returns a rectangle with the frame of b.
func NewRectangleFromBox(b Box) *Rectangle {
	return NewRectangleFromCorners(b.MinX(), b.MinY(), b.MaxX(), b.MaxY())
}

func (r *Rectangle) Clone() *Rectangle {
	c := *r
	return &c
}

// ObservableRectangle is an axis-aligned rectangle whose bounds are
// observable cells. The zero value is the empty rectangle at the origin.
type ObservableRectangle struct {
	rect[observableFrame, *observableFrame]
}

func NewObservableRectangle(x, y, width, height float64) *ObservableRectangle {
	r := &ObservableRectangle{}
	r.setInitiallyFromCorners(x, y, x+width, y+height)
	return r
}

func NewObservableRectangleFromCorners(x1, y1, x2, y2 float64) *ObservableRectangle {
	r := &ObservableRectangle{}
	r.setInitiallyFromCorners(x1, y1, x2, y2)
	return r
}

// Clone returns a new observable rectangle with the same frame and no
// listeners.
func (r *ObservableRectangle) Clone() *ObservableRectangle {
	return NewObservableRectangleFromCorners(r.MinX(), r.MinY(), r.MaxX(), r.MaxY())
}

// Subscribe registers fn to be called after any bound changes.
func (r *ObservableRectangle) Subscribe(fn func()) (cancel func()) {
	return r.s.subscribe(fn)
}

// Properties returns the cells and bindings backing the frame.
func (r *ObservableRectangle) Properties() FrameProperties {
	return r.s.properties()
}
