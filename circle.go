package geom2d

import (
	"fmt"
	"math"

	"honnef.co/go/geom2d/observable"
)

// disc is the geometry of a circle.
type disc struct {
	cx, cy, r float64
}

func (d disc) kind() Kind               { return CircleKind }
func (d disc) windingRule() WindingRule { return NonZero }

func (d disc) bounds() box {
	return box{d.cx - d.r, d.cy - d.r, d.cx + d.r, d.cy + d.r}
}

func (d disc) contains(x, y float64) bool {
	return distanceSquared(x, y, d.cx, d.cy) <= d.r*d.r
}

func (d disc) containsBox(b box) bool {
	return d.contains(b.farthest(d.cx, d.cy))
}

func (d disc) closest(x, y float64) (float64, float64) {
	dist := math.Sqrt(distanceSquared(x, y, d.cx, d.cy))
	if dist <= d.r {
		return x, y
	}
	s := d.r / dist
	return d.cx + (x-d.cx)*s, d.cy + (y-d.cy)*s
}

func (d disc) farthest(x, y float64) (float64, float64) {
	dist := math.Sqrt(distanceSquared(x, y, d.cx, d.cy))
	if dist == 0 {
		return d.cx + d.r, d.cy
	}
	s := d.r / dist
	return d.cx - (x-d.cx)*s, d.cy - (y-d.cy)*s
}

func (d disc) appendElements(dst []PathElement) []PathElement {
	return appendEllipseArcs(dst, d.cx, d.cy, d.r, d.r)
}

func (d disc) equal(o outline) bool {
	od, ok := o.(disc)
	return ok && sameCoords([]float64{d.cx, d.cy, d.r}, []float64{od.cx, od.cy, od.r})
}

func (d disc) hash() uint64 {
	return hashFloats(tagCircle, d.cx, d.cy, d.r)
}

// CircleReader is read access to a circle.
type CircleReader interface {
	CenterX() float64
	CenterY() float64
	Radius() float64
}

var (
	_ CircleReader = (*Circle)(nil)
	_ CircleReader = (*ObservableCircle)(nil)
)

type circleStorage interface {
	circle() (cx, cy, r float64)
	setCircle(cx, cy, r float64)
}

type circlePtr[S any] interface {
	*S
	circleStorage
}

// circle implements the circle shape over either kind of storage.
type circle[S any, PS circlePtr[S]] struct {
	s S
}

func (c *circle[S, PS]) store() PS { return PS(&c.s) }

func (c *circle[S, PS]) geom() disc {
	cx, cy, r := c.store().circle()
	return disc{cx, cy, r}
}

func (c *circle[S, PS]) geometry() outline { return c.geom() }

func (c *circle[S, PS]) Kind() Kind { return CircleKind }

func (c *circle[S, PS]) CenterX() float64 { return c.geom().cx }
func (c *circle[S, PS]) CenterY() float64 { return c.geom().cy }
func (c *circle[S, PS]) Radius() float64  { return c.geom().r }

func (c *circle[S, PS]) Center() Point {
	d := c.geom()
	return Pt(d.cx, d.cy)
}

// Set sets the center and the radius. The sign of radius is discarded.
func (c *circle[S, PS]) Set(x, y, radius float64) {
	c.store().setCircle(x, y, math.Abs(radius))
}

func (c *circle[S, PS]) SetCenter(x, y float64) {
	c.store().setCircle(x, y, c.geom().r)
}

// SetRadius sets the radius to |radius|.
func (c *circle[S, PS]) SetRadius(radius float64) {
	d := c.geom()
	c.store().setCircle(d.cx, d.cy, math.Abs(radius))
}

// SetFromShape copies s if it is a circle. For any other shape it sets the
// largest circle inscribed in the bounding box of s.
func (c *circle[S, PS]) SetFromShape(s Shape) {
	switch g := s.geometry().(type) {
	case disc:
		c.store().setCircle(g.cx, g.cy, g.r)
	default:
		b := g.bounds()
		cx, cy := b.center()
		c.store().setCircle(cx, cy, min(b.width(), b.height())/2)
	}
}

// IsEmpty reports whether the radius is zero.
func (c *circle[S, PS]) IsEmpty() bool { return c.geom().r <= 0 }

func (c *circle[S, PS]) Translate(dx, dy float64) {
	d := c.geom()
	c.store().setCircle(d.cx+dx, d.cy+dy, d.r)
}

func (c *circle[S, PS]) Clear() { c.store().setCircle(0, 0, 0) }

func (c *circle[S, PS]) BoundingBox() *Rectangle        { return newBoundingBox(c.geom()) }
func (c *circle[S, PS]) BoundingBoxInto(dst *Rectangle) { boundingBoxInto(c.geom(), dst) }
func (c *circle[S, PS]) Contains(x, y float64) bool     { return c.geom().contains(x, y) }
func (c *circle[S, PS]) ContainsPoint(p Coords) bool    { return containsPoint(c.geom(), p) }
func (c *circle[S, PS]) ContainsRectangle(r Box) bool   { return c.geom().containsBox(boxOf(r)) }
func (c *circle[S, PS]) ClosestPointTo(p Coords) Point  { return closestPoint(c.geom(), p) }
func (c *circle[S, PS]) Distance(p Coords) float64      { return distanceTo(c.geom(), p) }
func (c *circle[S, PS]) DistanceSquared(p Coords) float64 {
	return distanceSquaredTo(c.geom(), p)
}
func (c *circle[S, PS]) DistanceL1(p Coords) float64   { return distanceL1To(c.geom(), p) }
func (c *circle[S, PS]) DistanceLinf(p Coords) float64 { return distanceLinfTo(c.geom(), p) }
func (c *circle[S, PS]) Intersects(o Shape) bool       { return intersectsShape(c.geom(), o) }
func (c *circle[S, PS]) IntersectsPath(it PathIterator) bool {
	return intersectsIterator(c.geom(), it)
}
func (c *circle[S, PS]) PathIterator(tr *Affine) PathIterator { return pathIterator(c.geom(), tr) }
func (c *circle[S, PS]) TransformedShape(tr Affine) *Path     { return transformedShape(c.geom(), tr) }
func (c *circle[S, PS]) Equal(o Shape) bool                   { return shapeEqual(c.geom(), o) }
func (c *circle[S, PS]) Hash() uint64                         { return c.geom().hash() }

func (c *circle[S, PS]) String() string {
	d := c.geom()
	return fmt.Sprintf("Circle[(%g, %g), %g]", d.cx, d.cy, d.r)
}

// FarthestPointTo returns the point of the circle farthest from p.
func (c *circle[S, PS]) FarthestPointTo(p Coords) Point {
	return Pt(c.geom().farthest(p.X(), p.Y()))
}

func (c *circle[S, PS]) Area() float64 {
	r := c.geom().r
	return math.Pi * r * r
}

func (c *circle[S, PS]) Perimeter() float64 {
	return 2 * math.Pi * c.geom().r
}

func (c *circle[S, PS]) IsInf() bool {
	d := c.geom()
	return isInf(d.cx, d.cy, d.r)
}

func (c *circle[S, PS]) IsNaN() bool {
	d := c.geom()
	return isNaN(d.cx, d.cy, d.r)
}

type plainCircle struct {
	cx, cy, r float64
}

func (c *plainCircle) circle() (float64, float64, float64) { return c.cx, c.cy, c.r }
func (c *plainCircle) setCircle(cx, cy, r float64)         { c.cx, c.cy, c.r = cx, cy, r }

type observableCircle struct {
	cx, cy, r *observable.Value[float64]
}

func (c *observableCircle) init() {
	if c.cx != nil {
		return
	}
	c.cx = observable.NewFloat(0)
	c.cy = observable.NewFloat(0)
	c.r = observable.NewFloat(0)
}

func (c *observableCircle) circle() (float64, float64, float64) {
	c.init()
	return c.cx.Get(), c.cy.Get(), c.r.Get()
}

func (c *observableCircle) setCircle(cx, cy, r float64) {
	c.init()
	c.cx.Set(cx)
	c.cy.Set(cy)
	c.r.Set(r)
}

// Circle is a circle stored in plain fields. The zero value is the empty
// circle at the origin.
type Circle struct {
	circle[plainCircle, *plainCircle]
}

// NewCircle returns the circle centered on (x, y) with radius |radius|.
func NewCircle(x, y, radius float64) *Circle {
	c := &Circle{}
	c.Set(x, y, radius)
	return c
}

func (c *Circle) Clone() *Circle {
	cc := *c
	return &cc
}

// ObservableCircle is a circle whose center and radius are observable cells.
type ObservableCircle struct {
	circle[observableCircle, *observableCircle]
}

func NewObservableCircle(x, y, radius float64) *ObservableCircle {
	c := &ObservableCircle{}
	c.Set(x, y, radius)
	return c
}

func (c *ObservableCircle) Clone() *ObservableCircle {
	return NewObservableCircle(c.CenterX(), c.CenterY(), c.Radius())
}

func (c *ObservableCircle) Subscribe(fn func()) (cancel func()) {
	c.s.init()
	return observable.SubscribeAll(fn, c.s.cx, c.s.cy, c.s.r)
}

// CenterXProperty returns a read-only view of the x coordinate of the center.
func (c *ObservableCircle) CenterXProperty() observable.ReadOnly[float64] {
	c.s.init()
	return c.s.cx.ReadOnly()
}

func (c *ObservableCircle) CenterYProperty() observable.ReadOnly[float64] {
	c.s.init()
	return c.s.cy.ReadOnly()
}

// RadiusProperty returns a read-only view of the radius. The radius only
// changes through SetRadius and Set, which keep it non-negative.
func (c *ObservableCircle) RadiusProperty() observable.ReadOnly[float64] {
	c.s.init()
	return c.s.r.ReadOnly()
}
