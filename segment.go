package geom2d

import (
	"fmt"
	"math"

	"honnef.co/go/geom2d/observable"
)

// segmentEpsilon is the distance within which a point counts as lying on a
// segment.
const segmentEpsilon = 1e-9

// seg is the geometry of a line segment.
type seg struct {
	x1, y1, x2, y2 float64
}

func (s seg) kind() Kind               { return SegmentKind }
func (s seg) windingRule() WindingRule { return NonZero }

func (s seg) bounds() box {
	return box{min(s.x1, s.x2), min(s.y1, s.y2), max(s.x1, s.x2), max(s.y1, s.y2)}
}

// project returns the parameter in [0, 1] of the point of s closest to
// (x, y).
func (s seg) project(x, y float64) float64 {
	dx, dy := s.x2-s.x1, s.y2-s.y1
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return 0
	}
	return clamp(((x-s.x1)*dx+(y-s.y1)*dy)/l2, 0, 1)
}

func (s seg) at(t float64) (float64, float64) {
	switch t {
	case 0:
		return s.x1, s.y1
	case 1:
		return s.x2, s.y2
	}
	return s.x1 + t*(s.x2-s.x1), s.y1 + t*(s.y2-s.y1)
}

func (s seg) closest(x, y float64) (float64, float64) {
	return s.at(s.project(x, y))
}

func (s seg) distanceSquared(x, y float64) float64 {
	cx, cy := s.closest(x, y)
	return distanceSquared(cx, cy, x, y)
}

func (s seg) contains(x, y float64) bool {
	return s.distanceSquared(x, y) <= segmentEpsilon*segmentEpsilon
}

// containsBox is always false; a segment has no interior.
func (s seg) containsBox(box) bool { return false }

func (s seg) farthest(x, y float64) (float64, float64) {
	if distanceSquared(s.x1, s.y1, x, y) >= distanceSquared(s.x2, s.y2, x, y) {
		return s.x1, s.y1
	}
	return s.x2, s.y2
}

func (s seg) appendElements(dst []PathElement) []PathElement {
	var pb pathBuilder
	pb.els = dst
	pb.moveTo(s.x1, s.y1)
	pb.lineTo(s.x2, s.y2)
	return pb.els
}

func (s seg) coords() []float64 { return []float64{s.x1, s.y1, s.x2, s.y2} }

func (s seg) equal(o outline) bool {
	os, ok := o.(seg)
	return ok && sameCoords(s.coords(), os.coords())
}

func (s seg) hash() uint64 {
	return hashFloats(tagSegment, s.x1, s.y1, s.x2, s.y2)
}

// SegmentReader is read access to a segment.
type SegmentReader interface {
	X1() float64
	Y1() float64
	X2() float64
	Y2() float64
}

var (
	_ SegmentReader = (*Segment)(nil)
	_ SegmentReader = (*ObservableSegment)(nil)
)

type segmentStorage interface {
	points() (x1, y1, x2, y2 float64)
	setPoints(x1, y1, x2, y2 float64)
}

type segmentPtr[S any] interface {
	*S
	segmentStorage
}

type segment[S any, PS segmentPtr[S]] struct {
	s S
}

func (sg *segment[S, PS]) store() PS { return PS(&sg.s) }

func (sg *segment[S, PS]) geom() seg {
	x1, y1, x2, y2 := sg.store().points()
	return seg{x1, y1, x2, y2}
}

func (sg *segment[S, PS]) geometry() outline { return sg.geom() }

func (sg *segment[S, PS]) Kind() Kind { return SegmentKind }

func (sg *segment[S, PS]) X1() float64 { return sg.geom().x1 }
func (sg *segment[S, PS]) Y1() float64 { return sg.geom().y1 }
func (sg *segment[S, PS]) X2() float64 { return sg.geom().x2 }
func (sg *segment[S, PS]) Y2() float64 { return sg.geom().y2 }

func (sg *segment[S, PS]) P1() Point { return Pt(sg.X1(), sg.Y1()) }
func (sg *segment[S, PS]) P2() Point { return Pt(sg.X2(), sg.Y2()) }

func (sg *segment[S, PS]) Set(x1, y1, x2, y2 float64) {
	sg.store().setPoints(x1, y1, x2, y2)
}

func (sg *segment[S, PS]) SetP1(x, y float64) {
	g := sg.geom()
	sg.store().setPoints(x, y, g.x2, g.y2)
}

func (sg *segment[S, PS]) SetP2(x, y float64) {
	g := sg.geom()
	sg.store().setPoints(g.x1, g.y1, x, y)
}

// SetFromShape copies s if it is a segment. For any other shape it uses the
// minimum and the maximum corner of the bounding box of s.
func (sg *segment[S, PS]) SetFromShape(s Shape) {
	switch g := s.geometry().(type) {
	case seg:
		sg.store().setPoints(g.x1, g.y1, g.x2, g.y2)
	default:
		b := g.bounds()
		sg.store().setPoints(b.minX, b.minY, b.maxX, b.maxY)
	}
}

// IsEmpty reports whether both end points coincide.
func (sg *segment[S, PS]) IsEmpty() bool {
	g := sg.geom()
	return g.x1 == g.x2 && g.y1 == g.y2
}

func (sg *segment[S, PS]) Length() float64 {
	return math.Sqrt(sg.LengthSquared())
}

func (sg *segment[S, PS]) LengthSquared() float64 {
	g := sg.geom()
	return distanceSquared(g.x1, g.y1, g.x2, g.y2)
}

// Direction returns the vector from the first to the second point.
func (sg *segment[S, PS]) Direction() Vector {
	g := sg.geom()
	return Vec(g.x2-g.x1, g.y2-g.y1)
}

func (sg *segment[S, PS]) Translate(dx, dy float64) {
	g := sg.geom()
	sg.store().setPoints(g.x1+dx, g.y1+dy, g.x2+dx, g.y2+dy)
}

func (sg *segment[S, PS]) Clear() { sg.store().setPoints(0, 0, 0, 0) }

func (sg *segment[S, PS]) BoundingBox() *Rectangle        { return newBoundingBox(sg.geom()) }
func (sg *segment[S, PS]) BoundingBoxInto(dst *Rectangle) { boundingBoxInto(sg.geom(), dst) }
func (sg *segment[S, PS]) Contains(x, y float64) bool     { return sg.geom().contains(x, y) }
func (sg *segment[S, PS]) ContainsPoint(p Coords) bool    { return containsPoint(sg.geom(), p) }
func (sg *segment[S, PS]) ContainsRectangle(r Box) bool   { return sg.geom().containsBox(boxOf(r)) }
func (sg *segment[S, PS]) ClosestPointTo(p Coords) Point  { return closestPoint(sg.geom(), p) }
func (sg *segment[S, PS]) Distance(p Coords) float64      { return distanceTo(sg.geom(), p) }
func (sg *segment[S, PS]) DistanceSquared(p Coords) float64 {
	return distanceSquaredTo(sg.geom(), p)
}
func (sg *segment[S, PS]) DistanceL1(p Coords) float64   { return distanceL1To(sg.geom(), p) }
func (sg *segment[S, PS]) DistanceLinf(p Coords) float64 { return distanceLinfTo(sg.geom(), p) }
func (sg *segment[S, PS]) Intersects(o Shape) bool       { return intersectsShape(sg.geom(), o) }
func (sg *segment[S, PS]) IntersectsPath(it PathIterator) bool {
	return intersectsIterator(sg.geom(), it)
}
func (sg *segment[S, PS]) PathIterator(tr *Affine) PathIterator { return pathIterator(sg.geom(), tr) }
func (sg *segment[S, PS]) TransformedShape(tr Affine) *Path {
	return transformedShape(sg.geom(), tr)
}
func (sg *segment[S, PS]) Equal(o Shape) bool { return shapeEqual(sg.geom(), o) }
func (sg *segment[S, PS]) Hash() uint64       { return sg.geom().hash() }

func (sg *segment[S, PS]) String() string {
	g := sg.geom()
	return fmt.Sprintf("Segment[(%g, %g), (%g, %g)]", g.x1, g.y1, g.x2, g.y2)
}

// FarthestPointTo returns the end point farthest from p.
func (sg *segment[S, PS]) FarthestPointTo(p Coords) Point {
	return Pt(sg.geom().farthest(p.X(), p.Y()))
}

func (sg *segment[S, PS]) IsInf() bool { return isInf(sg.geom().coords()...) }
func (sg *segment[S, PS]) IsNaN() bool { return isNaN(sg.geom().coords()...) }

type plainSegment struct {
	x1, y1, x2, y2 float64
}

func (s *plainSegment) points() (float64, float64, float64, float64) {
	return s.x1, s.y1, s.x2, s.y2
}

func (s *plainSegment) setPoints(x1, y1, x2, y2 float64) {
	s.x1, s.y1, s.x2, s.y2 = x1, y1, x2, y2
}

type observableSegment struct {
	x1, y1, x2, y2 *observable.Value[float64]
}

func (s *observableSegment) init() {
	if s.x1 != nil {
		return
	}
	s.x1 = observable.NewFloat(0)
	s.y1 = observable.NewFloat(0)
	s.x2 = observable.NewFloat(0)
	s.y2 = observable.NewFloat(0)
}

func (s *observableSegment) points() (float64, float64, float64, float64) {
	s.init()
	return s.x1.Get(), s.y1.Get(), s.x2.Get(), s.y2.Get()
}

func (s *observableSegment) setPoints(x1, y1, x2, y2 float64) {
	s.init()
	s.x1.Set(x1)
	s.y1.Set(y1)
	s.x2.Set(x2)
	s.y2.Set(y2)
}

// Segment is a line segment stored in plain fields. The end points are not
// ordered.
type Segment struct {
	segment[plainSegment, *plainSegment]
}

func NewSegment(x1, y1, x2, y2 float64) *Segment {
	s := &Segment{}
	s.Set(x1, y1, x2, y2)
	return s
}

func (s *Segment) Clone() *Segment {
	c := *s
	return &c
}

// ObservableSegment is a line segment whose end points are observable cells.
type ObservableSegment struct {
	segment[observableSegment, *observableSegment]
}

func NewObservableSegment(x1, y1, x2, y2 float64) *ObservableSegment {
	s := &ObservableSegment{}
	s.Set(x1, y1, x2, y2)
	return s
}

func (s *ObservableSegment) Clone() *ObservableSegment {
	return NewObservableSegment(s.X1(), s.Y1(), s.X2(), s.Y2())
}

func (s *ObservableSegment) Subscribe(fn func()) (cancel func()) {
	s.s.init()
	return observable.SubscribeAll(fn, s.s.x1, s.s.y1, s.s.x2, s.s.y2)
}

// Properties returns read-only views of X1, Y1, X2 and Y2, in that order.
func (s *ObservableSegment) Properties() [4]observable.ReadOnly[float64] {
	s.s.init()
	return [4]observable.ReadOnly[float64]{
		s.s.x1.ReadOnly(), s.s.y1.ReadOnly(), s.s.x2.ReadOnly(), s.s.y2.ReadOnly(),
	}
}
