package geom2d

import (
	"fmt"
	"math"
)

// oval is the geometry of an axis-aligned ellipse inscribed in a frame.
type oval struct {
	minX, minY, maxX, maxY float64
}

func (o oval) kind() Kind               { return EllipseKind }
func (o oval) bounds() box              { return box(o) }
func (o oval) windingRule() WindingRule { return NonZero }

func (o oval) radii() (float64, float64) {
	return (o.maxX - o.minX) / 2, (o.maxY - o.minY) / 2
}

func (o oval) center() (float64, float64) {
	return (o.minX + o.maxX) / 2, (o.minY + o.maxY) / 2
}

// degenerate reports whether the ellipse has no area. Degenerate ellipses
// contain and intersect nothing.
func (o oval) degenerate() bool {
	return o.maxX-o.minX <= 0 || o.maxY-o.minY <= 0
}

func (o oval) contains(x, y float64) bool {
	if o.degenerate() {
		return false
	}
	nx := (x-o.minX)/(o.maxX-o.minX) - 0.5
	ny := (y-o.minY)/(o.maxY-o.minY) - 0.5
	return nx*nx+ny*ny <= 0.25
}

// containsBox tests the corner of b that is farthest from the center.
func (o oval) containsBox(b box) bool {
	cx, cy := o.center()
	return o.contains(b.farthest(cx, cy))
}

func (o oval) closest(x, y float64) (float64, float64) {
	if o.degenerate() {
		return box(o).closest(x, y)
	}
	if o.contains(x, y) {
		return x, y
	}
	cx, cy := o.center()
	a, b := o.radii()
	dx, dy := x-cx, y-cy
	qx, qy := closestOnEllipse(a, b, math.Abs(dx), math.Abs(dy))
	return cx + math.Copysign(qx, dx), cy + math.Copysign(qy, dy)
}

func (o oval) farthest(x, y float64) (float64, float64) {
	cx, cy := o.center()
	a, b := o.radii()
	if a == b {
		return disc{cx, cy, a}.farthest(x, y)
	}
	// The farthest point lies in the quadrant opposite to (x, y). Sample the
	// quarter arc and refine around the best sample.
	sx, sy := -1.0, -1.0
	if x < cx {
		sx = 1
	}
	if y < cy {
		sy = 1
	}
	best, bestD := 0.0, -1.0
	lo, hi := 0.0, math.Pi/2
	for range 4 {
		const n = 32
		step := (hi - lo) / n
		for i := 0; i <= n; i++ {
			t := lo + float64(i)*step
			sin, cos := math.Sincos(t)
			d := distanceSquared(cx+sx*a*cos, cy+sy*b*sin, x, y)
			if d > bestD {
				best, bestD = t, d
			}
		}
		lo, hi = max(0, best-step), min(math.Pi/2, best+step)
	}
	sin, cos := math.Sincos(best)
	return cx + sx*a*cos, cy + sy*b*sin
}

func (o oval) appendElements(dst []PathElement) []PathElement {
	cx, cy := o.center()
	a, b := o.radii()
	return appendEllipseArcs(dst, cx, cy, a, b)
}

func (o oval) equal(g outline) bool {
	og, ok := g.(oval)
	return ok && sameCoords(box(o).coords(), box(og).coords())
}

func (o oval) hash() uint64 {
	return hashFloats(tagEllipse, o.minX, o.minY, o.maxX, o.maxY)
}

// armLength is the distance of the cubic control points from the ends of a
// quarter arc of the unit circle.
//
// Solution from http://spencermortensen.com/articles/bezier-circle/
const armLength = 0.551915024494

// appendEllipseArcs appends a closed outline of the ellipse centered on (x, y)
// with radii rx and ry, made of four cubic Bézier curves starting at the
// rightmost point.
func appendEllipseArcs(dst []PathElement, x, y, rx, ry float64) []PathElement {
	// Cosine and sine of the quarter angles, exact so that the outline
	// touches its frame.
	quarters := [5][2]float64{{1, 0}, {0, 1}, {-1, 0}, {0, -1}, {1, 0}}
	var pb pathBuilder
	pb.els = dst
	pb.moveTo(x+rx, y)
	for ix := 1; ix < len(quarters); ix++ {
		c0, s0 := quarters[ix-1][0], quarters[ix-1][1]
		c1, s1 := quarters[ix][0], quarters[ix][1]
		pb.cubicTo(
			x+rx*(c0-armLength*s0), y+ry*(s0+armLength*c0),
			x+rx*(c1+armLength*s1), y+ry*(s1-armLength*c1),
			x+rx*c1, y+ry*s1,
		)
	}
	pb.closePath()
	return pb.els
}

// closestOnEllipse returns the point of the ellipse (x/a)² + (y/b)² = 1
// closest to (y0, y1), where y0 and y1 are non-negative. The result lies in
// the first quadrant.
//
// This is David Eberly's bisection method, from "Distance from a Point to an
// Ellipse, an Ellipsoid, or a Hyperellipsoid".
func closestOnEllipse(a, b, y0, y1 float64) (float64, float64) {
	if a < b {
		x1, x0 := closestOnEllipse(b, a, y1, y0)
		return x0, x1
	}
	e0, e1 := a, b
	if y1 > 0 {
		if y0 > 0 {
			z0 := y0 / e0
			z1 := y1 / e1
			g := z0*z0 + z1*z1 - 1
			if g == 0 {
				return y0, y1
			}
			r0 := (e0 / e1) * (e0 / e1)
			sbar := ellipseRoot(r0, z0, z1, g)
			return r0 * y0 / (sbar + r0), y1 / (sbar + 1)
		}
		return 0, e1
	}
	numer0 := e0 * y0
	denom0 := e0*e0 - e1*e1
	if numer0 < denom0 {
		xde0 := numer0 / denom0
		return e0 * xde0, e1 * math.Sqrt(1-xde0*xde0)
	}
	return e0, 0
}

// maxBisections bounds the bisection in ellipseRoot. It is large enough to
// exhaust the precision of a float64.
const maxBisections = 1074 + 53

func ellipseRoot(r0, z0, z1, g float64) float64 {
	n0 := r0 * z0
	s0 := z1 - 1
	var s1 float64
	if g >= 0 {
		s1 = math.Hypot(n0, z1) - 1
	}
	var s float64
	for range maxBisections {
		s = (s0 + s1) / 2
		if s == s0 || s == s1 {
			break
		}
		ratio0 := n0 / (s + r0)
		ratio1 := z1 / (s + 1)
		g = ratio0*ratio0 + ratio1*ratio1 - 1
		if g > 0 {
			s0 = s
		} else if g < 0 {
			s1 = s
		} else {
			break
		}
	}
	return s
}

// ellipse implements the ellipse shape over either kind of frame storage.
type ellipse[S any, PS framePtr[S]] struct {
	frame[S, PS]
}

func (e *ellipse[S, PS]) geom() oval { return oval(e.frameBox()) }

func (e *ellipse[S, PS]) geometry() outline { return e.geom() }

func (e *ellipse[S, PS]) Kind() Kind { return EllipseKind }

func (e *ellipse[S, PS]) BoundingBox() *Rectangle        { return newBoundingBox(e.geom()) }
func (e *ellipse[S, PS]) BoundingBoxInto(dst *Rectangle) { boundingBoxInto(e.geom(), dst) }
func (e *ellipse[S, PS]) Contains(x, y float64) bool     { return e.geom().contains(x, y) }
func (e *ellipse[S, PS]) ContainsPoint(p Coords) bool    { return containsPoint(e.geom(), p) }
func (e *ellipse[S, PS]) ContainsRectangle(r Box) bool   { return e.geom().containsBox(boxOf(r)) }
func (e *ellipse[S, PS]) ClosestPointTo(p Coords) Point  { return closestPoint(e.geom(), p) }
func (e *ellipse[S, PS]) Distance(p Coords) float64      { return distanceTo(e.geom(), p) }
func (e *ellipse[S, PS]) DistanceSquared(p Coords) float64 {
	return distanceSquaredTo(e.geom(), p)
}
func (e *ellipse[S, PS]) DistanceL1(p Coords) float64   { return distanceL1To(e.geom(), p) }
func (e *ellipse[S, PS]) DistanceLinf(p Coords) float64 { return distanceLinfTo(e.geom(), p) }
func (e *ellipse[S, PS]) Intersects(o Shape) bool       { return intersectsShape(e.geom(), o) }
func (e *ellipse[S, PS]) IntersectsPath(it PathIterator) bool {
	return intersectsIterator(e.geom(), it)
}
func (e *ellipse[S, PS]) PathIterator(tr *Affine) PathIterator { return pathIterator(e.geom(), tr) }
func (e *ellipse[S, PS]) TransformedShape(tr Affine) *Path     { return transformedShape(e.geom(), tr) }
func (e *ellipse[S, PS]) Equal(o Shape) bool                   { return shapeEqual(e.geom(), o) }
func (e *ellipse[S, PS]) Hash() uint64                         { return e.geom().hash() }

func (e *ellipse[S, PS]) String() string {
	o := e.geom()
	return fmt.Sprintf("Ellipse[(%g, %g), (%g, %g)]", o.minX, o.minY, o.maxX, o.maxY)
}

// FarthestPointTo returns the point of the ellipse outline farthest from p.
func (e *ellipse[S, PS]) FarthestPointTo(p Coords) Point {
	return Pt(e.geom().farthest(p.X(), p.Y()))
}

// Radii returns the horizontal and vertical radius.
func (e *ellipse[S, PS]) Radii() (float64, float64) {
	return e.geom().radii()
}

func (e *ellipse[S, PS]) Area() float64 {
	a, b := e.geom().radii()
	return math.Pi * a * b
}

func (e *ellipse[S, PS]) IsInf() bool { return isInf(e.frameBox().coords()...) }
func (e *ellipse[S, PS]) IsNaN() bool { return isNaN(e.frameBox().coords()...) }

// Ellipse is an axis-aligned ellipse inscribed in a frame, stored in plain
// fields.
type Ellipse struct {
	ellipse[plainFrame, *plainFrame]
}

// NewEllipse returns the ellipse inscribed in the frame spanned by (x, y)
// and (x+width, y+height).
func NewEllipse(x, y, width, height float64) *Ellipse {
	e := &Ellipse{}
	e.setInitiallyFromCorners(x, y, x+width, y+height)
	return e
}

func NewEllipseFromCorners(x1, y1, x2, y2 float64) *Ellipse {
	e := &Ellipse{}
	e.setInitiallyFromCorners(x1, y1, x2, y2)
	return e
}

func (e *Ellipse) Clone() *Ellipse {
	c := *e
	return &c
}

// ObservableEllipse is an ellipse whose frame is made of observable cells.
type ObservableEllipse struct {
	ellipse[observableFrame, *observableFrame]
}

func NewObservableEllipse(x, y, width, height float64) *ObservableEllipse {
	e := &ObservableEllipse{}
	e.setInitiallyFromCorners(x, y, x+width, y+height)
	return e
}

func NewObservableEllipseFromCorners(x1, y1, x2, y2 float64) *ObservableEllipse {
	e := &ObservableEllipse{}
	e.setInitiallyFromCorners(x1, y1, x2, y2)
	return e
}

func (e *ObservableEllipse) Clone() *ObservableEllipse {
	return NewObservableEllipseFromCorners(e.MinX(), e.MinY(), e.MaxX(), e.MaxY())
}

func (e *ObservableEllipse) Subscribe(fn func()) (cancel func()) {
	return e.s.subscribe(fn)
}

func (e *ObservableEllipse) Properties() FrameProperties {
	return e.s.properties()
}
