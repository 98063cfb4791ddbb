package geom2d

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// DefaultTolerance is the maximum distance between a curve and the polyline
// approximating it when paths are flattened for containment, distance and
// intersection queries.
const DefaultTolerance = 1e-3

// WindingRule decides which points are inside a path.
type WindingRule int

const (
	// NonZero considers a point inside if the winding number of the path
	// around it is not zero.
	NonZero WindingRule = iota
	// EvenOdd considers a point inside if the winding number is odd.
	EvenOdd
)

func (r WindingRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("WindingRule(%d)", int(r))
	}
}

func (r WindingRule) inside(winding int) bool {
	if r == EvenOdd {
		return winding%2 != 0
	}
	return winding != 0
}

// PathIterator is a cursor over the elements of a path.
type PathIterator interface {
	HasNext() bool
	// Next returns the next element. Once all elements have been returned it
	// returns an error wrapping ErrNoSuchElement.
	Next() (PathElement, error)
	WindingRule() WindingRule
}

type elementIterator struct {
	els  []PathElement
	i    int
	rule WindingRule
	tr   *Affine
}

func newElementIterator(els []PathElement, rule WindingRule, tr *Affine) *elementIterator {
	it := &elementIterator{els: els, rule: rule}
	if tr != nil && !tr.IsIdentity() {
		aff := *tr
		it.tr = &aff
	}
	return it
}

func (it *elementIterator) HasNext() bool { return it.i < len(it.els) }

func (it *elementIterator) Next() (PathElement, error) {
	if it.i >= len(it.els) {
		return PathElement{}, fmt.Errorf("path iterator exhausted after %d elements: %w", len(it.els), ErrNoSuchElement)
	}
	el := it.els[it.i]
	it.i++
	if it.tr != nil {
		el = el.Transform(*it.tr)
	}
	return el, nil
}

func (it *elementIterator) WindingRule() WindingRule { return it.rule }

// pathBuilder appends elements while tracking the current point and the
// start of the current subpath.
type pathBuilder struct {
	els []PathElement

	curX, curY     float64
	startX, startY float64
	hasCur         bool
}

func (pb *pathBuilder) moveTo(x, y float64) {
	if n := len(pb.els); n > 0 && pb.els[n-1].Kind == MoveToKind {
		pb.els[n-1].ToX, pb.els[n-1].ToY = x, y
	} else {
		pb.els = append(pb.els, PathElement{Kind: MoveToKind, ToX: x, ToY: y})
	}
	pb.curX, pb.curY = x, y
	pb.startX, pb.startY = x, y
	pb.hasCur = true
}

func (pb *pathBuilder) mustHaveCurrent(op string) {
	if !pb.hasCur {
		panic(fmt.Sprintf("geom2d: %s without a current point; the path must start with MoveTo", op))
	}
}

func (pb *pathBuilder) lineTo(x, y float64) {
	pb.mustHaveCurrent("LineTo")
	pb.els = append(pb.els, PathElement{Kind: LineToKind, FromX: pb.curX, FromY: pb.curY, ToX: x, ToY: y})
	pb.curX, pb.curY = x, y
}

func (pb *pathBuilder) quadTo(cx, cy, x, y float64) {
	pb.mustHaveCurrent("QuadTo")
	pb.els = append(pb.els, PathElement{
		Kind:  QuadToKind,
		FromX: pb.curX, FromY: pb.curY,
		Ctrl1X: cx, Ctrl1Y: cy,
		ToX: x, ToY: y,
	})
	pb.curX, pb.curY = x, y
}

func (pb *pathBuilder) cubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pb.mustHaveCurrent("CubicTo")
	pb.els = append(pb.els, PathElement{
		Kind:  CubicToKind,
		FromX: pb.curX, FromY: pb.curY,
		Ctrl1X: c1x, Ctrl1Y: c1y,
		Ctrl2X: c2x, Ctrl2Y: c2y,
		ToX: x, ToY: y,
	})
	pb.curX, pb.curY = x, y
}

func (pb *pathBuilder) closePath() {
	pb.mustHaveCurrent("ClosePath")
	pb.els = append(pb.els, PathElement{
		Kind:  ClosePathKind,
		FromX: pb.curX, FromY: pb.curY,
		ToX: pb.startX, ToY: pb.startY,
	})
	pb.curX, pb.curY = pb.startX, pb.startY
}

// add appends el, reconstructing its from point from the builder state. A
// drawing element arriving without a current point starts a subpath at its
// from point.
func (pb *pathBuilder) add(el PathElement) {
	if el.Kind != MoveToKind && el.Kind != ClosePathKind && !pb.hasCur {
		pb.moveTo(el.FromX, el.FromY)
	}
	switch el.Kind {
	case MoveToKind:
		pb.moveTo(el.ToX, el.ToY)
	case LineToKind:
		pb.lineTo(el.ToX, el.ToY)
	case QuadToKind:
		pb.quadTo(el.Ctrl1X, el.Ctrl1Y, el.ToX, el.ToY)
	case CubicToKind:
		pb.cubicTo(el.Ctrl1X, el.Ctrl1Y, el.Ctrl2X, el.Ctrl2Y, el.ToX, el.ToY)
	case ClosePathKind:
		if pb.hasCur {
			pb.closePath()
		}
	default:
		panic(fmt.Sprintf("geom2d: invalid path element kind %d", int(el.Kind)))
	}
}

// resync recomputes the current point and subpath start from the elements.
func (pb *pathBuilder) resync() {
	pb.curX, pb.curY, pb.startX, pb.startY, pb.hasCur = 0, 0, 0, 0, false
	for _, el := range pb.els {
		switch el.Kind {
		case MoveToKind:
			pb.startX, pb.startY = el.ToX, el.ToY
			pb.hasCur = true
		}
		pb.curX, pb.curY = el.ToX, el.ToY
	}
}

// Path is a sequence of path elements with a winding rule. The zero value
// is an empty path using the NonZero rule.
//
// Drawing methods panic if the path has no current point, that is, if they
// are not preceded by MoveTo.
type Path struct {
	pb   pathBuilder
	rule WindingRule
}

func NewPath(rule WindingRule) *Path {
	return &Path{rule: rule}
}

// NewPathFromIterator consumes it and returns the path it describes.
func NewPathFromIterator(it PathIterator) (*Path, error) {
	p := NewPath(it.WindingRule())
	if err := p.Append(it); err != nil {
		return nil, err
	}
	return p, nil
}

// mustPath is NewPathFromIterator for iterators that must not fail.
func mustPath(it PathIterator) *Path {
	p, err := NewPathFromIterator(it)
	if err != nil {
		panic(fmt.Sprintf("geom2d: %s", err))
	}
	return p
}

// Append consumes it and appends its elements to the path. If it fails, the
// elements read before the failure stay appended and the error is returned.
func (p *Path) Append(it PathIterator) error {
	for n := 0; it.HasNext(); n++ {
		el, err := it.Next()
		if err != nil {
			return fmt.Errorf("path iterator element %d: %w", n, err)
		}
		p.pb.add(el)
	}
	return nil
}

func (p *Path) geom() pathGeom { return pathGeom{els: p.pb.els, rule: p.rule} }

func (p *Path) geometry() outline { return p.geom() }

func (p *Path) Kind() Kind { return PathKind }

func (p *Path) WindingRule() WindingRule { return p.rule }

func (p *Path) SetWindingRule(rule WindingRule) { p.rule = rule }

// MoveTo starts a new subpath at (x, y). If the last element is also a move,
// it is replaced.
func (p *Path) MoveTo(x, y float64) { p.pb.moveTo(x, y) }

func (p *Path) LineTo(x, y float64) { p.pb.lineTo(x, y) }

func (p *Path) QuadTo(cx, cy, x, y float64) { p.pb.quadTo(cx, cy, x, y) }

func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.pb.cubicTo(c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath with a line back to its first point.
func (p *Path) ClosePath() { p.pb.closePath() }

// CurrentPoint returns the end point of the last element.
func (p *Path) CurrentPoint() (Point, bool) {
	return Pt(p.pb.curX, p.pb.curY), p.pb.hasCur
}

func (p *Path) Len() int { return len(p.pb.els) }

// Element returns the element at index i.
func (p *Path) Element(i int) (PathElement, error) {
	if i < 0 || i >= len(p.pb.els) {
		return PathElement{}, fmt.Errorf("element %d of %d: %w", i, len(p.pb.els), ErrNoSuchElement)
	}
	return p.pb.els[i], nil
}

// Pop removes and returns the last element.
func (p *Path) Pop() (PathElement, bool) {
	n := len(p.pb.els)
	if n == 0 {
		return PathElement{}, false
	}
	el := p.pb.els[n-1]
	// Clipped so that later appends do not overwrite what earlier Elements
	// sequences still see.
	p.pb.els = slices.Clip(p.pb.els[:n-1])
	p.pb.resync()
	return el, true
}

// Elements returns the elements of the path at the time of the call.
// Elements added later are not part of the sequence, but Transform,
// Translate and a MoveTo replacing a trailing move change elements in place
// and are visible to it. PathIterator returns an independent copy.
func (p *Path) Elements() iter.Seq[PathElement] { return slices.Values(p.pb.els) }

func (p *Path) Clone() *Path {
	c := *p
	c.pb.els = slices.Clone(p.pb.els)
	return &c
}

// IsEmpty reports whether the path has no drawable element.
func (p *Path) IsEmpty() bool {
	for _, el := range p.pb.els {
		if el.IsDrawable() {
			return false
		}
	}
	return true
}

// Clear removes all elements. The path does not reuse their storage, so
// sequences returned by Elements before Clear are unaffected.
func (p *Path) Clear() {
	p.pb = pathBuilder{}
}

func (p *Path) Translate(dx, dy float64) {
	p.Transform(Translate(dx, dy))
}

// Transform applies aff to every element of the path.
func (p *Path) Transform(aff Affine) {
	for i, el := range p.pb.els {
		p.pb.els[i] = el.Transform(aff)
	}
	p.pb.resync()
}

// ControlBox returns the bounding box of all points of the path, including
// control points. It contains the tight bounding box.
func (p *Path) ControlBox() *Rectangle {
	var b box
	first := true
	add := func(x, y float64) {
		if first {
			b = box{x, y, x, y}
			first = false
			return
		}
		extendBox(&b, Pt(x, y))
	}
	for _, el := range p.pb.els {
		switch el.Kind {
		case QuadToKind:
			add(el.Ctrl1X, el.Ctrl1Y)
		case CubicToKind:
			add(el.Ctrl1X, el.Ctrl1Y)
			add(el.Ctrl2X, el.Ctrl2Y)
		}
		add(el.ToX, el.ToY)
	}
	return NewRectangleFromCorners(b.minX, b.minY, b.maxX, b.maxY)
}

// Flatten returns a new path in which all curves are replaced by lines
// within tolerance of them.
func (p *Path) Flatten(tolerance float64) *Path {
	q := NewPath(p.rule)
	q.pb.els = flattenElements(nil, p.pb.els, tolerance)
	q.pb.resync()
	return q
}

// Winding returns the winding number of the path around (x, y). Open
// subpaths are closed implicitly.
func (p *Path) Winding(x, y float64) int {
	return windingNumber(p.geom().edges(), x, y)
}

// Length returns the length of the flattened path. Implicit closing lines
// are not counted.
func (p *Path) Length() float64 {
	var sum float64
	for _, el := range flattenElements(nil, p.pb.els, DefaultTolerance) {
		if el.Kind == LineToKind || el.Kind == ClosePathKind {
			sum += math.Sqrt(distanceSquared(el.FromX, el.FromY, el.ToX, el.ToY))
		}
	}
	return sum
}

func (p *Path) BoundingBox() *Rectangle        { return newBoundingBox(p.geom()) }
func (p *Path) BoundingBoxInto(dst *Rectangle) { boundingBoxInto(p.geom(), dst) }
func (p *Path) Contains(x, y float64) bool     { return p.geom().contains(x, y) }
func (p *Path) ContainsPoint(pt Coords) bool   { return containsPoint(p.geom(), pt) }
func (p *Path) ContainsRectangle(r Box) bool   { return p.geom().containsBox(boxOf(r)) }
func (p *Path) ClosestPointTo(pt Coords) Point { return closestPoint(p.geom(), pt) }
func (p *Path) Distance(pt Coords) float64     { return distanceTo(p.geom(), pt) }
func (p *Path) DistanceSquared(pt Coords) float64 {
	return distanceSquaredTo(p.geom(), pt)
}
func (p *Path) DistanceL1(pt Coords) float64         { return distanceL1To(p.geom(), pt) }
func (p *Path) DistanceLinf(pt Coords) float64       { return distanceLinfTo(p.geom(), pt) }
func (p *Path) Intersects(o Shape) bool              { return intersectsShape(p.geom(), o) }
func (p *Path) IntersectsPath(it PathIterator) bool  { return intersectsIterator(p.geom(), it) }
func (p *Path) PathIterator(tr *Affine) PathIterator { return pathIterator(p.geom(), tr) }
func (p *Path) TransformedShape(tr Affine) *Path     { return transformedShape(p.geom(), tr) }
func (p *Path) Equal(o Shape) bool                   { return shapeEqual(p.geom(), o) }
func (p *Path) Hash() uint64                         { return p.geom().hash() }

func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteString("Path[")
	sb.WriteString(p.rule.String())
	for _, el := range p.pb.els {
		sb.WriteString(", ")
		sb.WriteString(el.String())
	}
	sb.WriteString("]")
	return sb.String()
}

func (p *Path) IsInf() bool {
	return slices.ContainsFunc(p.pb.els, PathElement.IsInf)
}

func (p *Path) IsNaN() bool {
	return slices.ContainsFunc(p.pb.els, PathElement.IsNaN)
}

// pathGeom is the geometry of a path. The path is treated as a filled region
// under its winding rule, with open subpaths closed implicitly.
type pathGeom struct {
	els  []PathElement
	rule WindingRule
}

func (g pathGeom) kind() Kind               { return PathKind }
func (g pathGeom) windingRule() WindingRule { return g.rule }

// bounds returns the tight bounding box, using the extrema of curves.
func (g pathGeom) bounds() box {
	var b box
	first := true
	for _, el := range g.els {
		if first {
			if el.Kind != MoveToKind {
				b = box{el.FromX, el.FromY, el.FromX, el.FromY}
			} else {
				b = box{el.ToX, el.ToY, el.ToX, el.ToY}
			}
			first = false
		}
		switch el.Kind {
		case MoveToKind, LineToKind, ClosePathKind:
			extendBox(&b, el.To())
		case QuadToKind:
			quadBez{el.From(), el.Ctrl1(), el.To()}.boundsInto(&b)
		case CubicToKind:
			cubicBez{el.From(), el.Ctrl1(), el.Ctrl2(), el.To()}.boundsInto(&b)
		}
	}
	return b
}

// edges returns the lines of the flattened path, including the implicit
// closing line of every open subpath.
func (g pathGeom) edges() []seg {
	var out []seg
	var startX, startY, curX, curY float64
	open := false
	closeSubpath := func() {
		if open && (curX != startX || curY != startY) {
			out = append(out, seg{curX, curY, startX, startY})
		}
		open = false
	}
	for _, el := range flattenElements(nil, g.els, DefaultTolerance) {
		switch el.Kind {
		case MoveToKind:
			closeSubpath()
			startX, startY = el.ToX, el.ToY
		case LineToKind:
			out = append(out, seg{el.FromX, el.FromY, el.ToX, el.ToY})
			open = true
		case ClosePathKind:
			if el.FromX != el.ToX || el.FromY != el.ToY {
				out = append(out, seg{el.FromX, el.FromY, el.ToX, el.ToY})
			}
			open = false
		}
		curX, curY = el.ToX, el.ToY
	}
	closeSubpath()
	return out
}

func (g pathGeom) drawable() bool {
	return slices.ContainsFunc(g.els, PathElement.IsDrawable)
}

// firstPoint returns the first point of the path.
func (g pathGeom) firstPoint() (float64, float64, bool) {
	if len(g.els) == 0 {
		return 0, 0, false
	}
	el := g.els[0]
	if el.Kind == MoveToKind {
		return el.ToX, el.ToY, true
	}
	return el.FromX, el.FromY, true
}

func (g pathGeom) contains(x, y float64) bool {
	return g.containsWithEdges(g.edges(), x, y)
}

func (g pathGeom) containsWithEdges(edges []seg, x, y float64) bool {
	if len(edges) == 0 {
		return false
	}
	for _, e := range edges {
		if e.contains(x, y) {
			return true
		}
	}
	return g.rule.inside(windingNumber(edges, x, y))
}

// containsBox reports whether all corners of b are inside the path and no
// edge of the path crosses the interior of b.
func (g pathGeom) containsBox(b box) bool {
	if b.width() <= 0 || b.height() <= 0 {
		return false
	}
	edges := g.edges()
	for _, c := range [4][2]float64{{b.minX, b.minY}, {b.maxX, b.minY}, {b.maxX, b.maxY}, {b.minX, b.maxY}} {
		if !g.containsWithEdges(edges, c[0], c[1]) {
			return false
		}
	}
	for _, e := range edges {
		if segmentCrossesOpenBox(b, e) {
			return false
		}
	}
	return true
}

func (g pathGeom) closest(x, y float64) (float64, float64) {
	edges := g.edges()
	if len(edges) == 0 {
		for i := len(g.els) - 1; i >= 0; i-- {
			if g.els[i].Kind == MoveToKind {
				return g.els[i].ToX, g.els[i].ToY
			}
		}
		return 0, 0
	}
	if g.containsWithEdges(edges, x, y) {
		return x, y
	}
	bestX, bestY := edges[0].closest(x, y)
	bestD := distanceSquared(bestX, bestY, x, y)
	for _, e := range edges[1:] {
		cx, cy := e.closest(x, y)
		if d := distanceSquared(cx, cy, x, y); d < bestD {
			bestX, bestY, bestD = cx, cy, d
		}
	}
	return bestX, bestY
}

func (g pathGeom) appendElements(dst []PathElement) []PathElement {
	return append(dst, g.els...)
}

func (g pathGeom) equal(o outline) bool {
	og, ok := o.(pathGeom)
	return ok && g.rule == og.rule && slices.EqualFunc(g.els, og.els, PathElement.Equal)
}

func (g pathGeom) hash() uint64 {
	d := xxhash.New()
	var buf [9]byte
	buf[0] = tagPath
	binary.LittleEndian.PutUint64(buf[1:], uint64(g.rule))
	d.Write(buf[:])
	for _, el := range g.els {
		d.Write(binary.LittleEndian.AppendUint64(buf[:0], el.Hash()))
	}
	return d.Sum64()
}

// windingNumber returns the winding number of a closed polyline around
// (x, y).
func windingNumber(edges []seg, x, y float64) int {
	w := 0
	for _, e := range edges {
		if e.y1 <= y {
			if e.y2 > y && orientation(e.x1, e.y1, e.x2, e.y2, x, y) > 0 {
				w++
			}
		} else if e.y2 <= y && orientation(e.x1, e.y1, e.x2, e.y2, x, y) < 0 {
			w--
		}
	}
	return w
}

// flattenElements appends to dst an approximation of els made only of move,
// line and close elements.
//
// Curves are flattened as described in [Flattening quadratic Béziers]: cubics
// are first subdivided into quadratics, and each quadratic is then subdivided
// evenly in the parameter space of a parabola.
//
// [Flattening quadratic Béziers]: https://raphlinus.github.io/graphics/curves/2019/12/23/flatten-quadbez.html
func flattenElements(dst, els []PathElement, tolerance float64) []PathElement {
	// Proportion of tolerance budget that goes to cubic to quadratic conversion.
	const toQuadTol = 0.1

	sqrtTol := math.Sqrt(tolerance)
	var pb pathBuilder
	pb.els = dst
	var quads []quadBez
	var params []flattenParams
	for _, el := range els {
		if el.Kind != MoveToKind && el.Kind != ClosePathKind && !pb.hasCur {
			pb.moveTo(el.FromX, el.FromY)
		}
		switch el.Kind {
		case MoveToKind:
			pb.moveTo(el.ToX, el.ToY)
		case LineToKind:
			pb.lineTo(el.ToX, el.ToY)
		case QuadToKind:
			q := quadBez{el.From(), el.Ctrl1(), el.To()}
			params := q.estimateSubdiv(sqrtTol)
			n := subdivisionCount(math.Ceil(0.5 * params.val / sqrtTol))
			step := 1.0 / float64(n)
			for i := 1; i < n; i++ {
				u := float64(i) * step
				t := q.determineSubdivT(&params, u)
				pb.lineTo(q.eval(t).Splat())
			}
			pb.lineTo(el.ToX, el.ToY)
		case CubicToKind:
			c := cubicBez{el.From(), el.Ctrl1(), el.Ctrl2(), el.To()}

			// Subdivide into quadratics, and estimate the number of
			// subdivisions required for each, summing to arrive at an
			// estimate for the number of subdivisions for the cubic.
			// Also retain these parameters for later.
			quads = c.quadratics(tolerance*toQuadTol, quads[:0])
			params = params[:0]
			sqrtRemainTol := sqrtTol * math.Sqrt(1.0-toQuadTol)
			sum := 0.0
			for _, q := range quads {
				p := q.estimateSubdiv(sqrtRemainTol)
				sum += p.val
				params = append(params, p)
			}
			n := subdivisionCount(math.Ceil(0.5 * sum / sqrtRemainTol))

			// Iterate through the quadratics, outputting the points of
			// subdivisions that fall within that quadratic.
			step := sum / float64(n)
			i := 1
			valSum := 0.0
		quadLoop:
			for j, q := range quads {
				p := params[j]
				target := float64(i) * step
				recipVal := 1.0 / p.val
				for target < valSum+p.val {
					u := (target - valSum) * recipVal
					t := q.determineSubdivT(&p, u)
					pb.lineTo(q.eval(t).Splat())
					i++
					if i == n {
						break quadLoop
					}
					target = float64(i) * step
				}
				valSum += p.val
			}
			pb.lineTo(el.ToX, el.ToY)
		case ClosePathKind:
			if pb.hasCur {
				pb.closePath()
			}
		}
	}
	return pb.els
}
