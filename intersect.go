package geom2d

import "fmt"

// intersects reports whether two outlines overlap. The pair is put in kind
// order first so that every pair of kinds is handled by exactly one
// algorithm, which makes the result independent of the argument order.
func intersects(a, b outline) bool {
	if a.kind() > b.kind() {
		a, b = b, a
	}
	switch a := a.(type) {
	case box:
		switch b := b.(type) {
		case box:
			return boxBox(a, b)
		case oval:
			return boxOval(a, b)
		case disc:
			return boxDisc(a, b)
		case seg:
			return boxSeg(a, b)
		case pathGeom:
			return pathIntersects(b, a)
		}
	case oval:
		switch b := b.(type) {
		case oval:
			return ovalOval(a, b)
		case disc:
			return ovalOval(a, oval(b.bounds()))
		case seg:
			return ovalSeg(a, b)
		case pathGeom:
			return pathIntersects(b, a)
		}
	case disc:
		switch b := b.(type) {
		case disc:
			return discDisc(a, b)
		case seg:
			return discSeg(a, b)
		case pathGeom:
			return pathIntersects(b, a)
		}
	case seg:
		switch b := b.(type) {
		case seg:
			return segSeg(a, b)
		case pathGeom:
			return pathIntersects(b, a)
		}
	case pathGeom:
		if b, ok := b.(pathGeom); ok {
			return pathPath(a, b)
		}
	}
	panic(fmt.Sprintf("geom2d: no intersection test for %s and %s", a.kind(), b.kind()))
}

// boxBox reports whether the interiors of two rectangles overlap. Rectangles
// that only share an edge do not intersect.
func boxBox(a, b box) bool {
	return a.maxX > b.minX && a.minX < b.maxX && a.maxY > b.minY && a.minY < b.maxY
}

func boxDisc(b box, d disc) bool {
	x, y := b.closest(d.cx, d.cy)
	return distanceSquared(x, y, d.cx, d.cy) < d.r*d.r
}

// boxOval scales the plane so that the ellipse becomes the unit circle.
func boxOval(b box, o oval) bool {
	if o.degenerate() {
		return false
	}
	cx, cy := o.center()
	rx, ry := o.radii()
	mb := box{(b.minX - cx) / rx, (b.minY - cy) / ry, (b.maxX - cx) / rx, (b.maxY - cy) / ry}
	return boxDisc(mb, disc{0, 0, 1})
}

// Cohen-Sutherland outcodes.
const (
	csLeft = 1 << iota
	csRight
	csBottom
	csTop
)

func outcode(b box, x, y float64) int {
	code := 0
	if x < b.minX {
		code |= csLeft
	} else if x > b.maxX {
		code |= csRight
	}
	if y < b.minY {
		code |= csBottom
	} else if y > b.maxY {
		code |= csTop
	}
	return code
}

// maxClipRounds bounds the clipping loop. Each round moves one end point onto
// a boundary line; rounding can require a few more than the four rounds of
// exact arithmetic.
const maxClipRounds = 16

// clipSegment clips s to the closed box b with the Cohen-Sutherland
// algorithm. It reports false if s lies entirely outside b.
func clipSegment(b box, s seg) (seg, bool) {
	x1, y1, x2, y2 := s.x1, s.y1, s.x2, s.y2
	c1 := outcode(b, x1, y1)
	c2 := outcode(b, x2, y2)
	for range maxClipRounds {
		if c1|c2 == 0 {
			return seg{x1, y1, x2, y2}, true
		}
		if c1&c2 != 0 {
			return seg{}, false
		}
		c := c1
		if c == 0 {
			c = c2
		}
		var x, y float64
		switch {
		case c&csTop != 0:
			x = x1 + (x2-x1)*(b.maxY-y1)/(y2-y1)
			y = b.maxY
		case c&csBottom != 0:
			x = x1 + (x2-x1)*(b.minY-y1)/(y2-y1)
			y = b.minY
		case c&csRight != 0:
			y = y1 + (y2-y1)*(b.maxX-x1)/(x2-x1)
			x = b.maxX
		default:
			y = y1 + (y2-y1)*(b.minX-x1)/(x2-x1)
			x = b.minX
		}
		if c == c1 {
			x1, y1 = x, y
			c1 = outcode(b, x1, y1)
		} else {
			x2, y2 = x, y
			c2 = outcode(b, x2, y2)
		}
	}
	return seg{}, false
}

func strictlyInside(b box, x, y float64) bool {
	return x > b.minX && x < b.maxX && y > b.minY && y < b.maxY
}

// boxSeg clips the segment to the box. A clipped segment reduced to a single
// point counts only if that point lies strictly inside the box.
func boxSeg(b box, s seg) bool {
	c, ok := clipSegment(b, s)
	if !ok {
		return false
	}
	if c.x1 == c.x2 && c.y1 == c.y2 {
		return strictlyInside(b, c.x1, c.y1)
	}
	return true
}

// segmentCrossesOpenBox reports whether s passes through the interior of b.
// Segments running along the boundary do not.
func segmentCrossesOpenBox(b box, s seg) bool {
	c, ok := clipSegment(b, s)
	if !ok {
		return false
	}
	return strictlyInside(b, (c.x1+c.x2)/2, (c.y1+c.y2)/2)
}

func discDisc(a, b disc) bool {
	r := a.r + b.r
	return distanceSquared(a.cx, a.cy, b.cx, b.cy) < r*r
}

func discSeg(d disc, s seg) bool {
	return s.distanceSquared(d.cx, d.cy) < d.r*d.r
}

func lessBox(a, b box) bool {
	switch {
	case a.minX != b.minX:
		return a.minX < b.minX
	case a.minY != b.minY:
		return a.minY < b.minY
	case a.maxX != b.maxX:
		return a.maxX < b.maxX
	default:
		return a.maxY < b.maxY
	}
}

// ovalOval maps the first ellipse to the unit circle. The second one stays
// axis-aligned under that mapping, so the ellipses intersect if the mapped
// second ellipse comes closer than 1 to the origin.
func ovalOval(a, b oval) bool {
	if a.degenerate() || b.degenerate() {
		return false
	}
	if lessBox(box(b), box(a)) {
		a, b = b, a
	}
	cx, cy := a.center()
	rx, ry := a.radii()
	mb := oval{(b.minX - cx) / rx, (b.minY - cy) / ry, (b.maxX - cx) / rx, (b.maxY - cy) / ry}
	if mb.degenerate() {
		return false
	}
	x, y := mb.closest(0, 0)
	return x*x+y*y < 1
}

func ovalSeg(o oval, s seg) bool {
	if o.degenerate() {
		return false
	}
	cx, cy := o.center()
	rx, ry := o.radii()
	ms := seg{(s.x1 - cx) / rx, (s.y1 - cy) / ry, (s.x2 - cx) / rx, (s.y2 - cy) / ry}
	return ms.distanceSquared(0, 0) < 1
}

// orientation returns a positive value if (x3, y3) lies to the left of the
// directed line from (x1, y1) to (x2, y2), a negative value if it lies to the
// right, and zero if the three points are collinear.
func orientation(x1, y1, x2, y2, x3, y3 float64) float64 {
	return (x2-x1)*(y3-y1) - (y2-y1)*(x3-x1)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// onBoundingBox reports whether (x, y), known to be collinear with s, lies
// within the extent of s.
func onBoundingBox(s seg, x, y float64) bool {
	return x >= min(s.x1, s.x2) && x <= max(s.x1, s.x2) && y >= min(s.y1, s.y2) && y <= max(s.y1, s.y2)
}

// segSeg reports whether two segments cross or touch, including collinear
// overlaps.
func segSeg(a, b seg) bool {
	o1 := sign(orientation(a.x1, a.y1, a.x2, a.y2, b.x1, b.y1))
	o2 := sign(orientation(a.x1, a.y1, a.x2, a.y2, b.x2, b.y2))
	o3 := sign(orientation(b.x1, b.y1, b.x2, b.y2, a.x1, a.y1))
	o4 := sign(orientation(b.x1, b.y1, b.x2, b.y2, a.x2, a.y2))
	if o1 != o2 && o3 != o4 {
		return true
	}
	return o1 == 0 && onBoundingBox(a, b.x1, b.y1) ||
		o2 == 0 && onBoundingBox(a, b.x2, b.y2) ||
		o3 == 0 && onBoundingBox(b, a.x1, a.y1) ||
		o4 == 0 && onBoundingBox(b, a.x2, a.y2)
}

// referencePoint returns a point that lies inside every non-empty outline
// that is not a path.
func referencePoint(g outline) (float64, float64) {
	switch g := g.(type) {
	case box:
		return g.center()
	case oval:
		return g.center()
	case disc:
		return g.cx, g.cy
	case seg:
		return g.x1, g.y1
	default:
		panic(fmt.Sprintf("geom2d: no reference point for %s", g.kind()))
	}
}

// pathIntersects treats p as a filled region. Against rectangles, circles
// and ellipses the interiors have to overlap, as between those shapes
// themselves: an edge has to pass through the interior of o, p has to
// contain o's reference point, or o's interior has to contain p's first
// point. Against segments, touching counts.
func pathIntersects(p pathGeom, o outline) bool {
	if !p.drawable() {
		return false
	}
	if ov, ok := o.(oval); ok && ov.degenerate() {
		return false
	}
	edges := p.edges()
	for _, e := range edges {
		if edgeIntersects(e, o) {
			return true
		}
	}
	rx, ry := referencePoint(o)
	if p.containsWithEdges(edges, rx, ry) {
		return true
	}
	fx, fy, _ := p.firstPoint()
	return interiorContains(o, fx, fy)
}

// edgeIntersects reports whether a path edge meets o. Edges only running
// along the boundary of a rectangle do not.
func edgeIntersects(e seg, o outline) bool {
	if b, ok := o.(box); ok {
		return segmentCrossesOpenBox(b, e)
	}
	return intersects(e, o)
}

// interiorContains reports whether (x, y) lies in the interior of o.
// Segments have no interior and contain their points.
func interiorContains(o outline, x, y float64) bool {
	switch o := o.(type) {
	case box:
		return strictlyInside(o, x, y)
	case disc:
		return distanceSquared(x, y, o.cx, o.cy) < o.r*o.r
	case oval:
		nx := (x-o.minX)/(o.maxX-o.minX) - 0.5
		ny := (y-o.minY)/(o.maxY-o.minY) - 0.5
		return nx*nx+ny*ny < 0.25
	default:
		return o.contains(x, y)
	}
}

// pathPath reports whether two paths overlap. Edges that touch count, so
// paths sharing only an edge or a vertex intersect.
func pathPath(a, b pathGeom) bool {
	if !a.drawable() || !b.drawable() {
		return false
	}
	ea, eb := a.edges(), b.edges()
	for _, e := range ea {
		for _, f := range eb {
			if segSeg(e, f) {
				return true
			}
		}
	}
	if x, y, ok := b.firstPoint(); ok && a.containsWithEdges(ea, x, y) {
		return true
	}
	if x, y, ok := a.firstPoint(); ok && b.containsWithEdges(eb, x, y) {
		return true
	}
	return false
}
