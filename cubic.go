package geom2d

import (
	"math"
	"slices"
)

// cubicBez is a cubic Bézier segment.
type cubicBez struct {
	p0, p1, p2, p3 Point
}

func (c cubicBez) eval(t float64) Point {
	mt := 1.0 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	cc := 3 * mt * t * t
	d := t * t * t
	return Pt(
		a*c.p0.x+b*c.p1.x+cc*c.p2.x+d*c.p3.x,
		a*c.p0.y+b*c.p1.y+cc*c.p2.y+d*c.p3.y,
	)
}

func (c cubicBez) differentiate() quadBez {
	return quadBez{
		PointOf(c.p1.Sub(c.p0).Scale(3)),
		PointOf(c.p2.Sub(c.p1).Scale(3)),
		PointOf(c.p3.Sub(c.p2).Scale(3)),
	}
}

func (c cubicBez) subsegment(t0, t1 float64) cubicBez {
	p0 := c.eval(t0)
	p3 := c.eval(t1)
	d := c.differentiate()
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Add(VectorOf(d.eval(t0)).Scale(scale))
	p2 := p3.Add(VectorOf(d.eval(t1)).Scale(scale).Negate())
	return cubicBez{p0, p1, p2, p3}
}

// quadratics approximates the cubic with quadratic Béziers, each within
// accuracy of the corresponding part of the cubic.
//
// Note that the resulting quadratic Béziers are not in general G1 continuous;
// they are optimized for minimizing distance error.
func (c cubicBez) quadratics(accuracy float64, dst []quadBez) []quadBez {
	// The maximum error, as a vector from the cubic to the best approximating
	// quadratic, is proportional to the third derivative, which is constant
	// across the segment. Thus, the error scales down as the third power of
	// the number of subdivisions. Our strategy then is to subdivide t evenly.

	// This magic number is the square of 36 / sqrt(3).
	// See: https://web.archive.org/web/20210108052742/http://caffeineowl.com/graphics/2d/vectorial/cubic2quad01.html
	maxHypot2 := 432.0 * accuracy * accuracy
	p1x2 := VectorOf(c.p1).Scale(3).Sub(c.p0)
	p2x2 := VectorOf(c.p2).Scale(3).Sub(c.p3)
	err := p2x2.Sub(p1x2).LengthSquared()
	n := subdivisionCount(math.Ceil(math.Sqrt(math.Cbrt(err / maxHypot2))))

	for i := range n {
		t0 := float64(i) / float64(n)
		t1 := float64(i+1) / float64(n)
		sub := c.subsegment(t0, t1)
		p1x2 := VectorOf(sub.p1).Scale(3).Sub(sub.p0)
		p2x2 := VectorOf(sub.p2).Scale(3).Sub(sub.p3)
		dst = append(dst, quadBez{sub.p0, PointOf(p1x2.Add(p2x2).Scale(1.0 / 4.0)), sub.p3})
	}
	return dst
}

// extrema returns the sorted parameters in (0, 1) at which either coordinate
// has a local extremum.
func (c cubicBez) extrema() ([4]float64, int) {
	// two calls to oneCoord, up to 2 roots per call, for a total of 4 possible values.
	var out [4]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		c := d0
		roots, n := SolveQuadratic(c, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.p1.Sub(c.p0)
	d1 := c.p2.Sub(c.p1)
	d2 := c.p3.Sub(c.p2)
	oneCoord(d0.x, d1.x, d2.x)
	oneCoord(d0.y, d1.y, d2.y)
	slices.Sort(out[:outN])
	return out, outN
}

func (c cubicBez) boundsInto(b *box) {
	extendBox(b, c.p3)
	ts, n := c.extrema()
	for _, t := range ts[:n] {
		extendBox(b, c.eval(t))
	}
}

func extendBox(b *box, p Point) {
	b.minX = min(b.minX, p.x)
	b.minY = min(b.minY, p.y)
	b.maxX = max(b.maxX, p.x)
	b.maxY = max(b.maxY, p.y)
}
