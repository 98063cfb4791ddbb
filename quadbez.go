package geom2d

import "math"

// quadBez is a quadratic Bézier segment.
type quadBez struct {
	p0, p1, p2 Point
}

func (q quadBez) eval(t float64) Point {
	mt := 1.0 - t
	return Pt(
		q.p0.x*(mt*mt)+(q.p1.x*(mt*2.0)+q.p2.x*t)*t,
		q.p0.y*(mt*mt)+(q.p1.y*(mt*2.0)+q.p2.y*t)*t,
	)
}

// extrema returns the parameters in (0, 1) at which either coordinate has a
// local extremum.
func (q quadBez) extrema() ([2]float64, int) {
	// Finding the extrema of a quadratic bezier means finding the roots in the
	// quadratic's first derivative, which is a line.
	var out [2]float64
	var outN int
	d0 := q.p1.Sub(q.p0)
	d1 := q.p2.Sub(q.p1)
	dd := d1.Sub(d0)
	if dd.x != 0.0 {
		t := -d0.x / dd.x
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if dd.y != 0 {
		t := -d0.y / dd.y
		if t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	return out, outN
}

func (q quadBez) boundsInto(b *box) {
	extendBox(b, q.p2)
	ts, n := q.extrema()
	for _, t := range ts[:n] {
		extendBox(b, q.eval(t))
	}
}

// An approximation to $\int (1 + 4x^2) ^ -0.25 dx$
//
// This is used for flattening curves.
func approxParabolaIntegral(x float64) float64 {
	const d = 0.67
	return x / (1.0 - d + math.Sqrt(math.Sqrt(math.Pow(d, 4)+0.25*x*x)))
}

// An approximation to the inverse parabola integral.
func approxParabolaInvIntegral(x float64) float64 {
	const b = 0.39
	return x * (1.0 - b + math.Sqrt(b*b+0.25*x*x))
}

// Maps a value from 0..1 to 0..1.
func (q quadBez) determineSubdivT(params *flattenParams, x float64) float64 {
	a := params.a0 + (params.a2-params.a0)*x
	u := approxParabolaInvIntegral(a)
	return (u - params.u0) * params.uscale
}

// estimateSubdiv estimates the number of subdivisions for flattening.
func (q quadBez) estimateSubdiv(sqrtTol float64) flattenParams {
	// Determine transformation to $y = x^2$ parabola.
	d01 := q.p1.Sub(q.p0)
	d12 := q.p2.Sub(q.p1)
	dd := d01.Sub(d12)
	cross := q.p2.Sub(q.p0).Perp(dd)
	x0 := d01.Dot(dd) * (1.0 / cross)
	x2 := d12.Dot(dd) * (1.0 / cross)
	scale := math.Abs(cross / (dd.Length() * (x2 - x0)))

	// Compute number of subdivisions needed.
	a0 := approxParabolaIntegral(x0)
	a2 := approxParabolaIntegral(x2)
	var val float64
	if !math.IsInf(scale, 0) {
		da := math.Abs(a2 - a0)
		sqrtScale := math.Sqrt(scale)
		if math.Signbit(x0) == math.Signbit(x2) {
			val = da * sqrtScale
		} else {
			// Handle cusp case (segment contains curvature maximum)
			xmin := sqrtTol / sqrtScale
			val = sqrtTol * da / approxParabolaIntegral(xmin)
		}
	}
	u0 := approxParabolaInvIntegral(a0)
	u2 := approxParabolaInvIntegral(a2)
	uscale := 1.0 / (u2 - u0)
	return flattenParams{
		a0:     a0,
		a2:     a2,
		u0:     u0,
		uscale: uscale,
		val:    val,
	}
}

type flattenParams struct {
	a0     float64
	a2     float64
	u0     float64
	uscale float64
	// The number of subdivisions * 2 * sqrtTol.
	val float64
}

// subdivisionCount converts an estimated number of subdivisions into a
// usable count of at least 1.
func subdivisionCount(n float64) int {
	if !(n >= 1) {
		return 1
	}
	return int(min(n, maxSubdivisions))
}

// maxSubdivisions caps the number of pieces produced for a single curve.
const maxSubdivisions = 1 << 16
