package geom2d

import (
	"fmt"
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The convention is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY is a transform that is flipped on the y-axis. Useful for converting
// between y-up and y-down spaces.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// FlipX is a transform that is flipped on the x-axis.
var FlipX = Affine{-1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(dx, dy float64) Affine {
	return Affine{1, 0, 0, 1, dx, dy}
}

// Rotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y. The angle th is expressed in
// radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout creates an affine transform representing a rotation of th
// radians about (cx, cy).
func RotateAbout(th, cx, cy float64) Affine {
	return Translate(cx, cy).PreRotate(th).PreTranslate(-cx, -cy)
}

// Skew creates an affine transformation representing a skew. The x and y
// parameters are the skew factors for the horizontal and vertical
// directions.
func Skew(x, y float64) Affine {
	return Affine{1, y, x, 1, 0, 0}
}

// Coefficients returns the coefficients of the transform.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

// NewAffine creates a new affine transformation from an array of coefficients.
func NewAffine(n [6]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5]}
}

func (aff Affine) String() string {
	return fmt.Sprintf("Affine(%g, %g, %g, %g, %g, %g)", aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5)
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Apply returns the image of the point (x, y).
func (aff Affine) Apply(x, y float64) (float64, float64) {
	return aff.N0*x + aff.N2*y + aff.N4, aff.N1*x + aff.N3*y + aff.N5
}

// ApplyVector returns the image of the vector v, ignoring the translation.
func (aff Affine) ApplyVector(v Coords) Vector {
	return Vec(aff.N0*v.X()+aff.N2*v.Y(), aff.N1*v.X()+aff.N3*v.Y())
}

// PreRotate creates a rotation by th followed by aff.
//
// Equivalent to "aff * Rotate(th)"
func (aff Affine) PreRotate(th float64) Affine {
	return aff.Mul(Rotate(th))
}

// ThenRotate creates aff followed by a rotation of th.
//
// Equivalent to "Rotate(th) * aff"
func (aff Affine) ThenRotate(th float64) Affine {
	return Rotate(th).Mul(aff)
}

// PreScale creates a scale by (x, y) followed by aff.
func (aff Affine) PreScale(x, y float64) Affine {
	return aff.Mul(Scale(x, y))
}

// ThenScale creates aff followed by a scale of (x, y).
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// PreTranslate creates a translation by (dx, dy) followed by aff.
func (aff Affine) PreTranslate(dx, dy float64) Affine {
	return aff.Mul(Translate(dx, dy))
}

// ThenTranslate creates aff followed by a translation by (dx, dy).
func (aff Affine) ThenTranslate(dx, dy float64) Affine {
	aff.N4 += dx
	aff.N5 += dy
	return aff
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// IsIdentity reports whether aff is exactly the identity transform.
func (aff Affine) IsIdentity() bool {
	return aff == Identity
}

func (aff Affine) IsInf() bool {
	return isInf(aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5)
}

func (aff Affine) IsNaN() bool {
	return isNaN(aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5)
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vector {
	return Vec(aff.N4, aff.N5)
}

// WithTranslation replaces the translation portion of this affine
// transformation.
func (aff Affine) WithTranslation(dx, dy float64) Affine {
	aff.N4 = dx
	aff.N5 = dy
	return aff
}

// TransformBox computes the bounding box of a transformed frame.
//
// If the transform is axis-aligned, the result is the transformed frame
// itself. The returned rectangle always has non-negative width and height.
func (aff Affine) TransformBox(b Box) *Rectangle {
	x0, y0 := aff.Apply(b.MinX(), b.MinY())
	x1, y1 := aff.Apply(b.MinX(), b.MaxY())
	x2, y2 := aff.Apply(b.MaxX(), b.MinY())
	x3, y3 := aff.Apply(b.MaxX(), b.MaxY())
	return NewRectangleFromCorners(
		min(x0, x1, x2, x3), min(y0, y1, y2, y3),
		max(x0, x1, x2, x3), max(y0, y1, y2, y3),
	)
}
