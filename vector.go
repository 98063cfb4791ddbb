package geom2d

import (
	"fmt"
	"math"

	"honnef.co/go/geom2d/observable"
)

// UnitVectorEpsilon is the tolerance used by IsUnitVector on the squared
// length.
const UnitVectorEpsilon = 1e-5

// VectorReader is the read-only capability set of a vector.
type VectorReader interface {
	Coords
	Length() float64
	LengthSquared() float64
	Dot(o Coords) float64
	Perp(o Coords) float64
	Angle(o Coords) float64
	SignedAngle(o Coords) float64
	IsUnitVector() bool
	Equal(o Coords) bool
	Hash() uint64
	String() string
}

var (
	_ VectorReader = Vector{}
	_ VectorReader = (*ObservableVector)(nil)
	_ VectorReader = VectorView{}
)

// Vector is a displacement in the plane.
type Vector struct {
	x, y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vector {
	return Vector{x: x, y: y}
}

// VectorOf returns a vector with the coordinates of c.
func VectorOf(c Coords) Vector {
	return Vector{x: c.X(), y: c.Y()}
}

// VecFromAngle returns a unit vector of the given angle, which is expressed
// in radians. With θ = 0, the result is the positive x unit vector.
func VecFromAngle(th float64) Vector {
	y, x := math.Sincos(th)
	return Vector{x: x, y: y}
}

func (v Vector) X() float64 { return v.x }
func (v Vector) Y() float64 { return v.y }

// Splat returns the vector's x and y coordinates.
func (v Vector) Splat() (float64, float64) {
	return v.x, v.y
}

func (v *Vector) SetX(x float64) { v.x = x }
func (v *Vector) SetY(y float64) { v.y = y }

func (v *Vector) Set(x, y float64) {
	v.x = x
	v.y = y
}

func (v Vector) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.x, v.y)
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector.
func (v Vector) LengthSquared() float64 {
	return v.x*v.x + v.y*v.y
}

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Coords) float64 {
	return v.x*o.X() + v.y*o.Y()
}

// Perp returns the perpendicular product of v and o, the z component of
// their cross product.
func (v Vector) Perp(o Coords) float64 {
	return v.x*o.Y() - v.y*o.X()
}

// Angle returns the unsigned angle between v and o in [0, π]. The angle is
// NaN if either vector has zero length.
func (v Vector) Angle(o Coords) float64 {
	return math.Abs(v.SignedAngle(o))
}

// SignedAngle returns the angle in [−π, π] that rotates v onto o. It is
// positive when o is counter-clockwise of v in a y-up coordinate system. The
// angle is NaN if either vector has zero length.
func (v Vector) SignedAngle(o Coords) float64 {
	if v.LengthSquared() == 0 || o.X()*o.X()+o.Y()*o.Y() == 0 {
		return math.NaN()
	}
	return math.Atan2(v.Perp(o), v.Dot(o))
}

// IsUnitVector reports whether the vector has a length of 1, within
// UnitVectorEpsilon.
func (v Vector) IsUnitVector() bool {
	return math.Abs(v.LengthSquared()-1) <= UnitVectorEpsilon
}

// Add adds two vectors and returns the resulting vector.
func (v Vector) Add(o Coords) Vector {
	return Vector{x: v.x + o.X(), y: v.y + o.Y()}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vector) Sub(o Coords) Vector {
	return Vector{x: v.x - o.X(), y: v.y - o.Y()}
}

func (v Vector) Scale(f float64) Vector {
	return Vector{x: v.x * f, y: v.y * f}
}

// Normalize returns a vector of length 1 with the same angle as v.
// This produces a NaN vector if the length is 0.
func (v Vector) Normalize() Vector {
	return v.Scale(1 / v.Length())
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vector) Negate() Vector {
	return Vector{x: -v.x, y: -v.y}
}

// Orthogonal returns v rotated by 90° counter-clockwise.
func (v Vector) Orthogonal() Vector {
	return Vector{x: -v.y, y: v.x}
}

func (v Vector) Equal(o Coords) bool {
	return sameFloat(v.x, o.X()) && sameFloat(v.y, o.Y())
}

func (v Vector) Hash() uint64 {
	return hashFloats(tagTuple, v.x, v.y)
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vector) IsInf() bool {
	return isInf(v.x, v.y)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vector) IsNaN() bool {
	return isNaN(v.x, v.y)
}

// Unmodifiable returns a live read-only view of v.
func (v *Vector) Unmodifiable() VectorView {
	return VectorView{v: v}
}

// ObservableVector is a vector whose coordinates are observable cells. Its
// length is a binding over the coordinates, recomputed on first use after a
// change.
type ObservableVector struct {
	x, y          *observable.Value[float64]
	lengthSquared *observable.Binding[float64]
	length        *observable.Binding[float64]
}

func NewObservableVector(x, y float64) *ObservableVector {
	v := &ObservableVector{}
	v.initFrom(x, y)
	return v
}

func (v *ObservableVector) initFrom(x, y float64) {
	v.x = observable.NewFloat(x)
	v.y = observable.NewFloat(y)
	v.lengthSquared = observable.Bind(func() float64 {
		x, y := v.x.Get(), v.y.Get()
		return x*x + y*y
	}, v.x, v.y)
	v.length = observable.Bind(func() float64 {
		return math.Sqrt(v.lengthSquared.Get())
	}, v.lengthSquared)
}

func (v *ObservableVector) init() {
	if v.x == nil {
		v.initFrom(0, 0)
	}
}

func (v *ObservableVector) XProperty() *observable.Value[float64] {
	v.init()
	return v.x
}

func (v *ObservableVector) YProperty() *observable.Value[float64] {
	v.init()
	return v.y
}

// LengthProperty returns the binding computing the vector's length.
func (v *ObservableVector) LengthProperty() *observable.Binding[float64] {
	v.init()
	return v.length
}

// LengthSquaredProperty returns the binding computing the vector's squared
// length.
func (v *ObservableVector) LengthSquaredProperty() *observable.Binding[float64] {
	v.init()
	return v.lengthSquared
}

func (v *ObservableVector) X() float64 { return v.XProperty().Get() }
func (v *ObservableVector) Y() float64 { return v.YProperty().Get() }

func (v *ObservableVector) SetX(x float64) { v.XProperty().Set(x) }
func (v *ObservableVector) SetY(y float64) { v.YProperty().Set(y) }

func (v *ObservableVector) Set(x, y float64) {
	v.SetX(x)
	v.SetY(y)
}

// Subscribe registers fn to be called after any coordinate changes.
func (v *ObservableVector) Subscribe(fn func()) (cancel func()) {
	return observable.SubscribeAll(fn, v.XProperty(), v.YProperty())
}

// Vector returns a snapshot of v's coordinates.
func (v *ObservableVector) Vector() Vector { return VectorOf(v) }

// Clone returns a new observable vector with v's coordinates and no
// listeners.
func (v *ObservableVector) Clone() *ObservableVector {
	return NewObservableVector(v.X(), v.Y())
}

func (v *ObservableVector) Length() float64 { return v.LengthProperty().Get() }

func (v *ObservableVector) LengthSquared() float64 { return v.LengthSquaredProperty().Get() }

func (v *ObservableVector) Dot(o Coords) float64         { return v.Vector().Dot(o) }
func (v *ObservableVector) Perp(o Coords) float64        { return v.Vector().Perp(o) }
func (v *ObservableVector) Angle(o Coords) float64       { return v.Vector().Angle(o) }
func (v *ObservableVector) SignedAngle(o Coords) float64 { return v.Vector().SignedAngle(o) }
func (v *ObservableVector) Equal(o Coords) bool          { return v.Vector().Equal(o) }
func (v *ObservableVector) Hash() uint64                 { return v.Vector().Hash() }
func (v *ObservableVector) String() string               { return v.Vector().String() }

func (v *ObservableVector) IsUnitVector() bool {
	return math.Abs(v.LengthSquared()-1) <= UnitVectorEpsilon
}

// Unmodifiable returns a live read-only view of v.
func (v *ObservableVector) Unmodifiable() VectorView {
	return VectorView{v: v}
}
