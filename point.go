package geom2d

import (
	"fmt"
	"math"

	"honnef.co/go/geom2d/observable"
)

// PointReader is the read-only capability set of a point.
type PointReader interface {
	Coords
	Distance(o Coords) float64
	DistanceSquared(o Coords) float64
	DistanceL1(o Coords) float64
	DistanceLinf(o Coords) float64
	Equal(o Coords) bool
	Hash() uint64
	String() string
}

var (
	_ PointReader = Point{}
	_ PointReader = (*ObservablePoint)(nil)
	_ PointReader = PointView{}
)

// Point is a location in the plane.
type Point struct {
	x, y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{x: x, y: y}
}

// PointOf returns a point with the coordinates of c.
func PointOf(c Coords) Point {
	return Point{x: c.X(), y: c.Y()}
}

func (p Point) X() float64 { return p.x }
func (p Point) Y() float64 { return p.y }

func (p Point) Splat() (float64, float64) {
	return p.x, p.y
}

func (p *Point) SetX(x float64) { p.x = x }
func (p *Point) SetY(y float64) { p.y = y }

func (p *Point) Set(x, y float64) {
	p.x = x
	p.y = y
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.x, p.y)
}

// Add returns p translated by v.
func (p Point) Add(v Coords) Point {
	return Point{x: p.x + v.X(), y: p.y + v.Y()}
}

// Sub computes p−o.
func (p Point) Sub(o Coords) Vector {
	return Vector{x: p.x - o.X(), y: p.y - o.Y()}
}

// Midpoint returns the midpoint of two points.
func (p Point) Midpoint(o Coords) Point {
	return Point{
		x: 0.5 * (p.x + o.X()),
		y: 0.5 * (p.y + o.Y()),
	}
}

// Transform returns the image of p under aff.
func (p Point) Transform(aff Affine) Point {
	x, y := aff.Apply(p.x, p.y)
	return Point{x: x, y: y}
}

// Distance returns the euclidean distance between two points.
func (p Point) Distance(o Coords) float64 {
	return math.Sqrt(p.DistanceSquared(o))
}

// DistanceSquared returns the squared euclidean distance between two points.
func (p Point) DistanceSquared(o Coords) float64 {
	return distanceSquared(p.x, p.y, o.X(), o.Y())
}

// DistanceL1 returns the Manhattan distance between two points.
func (p Point) DistanceL1(o Coords) float64 {
	return distanceL1(p.x, p.y, o.X(), o.Y())
}

// DistanceLinf returns the Chebyshev distance between two points.
func (p Point) DistanceLinf(o Coords) float64 {
	return distanceLinf(p.x, p.y, o.X(), o.Y())
}

// Equal reports whether p and o have bit-identical coordinates, treating 0
// and -0 as equal.
func (p Point) Equal(o Coords) bool {
	return sameFloat(p.x, o.X()) && sameFloat(p.y, o.Y())
}

// Hash returns a hash of p's coordinates, consistent with Equal.
func (p Point) Hash() uint64 {
	return hashFloats(tagTuple, p.x, p.y)
}

// IsInf reports whether at least one of x and y is infinite.
func (p Point) IsInf() bool {
	return isInf(p.x, p.y)
}

// IsNaN reports whether at least one of x and y is NaN.
func (p Point) IsNaN() bool {
	return isNaN(p.x, p.y)
}

// Unmodifiable returns a live read-only view of p.
func (p *Point) Unmodifiable() PointView {
	return PointView{p: p}
}

// ObservablePoint is a point whose coordinates are observable cells.
// The zero value is the point (0, 0).
type ObservablePoint struct {
	x, y *observable.Value[float64]
}

func NewObservablePoint(x, y float64) *ObservablePoint {
	return &ObservablePoint{
		x: observable.NewFloat(x),
		y: observable.NewFloat(y),
	}
}

func (p *ObservablePoint) init() {
	if p.x == nil {
		p.x = observable.NewFloat(0)
		p.y = observable.NewFloat(0)
	}
}

// XProperty returns the cell backing the x coordinate.
func (p *ObservablePoint) XProperty() *observable.Value[float64] {
	p.init()
	return p.x
}

// YProperty returns the cell backing the y coordinate.
func (p *ObservablePoint) YProperty() *observable.Value[float64] {
	p.init()
	return p.y
}

func (p *ObservablePoint) X() float64 { return p.XProperty().Get() }
func (p *ObservablePoint) Y() float64 { return p.YProperty().Get() }

func (p *ObservablePoint) SetX(x float64) { p.XProperty().Set(x) }
func (p *ObservablePoint) SetY(y float64) { p.YProperty().Set(y) }

func (p *ObservablePoint) Set(x, y float64) {
	p.SetX(x)
	p.SetY(y)
}

// Subscribe registers fn to be called after any coordinate changes.
func (p *ObservablePoint) Subscribe(fn func()) (cancel func()) {
	return observable.SubscribeAll(fn, p.XProperty(), p.YProperty())
}

// Point returns a snapshot of p's coordinates.
func (p *ObservablePoint) Point() Point { return PointOf(p) }

// Clone returns a new observable point with p's coordinates and no listeners.
func (p *ObservablePoint) Clone() *ObservablePoint {
	return NewObservablePoint(p.X(), p.Y())
}

func (p *ObservablePoint) Distance(o Coords) float64        { return p.Point().Distance(o) }
func (p *ObservablePoint) DistanceSquared(o Coords) float64 { return p.Point().DistanceSquared(o) }
func (p *ObservablePoint) DistanceL1(o Coords) float64      { return p.Point().DistanceL1(o) }
func (p *ObservablePoint) DistanceLinf(o Coords) float64    { return p.Point().DistanceLinf(o) }
func (p *ObservablePoint) Equal(o Coords) bool              { return p.Point().Equal(o) }
func (p *ObservablePoint) Hash() uint64                     { return p.Point().Hash() }
func (p *ObservablePoint) String() string                   { return p.Point().String() }

// Unmodifiable returns a live read-only view of p.
func (p *ObservablePoint) Unmodifiable() PointView {
	return PointView{p: p}
}
