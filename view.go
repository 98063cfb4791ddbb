package geom2d

// PointView is a read-only view of a point. It is not a snapshot: it
// reports the current coordinates of the point it was created from.
type PointView struct {
	p PointReader
}

func (v PointView) X() float64                       { return v.p.X() }
func (v PointView) Y() float64                       { return v.p.Y() }
func (v PointView) Distance(o Coords) float64        { return v.p.Distance(o) }
func (v PointView) DistanceSquared(o Coords) float64 { return v.p.DistanceSquared(o) }
func (v PointView) DistanceL1(o Coords) float64      { return v.p.DistanceL1(o) }
func (v PointView) DistanceLinf(o Coords) float64    { return v.p.DistanceLinf(o) }
func (v PointView) Equal(o Coords) bool              { return v.p.Equal(o) }
func (v PointView) Hash() uint64                     { return v.p.Hash() }
func (v PointView) String() string                   { return v.p.String() }

// Point returns a snapshot of the viewed coordinates.
func (v PointView) Point() Point { return PointOf(v.p) }

// VectorView is a read-only view of a vector. It is not a snapshot: it
// reports the current coordinates of the vector it was created from.
type VectorView struct {
	v VectorReader
}

func (v VectorView) X() float64                   { return v.v.X() }
func (v VectorView) Y() float64                   { return v.v.Y() }
func (v VectorView) Length() float64              { return v.v.Length() }
func (v VectorView) LengthSquared() float64       { return v.v.LengthSquared() }
func (v VectorView) Dot(o Coords) float64         { return v.v.Dot(o) }
func (v VectorView) Perp(o Coords) float64        { return v.v.Perp(o) }
func (v VectorView) Angle(o Coords) float64       { return v.v.Angle(o) }
func (v VectorView) SignedAngle(o Coords) float64 { return v.v.SignedAngle(o) }
func (v VectorView) IsUnitVector() bool           { return v.v.IsUnitVector() }
func (v VectorView) Equal(o Coords) bool          { return v.v.Equal(o) }
func (v VectorView) Hash() uint64                 { return v.v.Hash() }
func (v VectorView) String() string               { return v.v.String() }

// Vector returns a snapshot of the viewed coordinates.
func (v VectorView) Vector() Vector { return VectorOf(v.v) }
