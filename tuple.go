package geom2d

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Coords is read access to a pair of coordinates. It is implemented by every
// point and vector type in this package, including the unmodifiable views.
type Coords interface {
	X() float64
	Y() float64
}

// Tuple is a mutable pair of coordinates. Writes are not validated.
type Tuple interface {
	Coords
	SetX(x float64)
	SetY(y float64)
	Set(x, y float64)
}

var (
	_ Tuple = (*Point)(nil)
	_ Tuple = (*Vector)(nil)
	_ Tuple = (*ObservablePoint)(nil)
	_ Tuple = (*ObservableVector)(nil)
)

// floatBits returns the bit pattern of v with -0 mapped to +0.
func floatBits(v float64) uint64 {
	if v == 0 {
		return 0
	}
	return math.Float64bits(v)
}

// sameFloat reports whether a and b have the same bit pattern, treating 0
// and -0 as equal.
func sameFloat(a, b float64) bool {
	return floatBits(a) == floatBits(b)
}

// sameCoords compares all pairs of a and b with sameFloat.
func sameCoords(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !sameFloat(a[i], b[i]) {
			return false
		}
	}
	return true
}

// hashFloats hashes a type tag followed by the normalized bit patterns of vs.
func hashFloats(tag byte, vs ...float64) uint64 {
	var buf [1 + 8*8]byte
	b := append(buf[:0], tag)
	for _, v := range vs {
		b = binary.LittleEndian.AppendUint64(b, floatBits(v))
	}
	return xxhash.Sum64(b)
}

// Hash tags. They keep a rectangle and an ellipse with equal frames, or
// other shapes sharing their coordinates, from trivially colliding. Points
// and vectors share tagTuple because tuples with equal coordinates are equal.
const (
	tagTuple byte = iota + 1
	tagRectangle
	tagEllipse
	tagCircle
	tagSegment
	tagPathElement
	tagPath
)

func distanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

func distanceL1(x1, y1, x2, y2 float64) float64 {
	return math.Abs(x1-x2) + math.Abs(y1-y2)
}

func distanceLinf(x1, y1, x2, y2 float64) float64 {
	return max(math.Abs(x1-x2), math.Abs(y1-y2))
}

func isInf(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) {
			return true
		}
	}
	return false
}

func isNaN(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
