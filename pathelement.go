package geom2d

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSuchElement is returned when a path element is requested that
	// does not exist: an invalid element kind, an out of range index, or an
	// exhausted iterator.
	ErrNoSuchElement = errors.New("no such path element")
	// ErrMissingCoordinates is returned when too few coordinates are given
	// for a path element's kind.
	ErrMissingCoordinates = errors.New("missing path element coordinates")
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier curve using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier curve using the current location and the three points.
	CubicToKind
	// Close off the subpath with a line back to its first point.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case CubicToKind:
		return "CubicTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return fmt.Sprintf("PathElementKind(%d)", int(k))
	}
}

// Coordinates returns the number of coordinates, excluding the from point,
// that describe an element of kind k, or 0 if k is not a valid kind.
func (k PathElementKind) Coordinates() int {
	switch k {
	case MoveToKind, LineToKind, ClosePathKind:
		return 2
	case QuadToKind:
		return 4
	case CubicToKind:
		return 6
	default:
		return 0
	}
}

// PathElement is one element of a path.
//
// All coordinate fields are present regardless of the kind; fields not used
// by the kind are zero. The from point is the end point of the previous
// element. For MoveToKind, it is always zero. For ClosePathKind, the to point
// is the first point of the subpath being closed. QuadToKind uses only the
// first control point.
type PathElement struct {
	Kind PathElementKind

	FromX, FromY   float64
	Ctrl1X, Ctrl1Y float64
	Ctrl2X, Ctrl2Y float64
	ToX, ToY       float64
}

// NewPathElement returns an element of the given kind starting at (fromX,
// fromY). coords holds the control points and the end point, in that order,
// as returned by [PathElement.ToArray].
func NewPathElement(kind PathElementKind, fromX, fromY float64, coords []float64) (PathElement, error) {
	n := kind.Coordinates()
	if n == 0 {
		return PathElement{}, fmt.Errorf("path element kind %d: %w", int(kind), ErrNoSuchElement)
	}
	if len(coords) < n {
		return PathElement{}, fmt.Errorf("%s needs %d coordinates, got %d: %w", kind, n, len(coords), ErrMissingCoordinates)
	}
	el := PathElement{Kind: kind, FromX: fromX, FromY: fromY}
	switch kind {
	case MoveToKind:
		el.FromX, el.FromY = 0, 0
		el.ToX, el.ToY = coords[0], coords[1]
	case LineToKind, ClosePathKind:
		el.ToX, el.ToY = coords[0], coords[1]
	case QuadToKind:
		el.Ctrl1X, el.Ctrl1Y = coords[0], coords[1]
		el.ToX, el.ToY = coords[2], coords[3]
	case CubicToKind:
		el.Ctrl1X, el.Ctrl1Y = coords[0], coords[1]
		el.Ctrl2X, el.Ctrl2Y = coords[2], coords[3]
		el.ToX, el.ToY = coords[4], coords[5]
	}
	return el, nil
}

func (el PathElement) From() Point  { return Pt(el.FromX, el.FromY) }
func (el PathElement) Ctrl1() Point { return Pt(el.Ctrl1X, el.Ctrl1Y) }
func (el PathElement) Ctrl2() Point { return Pt(el.Ctrl2X, el.Ctrl2Y) }
func (el PathElement) To() Point    { return Pt(el.ToX, el.ToY) }

// AppendCoords appends the coordinates of the element, except for the from
// point, to dst.
func (el PathElement) AppendCoords(dst []float64) []float64 {
	switch el.Kind {
	case MoveToKind, LineToKind, ClosePathKind:
		return append(dst, el.ToX, el.ToY)
	case QuadToKind:
		return append(dst, el.Ctrl1X, el.Ctrl1Y, el.ToX, el.ToY)
	case CubicToKind:
		return append(dst, el.Ctrl1X, el.Ctrl1Y, el.Ctrl2X, el.Ctrl2Y, el.ToX, el.ToY)
	default:
		return dst
	}
}

// ToArray returns the coordinates of the element, except for the from point.
func (el PathElement) ToArray() []float64 {
	return el.AppendCoords(make([]float64, 0, el.Kind.Coordinates()))
}

// IsEmpty reports whether the element draws nothing, that is, whether all of
// its points coincide with the from point. Move elements are always empty.
func (el PathElement) IsEmpty() bool {
	from := el.From()
	switch el.Kind {
	case MoveToKind:
		return true
	case LineToKind, ClosePathKind:
		return from.Equal(el.To())
	case QuadToKind:
		return from.Equal(el.Ctrl1()) && from.Equal(el.To())
	case CubicToKind:
		return from.Equal(el.Ctrl1()) && from.Equal(el.Ctrl2()) && from.Equal(el.To())
	default:
		return true
	}
}

// IsDrawable reports whether the element produces visible output.
func (el PathElement) IsDrawable() bool {
	return el.Kind != MoveToKind && !el.IsEmpty()
}

func (el PathElement) coords() [8]float64 {
	return [8]float64{el.FromX, el.FromY, el.Ctrl1X, el.Ctrl1Y, el.Ctrl2X, el.Ctrl2Y, el.ToX, el.ToY}
}

// Equal reports whether both elements have the same kind and bit-identical
// coordinates, treating 0 and -0 as equal.
func (el PathElement) Equal(o PathElement) bool {
	a, b := el.coords(), o.coords()
	return el.Kind == o.Kind && sameCoords(a[:], b[:])
}

func (el PathElement) Hash() uint64 {
	c := el.coords()
	return hashFloats(tagPathElement+byte(el.Kind)<<4, c[:]...)
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.To())
	case LineToKind:
		return fmt.Sprintf("LineTo(%s, %s)", el.From(), el.To())
	case QuadToKind:
		return fmt.Sprintf("QuadTo(%s, %s, %s)", el.From(), el.Ctrl1(), el.To())
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s, %s)", el.From(), el.Ctrl1(), el.Ctrl2(), el.To())
	case ClosePathKind:
		return fmt.Sprintf("ClosePath(%s, %s)", el.From(), el.To())
	default:
		return "InvalidPathElement"
	}
}

// Transform returns the image of the element under aff. Unused coordinates
// stay zero.
func (el PathElement) Transform(aff Affine) PathElement {
	out := PathElement{Kind: el.Kind}
	if el.Kind != MoveToKind {
		out.FromX, out.FromY = aff.Apply(el.FromX, el.FromY)
	}
	switch el.Kind {
	case QuadToKind:
		out.Ctrl1X, out.Ctrl1Y = aff.Apply(el.Ctrl1X, el.Ctrl1Y)
	case CubicToKind:
		out.Ctrl1X, out.Ctrl1Y = aff.Apply(el.Ctrl1X, el.Ctrl1Y)
		out.Ctrl2X, out.Ctrl2Y = aff.Apply(el.Ctrl2X, el.Ctrl2Y)
	}
	out.ToX, out.ToY = aff.Apply(el.ToX, el.ToY)
	return out
}

func (el PathElement) translate(dx, dy float64) PathElement {
	return el.Transform(Translate(dx, dy))
}

func (el PathElement) IsInf() bool {
	c := el.coords()
	return isInf(c[:]...)
}

func (el PathElement) IsNaN() bool {
	c := el.coords()
	return isNaN(c[:]...)
}
