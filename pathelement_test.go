package geom2d

import (
	"errors"
	"math"
	"testing"
)

func TestNewPathElement(t *testing.T) {
	el, err := NewPathElement(CubicToKind, 1, 2, []float64{3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatal(err)
	}
	want := PathElement{Kind: CubicToKind, FromX: 1, FromY: 2, Ctrl1X: 3, Ctrl1Y: 4, Ctrl2X: 5, Ctrl2Y: 6, ToX: 7, ToY: 8}
	diff(t, want, el)
	diff(t, []float64{3, 4, 5, 6, 7, 8}, el.ToArray())

	move, err := NewPathElement(MoveToKind, 9, 9, []float64{1, 1})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(0, 0), move.From())

	quad, err := NewPathElement(QuadToKind, 0, 0, []float64{1, 2, 3, 4, 99, 99})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []float64{1, 2, 3, 4}, quad.ToArray())
	if quad.Ctrl2X != 0 || quad.Ctrl2Y != 0 {
		t.Errorf("unused control point set in %v", quad)
	}

	if _, err := NewPathElement(PathElementKind(42), 0, 0, nil); !errors.Is(err, ErrNoSuchElement) {
		t.Errorf("got error %v, want ErrNoSuchElement", err)
	}
	if _, err := NewPathElement(LineToKind, 0, 0, []float64{1}); !errors.Is(err, ErrMissingCoordinates) {
		t.Errorf("got error %v, want ErrMissingCoordinates", err)
	}
}

func TestPathElementIsEmpty(t *testing.T) {
	tests := []struct {
		el       PathElement
		empty    bool
		drawable bool
	}{
		{PathElement{Kind: MoveToKind, ToX: 1, ToY: 1}, true, false},
		{PathElement{Kind: LineToKind, FromX: 1, FromY: 1, ToX: 1, ToY: 1}, true, false},
		{PathElement{Kind: LineToKind, FromX: 1, FromY: 1, ToX: 2, ToY: 1}, false, true},
		{PathElement{Kind: QuadToKind, FromX: 1, FromY: 1, Ctrl1X: 2, Ctrl1Y: 2, ToX: 1, ToY: 1}, false, true},
		{PathElement{Kind: CubicToKind}, true, false},
		{PathElement{Kind: ClosePathKind, FromX: 3, ToX: 0}, false, true},
	}
	for _, tt := range tests {
		if got := tt.el.IsEmpty(); got != tt.empty {
			t.Errorf("%v.IsEmpty() = %v, want %v", tt.el, got, tt.empty)
		}
		if got := tt.el.IsDrawable(); got != tt.drawable {
			t.Errorf("%v.IsDrawable() = %v, want %v", tt.el, got, tt.drawable)
		}
	}
}

func TestPathElementEqual(t *testing.T) {
	a := PathElement{Kind: LineToKind, FromX: 0, ToX: 1, ToY: 2}
	b := PathElement{Kind: LineToKind, FromX: math.Copysign(0, -1), ToX: 1, ToY: 2}
	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Error("elements differing only in the sign of zero should be equal")
	}
	c := a
	c.Kind = ClosePathKind
	if a.Equal(c) {
		t.Error("elements of different kinds compared equal")
	}
	if a.Hash() == c.Hash() {
		t.Error("elements of different kinds hashed identically")
	}
}

func TestPathElementTransform(t *testing.T) {
	move := PathElement{Kind: MoveToKind, ToX: 1, ToY: 1}
	diff(t, PathElement{Kind: MoveToKind, ToX: 4, ToY: 5}, move.Transform(Translate(3, 4)))

	quad := PathElement{Kind: QuadToKind, FromX: 1, Ctrl1X: 2, Ctrl1Y: 2, ToX: 3}
	want := PathElement{Kind: QuadToKind, FromX: 2, Ctrl1X: 4, Ctrl1Y: 2, ToX: 6}
	diff(t, want, quad.Transform(Scale(2, 1)))
}

func TestPathElementKind(t *testing.T) {
	for kind, n := range map[PathElementKind]int{
		MoveToKind:    2,
		LineToKind:    2,
		QuadToKind:    4,
		CubicToKind:   6,
		ClosePathKind: 2,
		0:             0,
	} {
		if got := kind.Coordinates(); got != n {
			t.Errorf("%v.Coordinates() = %d, want %d", kind, got, n)
		}
	}
	if s := PathElementKind(9).String(); s != "PathElementKind(9)" {
		t.Errorf("got %q", s)
	}
}
