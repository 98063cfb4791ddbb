package geom2d

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func square(rule WindingRule, x, y, size float64) *Path {
	p := NewPath(rule)
	p.MoveTo(x, y)
	p.LineTo(x+size, y)
	p.LineTo(x+size, y+size)
	p.LineTo(x, y+size)
	p.ClosePath()
	return p
}

func collect(t *testing.T, it PathIterator) []PathElement {
	t.Helper()
	var out []PathElement
	for it.HasNext() {
		el, err := it.Next()
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, el)
	}
	return out
}

func TestPathRequiresMoveTo(t *testing.T) {
	for name, fn := range map[string]func(p *Path){
		"LineTo":    func(p *Path) { p.LineTo(1, 1) },
		"QuadTo":    func(p *Path) { p.QuadTo(1, 1, 2, 2) },
		"CubicTo":   func(p *Path) { p.CubicTo(1, 1, 2, 2, 3, 3) },
		"ClosePath": func(p *Path) { p.ClosePath() },
	} {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s on an empty path did not panic", name)
				}
			}()
			fn(NewPath(NonZero))
		})
	}
}

func TestPathConsecutiveMoves(t *testing.T) {
	p := NewPath(NonZero)
	p.MoveTo(0, 0)
	p.MoveTo(1, 1)
	if n := p.Len(); n != 1 {
		t.Fatalf("got %d elements, want 1", n)
	}
	el, err := p.Element(0)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(1, 1), el.To())
	p.LineTo(2, 2)
	p.ClosePath()
	cur, ok := p.CurrentPoint()
	if !ok {
		t.Fatal("path has no current point")
	}
	diff(t, Pt(1, 1), cur)
}

func TestPathNoSuchElement(t *testing.T) {
	p := square(NonZero, 0, 0, 1)
	for _, i := range []int{-1, p.Len(), 100} {
		if _, err := p.Element(i); !errors.Is(err, ErrNoSuchElement) {
			t.Errorf("Element(%d): got error %v, want ErrNoSuchElement", i, err)
		}
	}

	it := p.PathIterator(nil)
	collect(t, it)
	if _, err := it.Next(); !errors.Is(err, ErrNoSuchElement) {
		t.Errorf("exhausted iterator: got error %v, want ErrNoSuchElement", err)
	}
}

func TestPathIteratorsAreIndependent(t *testing.T) {
	p := square(EvenOdd, 0, 0, 1)
	a := p.PathIterator(nil)
	b := p.PathIterator(nil)
	if _, err := a.Next(); err != nil {
		t.Fatal(err)
	}
	if _, err := a.Next(); err != nil {
		t.Fatal(err)
	}
	diff(t, collect(t, p.PathIterator(nil)), collect(t, b))
	if a.WindingRule() != EvenOdd {
		t.Errorf("got winding rule %v, want %v", a.WindingRule(), EvenOdd)
	}

	tr := Translate(10, 0)
	moved := p.PathIterator(&tr)
	tr = Identity
	first, err := moved.Next()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Pt(10, 0), first.To())
}

func TestPathBounds(t *testing.T) {
	p := NewPath(NonZero)
	p.MoveTo(0, 0)
	p.CubicTo(0, 10, 10, 10, 10, 0)
	got := frameOf(p.BoundingBox())
	want := [4]float64{0, 0, 10, 7.5}
	diff(t, want, got, cmpopts.EquateApprox(0, 1e-12))
	diff(t, [4]float64{0, 0, 10, 10}, frameOf(p.ControlBox()))

	q := NewPath(NonZero)
	q.MoveTo(0, 0)
	q.QuadTo(5, 10, 10, 0)
	diff(t, [4]float64{0, 0, 10, 5}, frameOf(q.BoundingBox()), cmpopts.EquateApprox(0, 1e-12))
}

func TestPathWinding(t *testing.T) {
	p := square(NonZero, 0, 0, 10)
	if w := p.Winding(5, 5); w != 1 {
		t.Errorf("got winding %d, want 1", w)
	}
	if w := p.Winding(15, 5); w != 0 {
		t.Errorf("got winding %d outside, want 0", w)
	}

	// Two nested squares with the same orientation.
	nested := square(NonZero, 0, 0, 10)
	if err := nested.Append(square(NonZero, 2, 2, 6).PathIterator(nil)); err != nil {
		t.Fatal(err)
	}
	if w := nested.Winding(5, 5); w != 2 {
		t.Errorf("got winding %d, want 2", w)
	}
	if !nested.Contains(5, 5) {
		t.Error("nonzero rule should fill the inner square")
	}
	nested.SetWindingRule(EvenOdd)
	if nested.Contains(5, 5) {
		t.Error("even-odd rule should leave the inner square empty")
	}
	if !nested.Contains(1, 1) {
		t.Error("even-odd rule should fill the ring")
	}
	if !nested.Contains(5, 8) {
		t.Error("points on an edge should be contained")
	}
}

func TestPathContainsRectangle(t *testing.T) {
	// A U shape whose arms contain all corners of a box spanning the gap.
	u := NewPath(NonZero)
	u.MoveTo(0, 0)
	u.LineTo(10, 0)
	u.LineTo(10, 10)
	u.LineTo(7, 10)
	u.LineTo(7, 3)
	u.LineTo(3, 3)
	u.LineTo(3, 10)
	u.LineTo(0, 10)
	u.ClosePath()

	if !u.ContainsRectangle(NewRectangle(0.5, 0.5, 9, 2)) {
		t.Error("box in the base of the U should be contained")
	}
	if u.ContainsRectangle(NewRectangle(1, 5, 8, 1)) {
		t.Error("box spanning the gap of the U should not be contained")
	}
	if u.ContainsRectangle(NewRectangle(1, 1, 0, 1)) {
		t.Error("box without area should not be contained")
	}
}

func TestPathClosestPoint(t *testing.T) {
	p := square(NonZero, 0, 0, 10)
	diff(t, Pt(10, 5), p.ClosestPointTo(Pt(15, 5)))
	diff(t, Pt(3, 3), p.ClosestPointTo(Pt(3, 3)))
	if d := p.Distance(Pt(13, 14)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	empty := NewPath(NonZero)
	empty.MoveTo(3, 4)
	if !empty.IsEmpty() {
		t.Error("a path with only a move should be empty")
	}
	diff(t, Pt(3, 4), empty.ClosestPointTo(Pt(100, 100)))
	diff(t, Pt(0, 0), NewPath(NonZero).ClosestPointTo(Pt(1, 1)))
}

func TestPathPop(t *testing.T) {
	p := NewPath(NonZero)
	if _, ok := p.Pop(); ok {
		t.Error("Pop on an empty path succeeded")
	}
	p.MoveTo(0, 0)
	p.LineTo(1, 0)
	p.LineTo(1, 1)
	el, ok := p.Pop()
	if !ok || el.Kind != LineToKind {
		t.Fatalf("got %v, %v", el, ok)
	}
	cur, _ := p.CurrentPoint()
	diff(t, Pt(1, 0), cur)
	p.LineTo(5, 5)
	last, _ := p.Element(p.Len() - 1)
	diff(t, Pt(1, 0), last.From())

	p.Pop()
	p.Pop()
	p.Pop()
	if _, ok := p.CurrentPoint(); ok {
		t.Error("an empty path should have no current point")
	}
}

func TestPathEqualAndHash(t *testing.T) {
	a := square(NonZero, 0, 0, 1)
	b := a.Clone()
	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Error("a path and its clone should be equal")
	}
	b.SetWindingRule(EvenOdd)
	if a.Equal(b) {
		t.Error("paths with different winding rules compared equal")
	}
	if a.Equal(NewRectangle(0, 0, 1, 1)) {
		t.Error("a path should not equal a rectangle with the same outline")
	}
	r := NewRectangle(0, 0, 1, 1).TransformedShape(Identity)
	if !a.Equal(r) {
		t.Errorf("got %v, want %v", r, a)
	}

	b = a.Clone()
	b.LineTo(9, 9)
	if a.Len() == b.Len() {
		t.Error("modifying a clone changed the original")
	}
}

func TestPathTransform(t *testing.T) {
	p := square(NonZero, 0, 0, 2)
	p.Translate(1, 1)
	diff(t, [4]float64{1, 1, 3, 3}, frameOf(p.BoundingBox()))
	p.Transform(Scale(2, 1))
	diff(t, [4]float64{2, 1, 6, 3}, frameOf(p.BoundingBox()))
	cur, _ := p.CurrentPoint()
	diff(t, Pt(2, 1), cur)

	// Appending continues from the current point.
	p.LineTo(0, 0)
	last, _ := p.Element(p.Len() - 1)
	diff(t, Pt(2, 1), last.From())
}

func TestPathFlatten(t *testing.T) {
	p := NewPath(NonZero)
	p.MoveTo(0, 0)
	p.QuadTo(5, 10, 10, 0)
	p.CubicTo(10, -5, 0, -5, 0, 0)
	const tolerance = 0.01
	flat := p.Flatten(tolerance)
	for el := range flat.Elements() {
		switch el.Kind {
		case MoveToKind, LineToKind, ClosePathKind:
		default:
			t.Fatalf("flattened path contains %v", el)
		}
	}
	for el := range flat.Elements() {
		if el.Kind != LineToKind {
			continue
		}
		mid := el.From().Midpoint(el.To())
		if d := p.Distance(mid); d > 1.5*tolerance && !p.ContainsPoint(mid) {
			t.Errorf("chord midpoint %v is %v away from the curve", mid, d)
		}
	}
	if l := square(NonZero, 0, 0, 10).Length(); l != 40 {
		t.Errorf("got length %v, want 40", l)
	}
	open := NewPath(NonZero)
	open.MoveTo(0, 0)
	open.LineTo(3, 4)
	open.LineTo(3, 0)
	if l := open.Length(); l != 9 {
		t.Errorf("got length %v, want 9", l)
	}
	circle := NewCircle(0, 0, 1).TransformedShape(Identity)
	if l := circle.Length(); math.Abs(l-2*math.Pi) > 1e-3 {
		t.Errorf("got circumference %v, want 2π", l)
	}
}

func TestPathFromIterator(t *testing.T) {
	tr := Translate(5, 0)
	p, err := NewPathFromIterator(NewCircle(0, 0, 1).PathIterator(&tr))
	if err != nil {
		t.Fatal(err)
	}
	if !p.Contains(5, 0) || p.Contains(0, 0) {
		t.Errorf("translated circle outline %v has the wrong interior", p)
	}
	if n := p.Len(); n != 6 {
		t.Errorf("got %d elements, want 6", n)
	}
	if p.IsNaN() || p.IsInf() {
		t.Error("finite path reported as non-finite")
	}
}

func TestPathString(t *testing.T) {
	p := NewPath(EvenOdd)
	p.MoveTo(0, 0)
	p.LineTo(1, 2)
	want := "Path[evenodd, MoveTo((0, 0)), LineTo((0, 0), (1, 2))]"
	if got := p.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

var errBrokenIterator = errors.New("broken iterator")

// brokenIterator yields the elements of a path and then fails instead of
// reporting the end.
type brokenIterator struct {
	els []PathElement
}

func (it *brokenIterator) HasNext() bool { return true }

func (it *brokenIterator) Next() (PathElement, error) {
	if len(it.els) == 0 {
		return PathElement{}, errBrokenIterator
	}
	el := it.els[0]
	it.els = it.els[1:]
	return el, nil
}

func (it *brokenIterator) WindingRule() WindingRule { return NonZero }

func TestPathAppendFailingIterator(t *testing.T) {
	src := square(NonZero, 0, 0, 1)
	prefix := collect(t, src.PathIterator(nil))[:2]

	p := NewPath(NonZero)
	err := p.Append(&brokenIterator{els: prefix})
	if !errors.Is(err, errBrokenIterator) {
		t.Fatalf("got error %v, want %v", err, errBrokenIterator)
	}
	if n := p.Len(); n != 2 {
		t.Errorf("got %d elements appended before the failure, want 2", n)
	}

	if _, err := NewPathFromIterator(&brokenIterator{els: prefix}); !errors.Is(err, errBrokenIterator) {
		t.Errorf("got error %v, want %v", err, errBrokenIterator)
	}

	defer func() {
		if recover() == nil {
			t.Error("IntersectsPath with a failing iterator did not panic")
		}
	}()
	NewRectangle(0, 0, 1, 1).IntersectsPath(&brokenIterator{els: prefix})
}

func TestPathElementsAfterMutation(t *testing.T) {
	elementsOf := func(p *Path) []PathElement {
		var out []PathElement
		for el := range p.Elements() {
			out = append(out, el)
		}
		return out
	}
	p := square(NonZero, 0, 0, 1)
	want := elementsOf(p)

	before := p.Elements()
	p.Clear()
	p.MoveTo(5, 5)
	p.LineTo(6, 6)
	var got []PathElement
	for el := range before {
		got = append(got, el)
	}
	diff(t, want, got)
	if n := p.Len(); n != 2 {
		t.Errorf("got %d elements after Clear, want 2", n)
	}

	q := square(NonZero, 0, 0, 1)
	full := elementsOf(q)
	seq := q.Elements()
	q.Pop()
	q.LineTo(9, 9)
	got = got[:0]
	for el := range seq {
		got = append(got, el)
	}
	diff(t, full, got)
}
