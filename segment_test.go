package geom2d

import (
	"testing"
)

func TestSegmentDistances(t *testing.T) {
	s := NewSegment(0, 0, 5, 5)
	if d := s.DistanceL1(Pt(5, 0)); d != 5 {
		t.Errorf("got L1 distance %v, want 5", d)
	}
	diff(t, Pt(2.5, 2.5), s.ClosestPointTo(Pt(5, 0)))
	diff(t, Pt(0, 0), s.ClosestPointTo(Pt(-3, -1)))
	diff(t, Pt(5, 5), s.ClosestPointTo(Pt(9, 9)))
	diff(t, Pt(5, 5), s.FarthestPointTo(Pt(-1, 0)))

	var empty Segment
	if d := empty.Distance(Pt(3, 4)); d != 5 {
		t.Errorf("got distance %v to a degenerate segment, want 5", d)
	}
}

func TestSegmentContains(t *testing.T) {
	s := NewSegment(0, 0, 10, 0)
	for _, p := range []Point{Pt(0, 0), Pt(5, 0), Pt(10, 0), Pt(5, 1e-12)} {
		if !s.ContainsPoint(p) {
			t.Errorf("%v should contain %v", s, p)
		}
	}
	for _, p := range []Point{Pt(11, 0), Pt(5, 1e-6)} {
		if s.ContainsPoint(p) {
			t.Errorf("%v should not contain %v", s, p)
		}
	}
	if s.ContainsRectangle(NewRectangle(1, 0, 1, 0)) {
		t.Error("a segment should not contain rectangles")
	}
}

func TestSegmentSetters(t *testing.T) {
	var s Segment
	if !s.IsEmpty() {
		t.Error("zero segment should be empty")
	}
	s.Set(1, 2, 4, 6)
	if l := s.Length(); l != 5 {
		t.Errorf("got length %v, want 5", l)
	}
	if l := s.LengthSquared(); l != 25 {
		t.Errorf("got squared length %v, want 25", l)
	}
	diff(t, Vec(3, 4), s.Direction())
	s.SetP1(4, 2)
	s.SetP2(4, 2)
	if !s.IsEmpty() {
		t.Errorf("%v should be empty", &s)
	}

	s.SetFromShape(NewRectangleFromCorners(5, 1, -1, 3))
	diff(t, Pt(-1, 1), s.P1())
	diff(t, Pt(5, 3), s.P2())
	s.SetFromShape(NewSegment(9, 8, 7, 6))
	diff(t, Pt(9, 8), s.P1())
	diff(t, Pt(7, 6), s.P2())

	s.Translate(1, 1)
	diff(t, [4]float64{8, 7, 10, 9}, frameOf(s.BoundingBox()))
}

func TestSegmentOutline(t *testing.T) {
	s := NewSegment(1, 2, 3, 4)
	var got []PathElement
	it := s.PathIterator(nil)
	for it.HasNext() {
		el, err := it.Next()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, el)
	}
	want := []PathElement{
		{Kind: MoveToKind, ToX: 1, ToY: 2},
		{Kind: LineToKind, FromX: 1, FromY: 2, ToX: 3, ToY: 4},
	}
	diff(t, want, got)
	if s.TransformedShape(Identity).Contains(2, 3.5) {
		t.Error("the outline of a segment should not enclose area")
	}
}

func TestObservableSegment(t *testing.T) {
	s := NewObservableSegment(0, 0, 1, 1)
	var calls int
	s.Subscribe(func() { calls++ })
	s.SetP2(1, 5)
	if calls != 1 {
		t.Errorf("got %d notifications, want 1", calls)
	}
	props := s.Properties()
	if props[3].Get() != 5 {
		t.Errorf("got y2 cell %v, want 5", props[3].Get())
	}
	if !s.Equal(NewSegment(0, 0, 1, 5)) {
		t.Errorf("%v should equal its plain counterpart", s)
	}
	c := s.Clone()
	c.Clear()
	if s.IsEmpty() {
		t.Error("clearing a clone cleared the original")
	}
}

func TestObservableSegmentProperties(t *testing.T) {
	s := NewObservableSegment(0, 0, 1, 1)
	props := s.Properties()
	assertNotSettable(t, props[0], props[1], props[2], props[3])
	var calls int
	props[0].Subscribe(func() { calls++ })
	s.SetP1(2, 0)
	if calls != 1 || props[0].Get() != 2 {
		t.Errorf("got %d notifications and x1 %v, want 1 and 2", calls, props[0].Get())
	}
}
