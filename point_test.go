package geom2d

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Add(Vec(-10, 0)))
	diff(t, Vec(3, -4), Pt(4, 1).Sub(Pt(1, 5)))
	diff(t, Pt(2, 3), Pt(0, 0).Midpoint(Pt(4, 6)))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	if d := p3.DistanceSquared(p4); d != 25 {
		t.Errorf("got squared distance %v, want 25", d)
	}
	if d := p3.DistanceL1(p4); d != 7 {
		t.Errorf("got L1 distance %v, want 7", d)
	}
	if d := p3.DistanceLinf(p4); d != 4 {
		t.Errorf("got L∞ distance %v, want 4", d)
	}
}

func TestPointEqual(t *testing.T) {
	if !Pt(0, 1).Equal(Pt(math.Copysign(0, -1), 1)) {
		t.Error("0 and -0 should be equal")
	}
	if Pt(0, 1).Hash() != Pt(math.Copysign(0, -1), 1).Hash() {
		t.Error("0 and -0 should hash identically")
	}
	nan := Pt(math.NaN(), 0)
	if !nan.Equal(nan) {
		t.Error("a NaN point should equal itself")
	}
	if Pt(1, 2).Equal(Pt(2, 1)) {
		t.Error("swapped coordinates compared equal")
	}
	if Pt(1, 2).Hash() == Pt(2, 1).Hash() {
		t.Error("swapped coordinates hashed identically")
	}
}

func TestPointTransform(t *testing.T) {
	assertNear(t, Pt(1, 0).Transform(Rotate(math.Pi/2)), Pt(0, 1), 1e-12)
	diff(t, Pt(4, 6), Pt(1, 2).Transform(Translate(3, 4)))
}

func TestPointViewIsLive(t *testing.T) {
	p := Pt(1, 2)
	v := p.Unmodifiable()
	p.Set(3, 4)
	if v.X() != 3 || v.Y() != 4 {
		t.Errorf("got view %v, want (3, 4)", v)
	}
	diff(t, Pt(3, 4), v.Point())

	op := NewObservablePoint(1, 2)
	ov := op.Unmodifiable()
	op.SetX(7)
	if ov.X() != 7 {
		t.Errorf("got view x %v, want 7", ov.X())
	}
}

func TestObservablePoint(t *testing.T) {
	var p ObservablePoint
	if p.X() != 0 || p.Y() != 0 {
		t.Fatalf("zero value is %v, want (0, 0)", p.Point())
	}
	var calls int
	cancel := p.Subscribe(func() { calls++ })
	p.Set(1, 2)
	if calls != 2 {
		t.Errorf("got %d notifications, want 2", calls)
	}
	p.Set(1, 2)
	if calls != 2 {
		t.Errorf("setting unchanged coordinates notified, got %d calls", calls)
	}
	var olds, news []float64
	p.XProperty().OnChange(func(old, new float64) {
		olds = append(olds, old)
		news = append(news, new)
	})
	p.SetX(5)
	diff(t, []float64{1}, olds)
	diff(t, []float64{5}, news)
	cancel()
	p.SetY(9)
	if calls != 3 {
		t.Errorf("got %d notifications after cancel, want 3", calls)
	}

	c := p.Clone()
	c.SetX(100)
	if p.X() != 5 {
		t.Errorf("modifying a clone changed the original to %v", p.Point())
	}
}

func TestTupleHashIgnoresRole(t *testing.T) {
	p := Pt(1, 2)
	v := Vec(1, 2)
	if !p.Equal(v) || !v.Equal(p) {
		t.Fatal("a point and a vector with the same coordinates should be equal")
	}
	if p.Hash() != v.Hash() {
		t.Error("equal tuples hash differently")
	}
	if NewRectangle(1, 2, 3, 4).Hash() == NewEllipse(1, 2, 3, 4).Hash() {
		t.Error("a rectangle and an ellipse with the same frame hashed identically")
	}
}
