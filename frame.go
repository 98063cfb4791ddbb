package geom2d

import (
	"honnef.co/go/geom2d/observable"
)

// RectangularShape is a shape defined by an axis-aligned frame. Every
// mutation preserves MinX() <= MaxX() and MinY() <= MaxY(), with the
// exception of Inflate, which applies its deltas as given.
type RectangularShape interface {
	Shape
	Box

	Width() float64
	Height() float64
	CenterX() float64
	CenterY() float64

	// SetMinX sets the lower x bound. If x is greater than the current
	// upper bound, the old upper bound becomes the lower bound and x becomes
	// the upper bound. The other single-bound setters behave the same way.
	SetMinX(x float64)
	SetMaxX(x float64)
	SetMinY(y float64)
	SetMaxY(y float64)

	// SetFromCorners sets the frame spanned by two arbitrary corners.
	SetFromCorners(x1, y1, x2, y2 float64)
	// SetFromCenter sets the frame centered on (cx, cy) with one corner at
	// (cornerX, cornerY).
	SetFromCenter(cx, cy, cornerX, cornerY float64)
	// Set sets the frame spanned by (x, y) and (x+width, y+height).
	Set(x, y, width, height float64)
	// SetWidth moves the upper x bound so that the width is max(0, w).
	SetWidth(w float64)
	// SetHeight moves the upper y bound so that the height is max(0, h).
	SetHeight(h float64)
	// Inflate moves the bounds outwards by the given amounts. The result is
	// not normalized.
	Inflate(left, top, right, bottom float64)
}

var (
	_ RectangularShape = (*Rectangle)(nil)
	_ RectangularShape = (*ObservableRectangle)(nil)
	_ RectangularShape = (*Ellipse)(nil)
	_ RectangularShape = (*ObservableEllipse)(nil)
)

// frameStorage stores the four bounds of a frame.
type frameStorage interface {
	bounds() (minX, minY, maxX, maxY float64)
	setBounds(minX, minY, maxX, maxY float64)
}

type framePtr[S any] interface {
	*S
	frameStorage
}

// frame implements the normalization rules of rectangular shapes once, over
// either kind of storage.
type frame[S any, PS framePtr[S]] struct {
	s S
}

func (f *frame[S, PS]) store() PS { return PS(&f.s) }

func (f *frame[S, PS]) frameBox() box {
	minX, minY, maxX, maxY := f.store().bounds()
	return box{minX, minY, maxX, maxY}
}

func (f *frame[S, PS]) MinX() float64 { return f.frameBox().minX }
func (f *frame[S, PS]) MinY() float64 { return f.frameBox().minY }
func (f *frame[S, PS]) MaxX() float64 { return f.frameBox().maxX }
func (f *frame[S, PS]) MaxY() float64 { return f.frameBox().maxY }

func (f *frame[S, PS]) Width() float64 {
	b := f.frameBox()
	return b.maxX - b.minX
}

func (f *frame[S, PS]) Height() float64 {
	b := f.frameBox()
	return b.maxY - b.minY
}

func (f *frame[S, PS]) CenterX() float64 {
	b := f.frameBox()
	return (b.minX + b.maxX) / 2
}

func (f *frame[S, PS]) CenterY() float64 {
	b := f.frameBox()
	return (b.minY + b.maxY) / 2
}

// Center returns the center of the frame.
func (f *frame[S, PS]) Center() Point {
	return Pt(f.CenterX(), f.CenterY())
}

// IsEmpty reports whether the frame has both zero width and zero height.
func (f *frame[S, PS]) IsEmpty() bool {
	b := f.frameBox()
	return b.minX == b.maxX && b.minY == b.maxY
}

func (f *frame[S, PS]) setInitiallyFromCorners(x1, y1, x2, y2 float64) {
	f.store().setBounds(min(x1, x2), min(y1, y2), max(x1, x2), max(y1, y2))
}

// setLower returns the new (lower, upper) pair after setting the lower bound
// to v.
func setLower(v, upper float64) (float64, float64) {
	if v <= upper {
		return v, upper
	}
	return upper, v
}

// setUpper returns the new (lower, upper) pair after setting the upper bound
// to v.
func setUpper(lower, v float64) (float64, float64) {
	if v >= lower {
		return lower, v
	}
	return v, lower
}

func (f *frame[S, PS]) SetMinX(x float64) {
	b := f.frameBox()
	b.minX, b.maxX = setLower(x, b.maxX)
	f.store().setBounds(b.minX, b.minY, b.maxX, b.maxY)
}

func (f *frame[S, PS]) SetMaxX(x float64) {
	b := f.frameBox()
	b.minX, b.maxX = setUpper(b.minX, x)
	f.store().setBounds(b.minX, b.minY, b.maxX, b.maxY)
}

func (f *frame[S, PS]) SetMinY(y float64) {
	b := f.frameBox()
	b.minY, b.maxY = setLower(y, b.maxY)
	f.store().setBounds(b.minX, b.minY, b.maxX, b.maxY)
}

func (f *frame[S, PS]) SetMaxY(y float64) {
	b := f.frameBox()
	b.minY, b.maxY = setUpper(b.minY, y)
	f.store().setBounds(b.minX, b.minY, b.maxX, b.maxY)
}

func (f *frame[S, PS]) SetFromCorners(x1, y1, x2, y2 float64) {
	f.setInitiallyFromCorners(x1, y1, x2, y2)
}

func (f *frame[S, PS]) SetFromCenter(cx, cy, cornerX, cornerY float64) {
	f.SetFromCorners(cornerX, cornerY, cx+(cx-cornerX), cy+(cy-cornerY))
}

func (f *frame[S, PS]) Set(x, y, width, height float64) {
	f.setInitiallyFromCorners(x, y, x+width, y+height)
}

func (f *frame[S, PS]) SetWidth(w float64) {
	b := f.frameBox()
	f.store().setBounds(b.minX, b.minY, b.minX+max(0, w), b.maxY)
}

func (f *frame[S, PS]) SetHeight(h float64) {
	b := f.frameBox()
	f.store().setBounds(b.minX, b.minY, b.maxX, b.minY+max(0, h))
}

func (f *frame[S, PS]) Inflate(left, top, right, bottom float64) {
	b := f.frameBox()
	f.store().setBounds(b.minX-left, b.minY-top, b.maxX+right, b.maxY+bottom)
}

// Translate shifts all four bounds.
func (f *frame[S, PS]) Translate(dx, dy float64) {
	b := f.frameBox()
	f.store().setBounds(b.minX+dx, b.minY+dy, b.maxX+dx, b.maxY+dy)
}

// Clear resets the frame to (0, 0, 0, 0).
func (f *frame[S, PS]) Clear() {
	f.store().setBounds(0, 0, 0, 0)
}

// SetFromBox copies the bounds of b.
func (f *frame[S, PS]) SetFromBox(b Box) {
	f.setInitiallyFromCorners(b.MinX(), b.MinY(), b.MaxX(), b.MaxY())
}

type plainFrame struct {
	minX, minY, maxX, maxY float64
}

func (f *plainFrame) bounds() (float64, float64, float64, float64) {
	return f.minX, f.minY, f.maxX, f.maxY
}

func (f *plainFrame) setBounds(minX, minY, maxX, maxY float64) {
	f.minX, f.minY, f.maxX, f.maxY = minX, minY, maxX, maxY
}

// observableFrame stores the bounds in observable cells. The cells are
// created on first use so that the zero value is a valid empty frame.
type observableFrame struct {
	minX, minY, maxX, maxY *observable.Value[float64]

	width, height    *observable.Binding[float64]
	centerX, centerY *observable.Binding[float64]
}

func (f *observableFrame) init() {
	if f.minX != nil {
		return
	}
	f.minX = observable.NewFloat(0)
	f.minY = observable.NewFloat(0)
	f.maxX = observable.NewFloat(0)
	f.maxY = observable.NewFloat(0)
	f.width = observable.Bind(func() float64 { return f.maxX.Get() - f.minX.Get() }, f.minX, f.maxX)
	f.height = observable.Bind(func() float64 { return f.maxY.Get() - f.minY.Get() }, f.minY, f.maxY)
	f.centerX = observable.Bind(func() float64 { return (f.minX.Get() + f.maxX.Get()) / 2 }, f.minX, f.maxX)
	f.centerY = observable.Bind(func() float64 { return (f.minY.Get() + f.maxY.Get()) / 2 }, f.minY, f.maxY)
}

func (f *observableFrame) bounds() (float64, float64, float64, float64) {
	f.init()
	return f.minX.Get(), f.minY.Get(), f.maxX.Get(), f.maxY.Get()
}

func (f *observableFrame) setBounds(minX, minY, maxX, maxY float64) {
	f.init()
	setOrdered(f.minX, f.maxX, minX, maxX)
	setOrdered(f.minY, f.maxY, minY, maxY)
}

// setOrdered writes a (lower, upper) pair so that listeners never observe
// lower > upper, provided the old and the new pair are both ordered.
func setOrdered(lower, upper *observable.Value[float64], newLower, newUpper float64) {
	if newLower <= upper.Get() {
		lower.Set(newLower)
		upper.Set(newUpper)
	} else {
		upper.Set(newUpper)
		lower.Set(newLower)
	}
}

func (f *observableFrame) subscribe(fn func()) func() {
	f.init()
	return observable.SubscribeAll(fn, f.minX, f.minY, f.maxX, f.maxY)
}

// FrameProperties exposes the bounds and bindings of an observable frame
// for reading and observing. The bounds only change through the frame's
// setters. Width, Height, CenterX and CenterY are recomputed lazily from the
// bounds.
type FrameProperties struct {
	MinX, MinY, MaxX, MaxY observable.ReadOnly[float64]

	Width, Height    *observable.Binding[float64]
	CenterX, CenterY *observable.Binding[float64]
}

func (f *observableFrame) properties() FrameProperties {
	f.init()
	return FrameProperties{
		MinX: f.minX.ReadOnly(), MinY: f.minY.ReadOnly(),
		MaxX: f.maxX.ReadOnly(), MaxY: f.maxY.ReadOnly(),
		Width: f.width, Height: f.height,
		CenterX: f.centerX, CenterY: f.centerY,
	}
}
