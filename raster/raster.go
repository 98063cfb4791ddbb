// Package raster fills shapes into alpha masks.
package raster

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"honnef.co/go/geom2d"
)

// Fill fills the outline of s, transformed by tr, into dst. Coordinates are in
// the pixel space of dst, so dst.Bounds().Min is not necessarily the origin.
//
// Shapes using the NonZero rule are rendered with anti-aliasing. Shapes
// using EvenOdd are sampled once per pixel center, since the vector
// rasterizer only implements the nonzero rule.
func Fill(dst *image.Alpha, s geom2d.Shape, tr geom2d.Affine) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	p := s.TransformedShape(tr)
	if p.WindingRule() == geom2d.EvenOdd {
		fillSampled(dst, p)
		return
	}

	ox, oy := float64(b.Min.X), float64(b.Min.Y)
	pt := func(x, y float64) (float32, float32) {
		return float32(x - ox), float32(y - oy)
	}
	ras := vector.NewRasterizer(b.Dx(), b.Dy())
	open := false
	for el := range p.Elements() {
		switch el.Kind {
		case geom2d.MoveToKind:
			if open {
				ras.ClosePath()
			}
			ras.MoveTo(pt(el.ToX, el.ToY))
			open = true
		case geom2d.LineToKind:
			ras.LineTo(pt(el.ToX, el.ToY))
		case geom2d.QuadToKind:
			cx, cy := pt(el.Ctrl1X, el.Ctrl1Y)
			x, y := pt(el.ToX, el.ToY)
			ras.QuadTo(cx, cy, x, y)
		case geom2d.CubicToKind:
			c1x, c1y := pt(el.Ctrl1X, el.Ctrl1Y)
			c2x, c2y := pt(el.Ctrl2X, el.Ctrl2Y)
			x, y := pt(el.ToX, el.ToY)
			ras.CubeTo(c1x, c1y, c2x, c2y, x, y)
		case geom2d.ClosePathKind:
			ras.ClosePath()
			open = false
		}
	}
	if open {
		// implicitly close path
		ras.ClosePath()
	}
	ras.Draw(dst, b, image.Opaque, image.Point{})
}

func fillSampled(dst *image.Alpha, p *geom2d.Path) {
	b := dst.Bounds()
	flat := p.Flatten(geom2d.DefaultTolerance)
	bb := flat.BoundingBox()
	x0 := max(b.Min.X, int(math.Floor(bb.MinX())))
	y0 := max(b.Min.Y, int(math.Floor(bb.MinY())))
	x1 := min(b.Max.X, int(math.Ceil(bb.MaxX())))
	y1 := min(b.Max.Y, int(math.Ceil(bb.MaxY())))
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if flat.Contains(float64(x)+0.5, float64(y)+0.5) {
				dst.Pix[dst.PixOffset(x, y)] = 0xff
			}
		}
	}
}

// Bounds returns the pixel rectangle covering b scaled by scale, rounded
// outwards to whole pixels.
func Bounds(b geom2d.Box, scale float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(b.MinX()*scale)), int(math.Floor(b.MinY()*scale)),
		int(math.Ceil(b.MaxX()*scale)), int(math.Ceil(b.MaxY()*scale)),
	)
}

// Mask returns a new mask holding s scaled by scale. The mask covers the
// scaled bounding box of s.
func Mask(s geom2d.Shape, scale float64) *image.Alpha {
	dst := image.NewAlpha(Bounds(s.BoundingBox(), scale))
	Fill(dst, s, geom2d.Scale(scale, scale))
	return dst
}

// Coverage returns the fraction of the pixels of m that are fully opaque.
func Coverage(m *image.Alpha) float64 {
	b := m.Bounds()
	if b.Empty() {
		return 0
	}
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if m.AlphaAt(x, y).A == 0xff {
				n++
			}
		}
	}
	return float64(n) / float64(b.Dx()*b.Dy())
}
