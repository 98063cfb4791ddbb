package raster

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"honnef.co/go/geom2d"
)

func TestFillRectangle(t *testing.T) {
	for name, s := range map[string]geom2d.Shape{
		"plain":      geom2d.NewRectangle(2, 3, 4, 5),
		"observable": geom2d.NewObservableRectangle(2, 3, 4, 5),
		"path":       geom2d.NewRectangle(2, 3, 4, 5).TransformedShape(geom2d.Identity),
	} {
		t.Run(name, func(t *testing.T) {
			dst := image.NewAlpha(image.Rect(0, 0, 10, 10))
			Fill(dst, s, geom2d.Identity)
			for y := range 10 {
				for x := range 10 {
					inside := x >= 2 && x < 6 && y >= 3 && y < 8
					want := uint8(0)
					if inside {
						want = 0xff
					}
					require.Equal(t, want, dst.AlphaAt(x, y).A, "pixel (%d, %d)", x, y)
				}
			}
		})
	}
}

func TestFillOffsetBounds(t *testing.T) {
	dst := image.NewAlpha(image.Rect(10, 10, 20, 20))
	Fill(dst, geom2d.NewRectangle(12, 12, 2, 2), geom2d.Identity)
	require.Equal(t, uint8(0xff), dst.AlphaAt(12, 12).A)
	require.Equal(t, uint8(0xff), dst.AlphaAt(13, 13).A)
	require.Zero(t, dst.AlphaAt(14, 14).A)
	require.Zero(t, dst.AlphaAt(11, 12).A)
}

func TestFillEvenOdd(t *testing.T) {
	p := geom2d.NewPath(geom2d.EvenOdd)
	for _, sq := range [][3]float64{{0, 0, 10}, {2, 2, 6}} {
		x, y, size := sq[0], sq[1], sq[2]
		p.MoveTo(x, y)
		p.LineTo(x+size, y)
		p.LineTo(x+size, y+size)
		p.LineTo(x, y+size)
		p.ClosePath()
	}
	dst := image.NewAlpha(image.Rect(0, 0, 10, 10))
	Fill(dst, p, geom2d.Identity)
	require.Equal(t, uint8(0xff), dst.AlphaAt(1, 1).A)
	require.Zero(t, dst.AlphaAt(5, 5).A)

	p.SetWindingRule(geom2d.NonZero)
	dst = image.NewAlpha(image.Rect(0, 0, 10, 10))
	Fill(dst, p, geom2d.Identity)
	require.Equal(t, uint8(0xff), dst.AlphaAt(5, 5).A)
}

func TestMask(t *testing.T) {
	m := Mask(geom2d.NewCircle(10, 10, 5), 2)
	require.Equal(t, image.Rect(10, 10, 30, 30), m.Bounds())
	require.Equal(t, uint8(0xff), m.AlphaAt(20, 20).A)
	require.Zero(t, m.AlphaAt(10, 10).A)
	require.Zero(t, m.AlphaAt(29, 29).A)

	// π/4 of the box is covered, minus the anti-aliased rim.
	c := Coverage(m)
	require.Greater(t, c, 0.6)
	require.Less(t, c, 0.785)

	require.Equal(t, 1.0, Coverage(Mask(geom2d.NewRectangle(1, 1, 3, 2), 1)))
	require.Zero(t, Coverage(Mask(geom2d.NewSegment(0, 0, 0, 5), 1)))
}
