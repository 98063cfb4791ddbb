package geom2d

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	opts = append(opts,
		cmp.Comparer(func(a, b Point) bool { return a.Equal(b) }),
		cmp.Comparer(func(a, b Vector) bool { return a.Equal(b) }),
	)
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got, want Coords, epsilon float64) {
	t.Helper()
	if d := math.Hypot(got.X()-want.X(), got.Y()-want.Y()); d > epsilon {
		t.Fatalf("got %v, expected %v", got, want)
	}
}

// frameOf returns the bounds of b in the order minX, minY, maxX, maxY.
func frameOf(b Box) [4]float64 {
	return [4]float64{b.MinX(), b.MinY(), b.MaxX(), b.MaxY()}
}

func approxEqual(x, y float64) bool {
	return math.Abs(x-y) < 1e-8
}

// assertNotSettable fails if any of props can be written to directly.
func assertNotSettable(t *testing.T, props ...any) {
	t.Helper()
	for i, p := range props {
		if _, ok := p.(interface{ Set(float64) }); ok {
			t.Errorf("property %d (%T) can be set directly", i, p)
		}
	}
}
