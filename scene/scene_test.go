package scene

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"honnef.co/go/geom2d"
)

func frame(b geom2d.Box) [4]float64 {
	return [4]float64{b.MinX(), b.MinY(), b.MaxX(), b.MaxY()}
}

func TestSceneRegistry(t *testing.T) {
	sc := New(nil)
	defer sc.Close()

	r := geom2d.NewRectangle(0, 0, 1, 1)
	c := geom2d.NewCircle(5, 5, 1)
	rid := sc.Add(r)
	cid := sc.AddNamed("ball", c)
	require.NotEqual(t, rid, cid)
	require.Equal(t, 2, sc.Len())
	require.Equal(t, []ID{rid, cid}, sc.IDs())
	require.Equal(t, "ball", sc.Name(cid))

	got, ok := sc.Get(cid)
	require.True(t, ok)
	require.Same(t, c, got)

	require.True(t, sc.Remove(rid))
	require.False(t, sc.Remove(rid))
	_, ok = sc.Get(rid)
	require.False(t, ok)
	require.Equal(t, []ID{cid}, sc.IDs())
}

func TestSceneBounds(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		sc := New(nil)
		require.Equal(t, [4]float64{0, 0, 0, 0}, frame(sc.Bounds()))
	})

	t.Run("observable", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		sc := New(zap.New(core))
		defer sc.Close()

		sc.Add(geom2d.NewRectangle(0, 0, 1, 1))
		ball := geom2d.NewObservableCircle(5, 5, 1)
		sc.AddNamed("ball", ball)
		require.Equal(t, [4]float64{0, 0, 6, 6}, frame(sc.Bounds()))

		ball.SetCenter(20, 0)
		require.Equal(t, [4]float64{0, -1, 21, 1}, frame(sc.Bounds()))
		require.Equal(t, 1, logs.FilterMessage("shape changed").Len())

		b := sc.Bounds()
		b.SetMaxX(1000)
		require.Equal(t, 21.0, sc.Bounds().MaxX())
	})

	t.Run("plain", func(t *testing.T) {
		sc := New(nil)
		r := geom2d.NewRectangle(0, 0, 1, 1)
		sc.Add(r)
		require.Equal(t, [4]float64{0, 0, 1, 1}, frame(sc.Bounds()))
		r.Translate(1, 1)
		require.Equal(t, [4]float64{0, 0, 1, 1}, frame(sc.Bounds()))
		sc.Invalidate()
		require.Equal(t, [4]float64{1, 1, 2, 2}, frame(sc.Bounds()))
	})

	t.Run("closed", func(t *testing.T) {
		sc := New(nil)
		ball := geom2d.NewObservableCircle(0, 0, 1)
		sc.Add(ball)
		sc.Bounds()
		sc.Close()
		ball.SetRadius(5)
		require.Equal(t, [4]float64{-1, -1, 1, 1}, frame(sc.Bounds()))
	})
}

func TestSceneCollisions(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sc := New(zap.New(core))
	defer sc.Close()

	a := sc.Add(geom2d.NewRectangle(10, 10, 5, 5))
	b := sc.Add(geom2d.NewCircle(0, 0, 2))
	c := sc.Add(geom2d.NewSegment(-3, 0, 12, 12))
	d := sc.Add(geom2d.NewEllipse(100, 100, 1, 1))
	e := sc.Add(geom2d.NewObservableRectangle(1, -1, 1, 1))

	require.Equal(t, []Pair{{a, c}, {b, c}, {b, e}}, sc.Collisions())
	require.Equal(t, 1, logs.FilterMessage("collisions evaluated").Len())

	t.Run("agrees with Intersects", func(t *testing.T) {
		ids := sc.IDs()
		var want []Pair
		for i, p := range ids {
			for _, q := range ids[i+1:] {
				sp, _ := sc.Get(p)
				sq, _ := sc.Get(q)
				if sp.Intersects(sq) {
					want = append(want, Pair{p, q})
				}
			}
		}
		require.Equal(t, want, sc.Collisions())
	})

	t.Run("query", func(t *testing.T) {
		require.Equal(t, []ID{b, e}, sc.Query(geom2d.NewCircle(1, 0, 1)))
		ds, _ := sc.Get(d)
		require.Empty(t, sc.Query(ds))
	})
}
