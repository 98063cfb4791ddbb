package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"honnef.co/go/geom2d"
)

const sample = `
shapes:
  - name: wall
    kind: rectangle
    coords: [0, 0, 10, 2]
  - name: ball
    kind: circle
    observable: true
    coords: [5, 3, 1.5]
  - kind: ellipse
    coords: [20, 20, 4, 2]
  - kind: segment
    observable: true
    coords: [-1, -1, 1, 1]
  - name: hook
    kind: path
    rule: evenodd
    elements:
      - {op: move, coords: [0, 0]}
      - {op: line, coords: [4, 0]}
      - {op: quad, coords: [6, 2, 4, 4]}
      - {op: cubic, coords: [3, 5, 1, 5, 0, 4]}
      - {op: close}
  - name: turned
    kind: rectangle
    coords: [0, 0, 2, 1]
    transform: {rotate: 90, translate: [10, 0]}
`

func TestLoad(t *testing.T) {
	d, err := Load(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, d.Shapes, 6)

	sc, err := d.Build(nil)
	require.NoError(t, err)
	defer sc.Close()

	ids := sc.IDs()
	require.Len(t, ids, 6)
	names := make([]string, len(ids))
	kinds := make([]geom2d.Kind, len(ids))
	for i, id := range ids {
		names[i] = sc.Name(id)
		s, _ := sc.Get(id)
		kinds[i] = s.Kind()
	}
	require.Equal(t, []string{"wall", "ball", "ellipse#2", "segment#3", "hook", "turned"}, names)
	require.Equal(t, []geom2d.Kind{
		geom2d.RectangleKind, geom2d.CircleKind, geom2d.EllipseKind,
		geom2d.SegmentKind, geom2d.PathKind, geom2d.PathKind,
	}, kinds)

	ball, _ := sc.Get(ids[1])
	require.IsType(t, &geom2d.ObservableCircle{}, ball)
	hook, _ := sc.Get(ids[4])
	require.Equal(t, geom2d.EvenOdd, hook.(*geom2d.Path).WindingRule())
	require.Equal(t, 5, hook.(*geom2d.Path).Len())

	turned, _ := sc.Get(ids[5])
	bb := turned.BoundingBox()
	require.InDelta(t, 9, bb.MinX(), 1e-9)
	require.InDelta(t, 10, bb.MaxX(), 1e-9)
	require.InDelta(t, 0, bb.MinY(), 1e-9)
	require.InDelta(t, 2, bb.MaxY(), 1e-9)
}

func TestLoadEmpty(t *testing.T) {
	d, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	sc, err := d.Build(nil)
	require.NoError(t, err)
	require.Zero(t, sc.Len())
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
		msg  string
	}{
		{"unknown kind", "shapes: [{kind: triangle}]", ErrUnknownKind, `shape 0 (triangle#0)`},
		{"coordinates", "shapes: [{name: a, kind: circle, coords: [1, 2]}]", ErrCoordinates, `shape 0 (a)`},
		{"no move", "shapes: [{kind: path, elements: [{op: line, coords: [1, 1]}]}]", ErrPath, "before the first move"},
		{"unknown op", "shapes: [{kind: path, elements: [{op: arc}]}]", ErrPath, `"arc"`},
		{"missing element coordinates", "shapes: [{kind: path, elements: [{op: move, coords: [1]}]}]", geom2d.ErrMissingCoordinates, "element 0"},
		{"rule", "shapes: [{kind: path, rule: winding}]", ErrPath, `"winding"`},
		{"observable path", "shapes: [{kind: path, observable: true}]", ErrPath, "observable"},
		{"translate", "shapes: [{kind: circle, coords: [0, 0, 1], transform: {translate: [1]}}]", ErrCoordinates, "translate"},
		{"matrix", "shapes: [{kind: circle, coords: [0, 0, 1], transform: {matrix: [1, 0, 0, 1]}}]", ErrCoordinates, "matrix"},
		{"pivot", "shapes: [{kind: circle, coords: [0, 0, 1], transform: {rotate: 90, pivot: [1]}}]", ErrCoordinates, "pivot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Load(strings.NewReader(tt.doc))
			require.NoError(t, err)
			_, err = d.Build(nil)
			require.ErrorIs(t, err, tt.want)
			require.ErrorContains(t, err, tt.msg)
		})
	}

	t.Run("transformed observable", func(t *testing.T) {
		d, err := Load(strings.NewReader("shapes: [{kind: circle, observable: true, coords: [0, 0, 1], transform: {rotate: 1}}]"))
		require.NoError(t, err)
		_, err = d.Build(nil)
		require.Error(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Load(strings.NewReader("shapes: [{kind: circle, radius: 1}]"))
		require.Error(t, err)
	})
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(sample), 0o644))
	d, err := LoadFile(good)
	require.NoError(t, err)
	require.Len(t, d.Shapes, 6)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("shapes: {"), 0o644))
	_, err = LoadFile(bad)
	require.ErrorContains(t, err, bad)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestTransformDescription(t *testing.T) {
	t.Run("matrix", func(t *testing.T) {
		td := &TransformDescription{Matrix: []float64{1, 0, 0.5, 1, 2, 3}}
		tr, err := td.affine()
		require.NoError(t, err)
		require.Equal(t, [6]float64{1, 0, 0.5, 1, 2, 3}, tr.Coefficients())
	})

	t.Run("rotate about pivot", func(t *testing.T) {
		td := &TransformDescription{Rotate: 90, Pivot: []float64{1, 1}}
		tr, err := td.affine()
		require.NoError(t, err)
		x, y := tr.Apply(2, 1)
		require.InDelta(t, 1, x, 1e-12)
		require.InDelta(t, 2, y, 1e-12)
	})

	t.Run("order", func(t *testing.T) {
		td := &TransformDescription{
			Matrix:    []float64{1, 0, 0, 1, 1, 0},
			Scale:     []float64{2},
			Rotate:    90,
			Translate: []float64{0, 5},
		}
		tr, err := td.affine()
		require.NoError(t, err)
		// (0, 0) moves to (1, 0), scales to (2, 0), rotates to (0, 2) and
		// translates to (0, 7).
		x, y := tr.Apply(0, 0)
		require.InDelta(t, 0, x, 1e-12)
		require.InDelta(t, 7, y, 1e-12)
	})
}
