package scene

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"honnef.co/go/geom2d"
)

var (
	ErrUnknownKind = errors.New("unknown shape kind")
	ErrCoordinates = errors.New("wrong number of coordinates")
	ErrPath        = errors.New("invalid path")
)

// Description is the YAML form of a scene.
//
//	shapes:
//	  - name: wall
//	    kind: rectangle
//	    coords: [0, 0, 10, 2]     # x, y, width, height
//	  - name: ball
//	    kind: circle
//	    observable: true
//	    coords: [5, 5, 1]         # cx, cy, radius
//	  - kind: path
//	    rule: evenodd
//	    elements:
//	      - {op: move, coords: [0, 0]}
//	      - {op: line, coords: [4, 0]}
//	      - {op: quad, coords: [6, 2, 4, 4]}
//	      - {op: close}
//	    transform: {rotate: 90, pivot: [2, 2], translate: [10, 0]}
//	  - kind: segment
//	    coords: [0, 0, 1, 1]
//	    transform: {matrix: [1, 0, 0.5, 1, 0, 0]}  # a, b, c, d, e, f
type Description struct {
	Shapes []ShapeDescription `yaml:"shapes"`
}

type ShapeDescription struct {
	Name string `yaml:"name"`
	// Kind is one of rectangle, ellipse, circle, segment and path.
	Kind string `yaml:"kind"`
	// Observable selects the observable variant of the shape. Paths have
	// none.
	Observable bool `yaml:"observable"`
	// Coords holds x, y, width and height for rectangles and ellipses, the
	// center and the radius for circles, and both end points for segments.
	Coords []float64 `yaml:"coords"`

	// Rule is the winding rule of a path, nonzero (the default) or evenodd.
	Rule     string               `yaml:"rule"`
	Elements []ElementDescription `yaml:"elements"`

	// Transform, if present, turns the shape into a path.
	Transform *TransformDescription `yaml:"transform"`
}

type ElementDescription struct {
	// Op is one of move, line, quad, cubic and close.
	Op     string    `yaml:"op"`
	Coords []float64 `yaml:"coords"`
}

// TransformDescription is applied in the order matrix, scale, rotate,
// translate. The rotation is about Pivot, or the origin if Pivot is empty.
type TransformDescription struct {
	Matrix    []float64 `yaml:"matrix"`
	Scale     []float64 `yaml:"scale"`
	Rotate    float64   `yaml:"rotate"` // degrees
	Pivot     []float64 `yaml:"pivot"`
	Translate []float64 `yaml:"translate"`
}

// Load decodes a scene description.
func Load(r io.Reader) (*Description, error) {
	var d Description
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return &d, nil
		}
		return nil, err
	}
	return &d, nil
}

// LoadFile decodes the scene description in the named file. Errors carry the
// file name.
func LoadFile(name string) (*Description, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}

// Build instantiates the described shapes in a new scene.
func (d *Description) Build(log *zap.Logger) (*Scene, error) {
	sc := New(log)
	for i, sd := range d.Shapes {
		s, err := sd.Shape()
		if err != nil {
			sc.Close()
			return nil, fmt.Errorf("shape %d (%s): %w", i, sd.label(i), err)
		}
		sc.AddNamed(sd.label(i), s)
	}
	return sc, nil
}

func (sd *ShapeDescription) label(i int) string {
	if sd.Name != "" {
		return sd.Name
	}
	return fmt.Sprintf("%s#%d", sd.Kind, i)
}

func wantCoords(c []float64, n int) error {
	if len(c) != n {
		return fmt.Errorf("%w: got %d, want %d", ErrCoordinates, len(c), n)
	}
	return nil
}

// Shape instantiates the described shape.
func (sd *ShapeDescription) Shape() (geom2d.Shape, error) {
	if sd.Transform != nil && sd.Observable {
		return nil, errors.New("a transformed shape cannot be observable")
	}
	s, err := sd.baseShape()
	if err != nil {
		return nil, err
	}
	if sd.Transform != nil {
		tr, err := sd.Transform.affine()
		if err != nil {
			return nil, err
		}
		return s.TransformedShape(tr), nil
	}
	return s, nil
}

func (sd *ShapeDescription) baseShape() (geom2d.Shape, error) {
	c := sd.Coords
	switch sd.Kind {
	case "rectangle":
		if err := wantCoords(c, 4); err != nil {
			return nil, err
		}
		if sd.Observable {
			return geom2d.NewObservableRectangle(c[0], c[1], c[2], c[3]), nil
		}
		return geom2d.NewRectangle(c[0], c[1], c[2], c[3]), nil
	case "ellipse":
		if err := wantCoords(c, 4); err != nil {
			return nil, err
		}
		if sd.Observable {
			return geom2d.NewObservableEllipse(c[0], c[1], c[2], c[3]), nil
		}
		return geom2d.NewEllipse(c[0], c[1], c[2], c[3]), nil
	case "circle":
		if err := wantCoords(c, 3); err != nil {
			return nil, err
		}
		if sd.Observable {
			return geom2d.NewObservableCircle(c[0], c[1], c[2]), nil
		}
		return geom2d.NewCircle(c[0], c[1], c[2]), nil
	case "segment":
		if err := wantCoords(c, 4); err != nil {
			return nil, err
		}
		if sd.Observable {
			return geom2d.NewObservableSegment(c[0], c[1], c[2], c[3]), nil
		}
		return geom2d.NewSegment(c[0], c[1], c[2], c[3]), nil
	case "path":
		if sd.Observable {
			return nil, fmt.Errorf("%w: paths cannot be observable", ErrPath)
		}
		return sd.path()
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, sd.Kind)
	}
}

var elementKinds = map[string]geom2d.PathElementKind{
	"move":  geom2d.MoveToKind,
	"line":  geom2d.LineToKind,
	"quad":  geom2d.QuadToKind,
	"cubic": geom2d.CubicToKind,
	"close": geom2d.ClosePathKind,
}

func (sd *ShapeDescription) path() (*geom2d.Path, error) {
	var rule geom2d.WindingRule
	switch sd.Rule {
	case "", "nonzero":
		rule = geom2d.NonZero
	case "evenodd":
		rule = geom2d.EvenOdd
	default:
		return nil, fmt.Errorf("%w: unknown winding rule %q", ErrPath, sd.Rule)
	}
	p := geom2d.NewPath(rule)
	for i, ed := range sd.Elements {
		kind, ok := elementKinds[ed.Op]
		if !ok {
			return nil, fmt.Errorf("%w: element %d: unknown op %q", ErrPath, i, ed.Op)
		}
		if _, started := p.CurrentPoint(); !started && kind != geom2d.MoveToKind {
			return nil, fmt.Errorf("%w: element %d: %s before the first move", ErrPath, i, ed.Op)
		}
		if kind == geom2d.ClosePathKind {
			p.ClosePath()
			continue
		}
		el, err := geom2d.NewPathElement(kind, 0, 0, ed.Coords)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d: %w", ErrPath, i, err)
		}
		switch kind {
		case geom2d.MoveToKind:
			p.MoveTo(el.ToX, el.ToY)
		case geom2d.LineToKind:
			p.LineTo(el.ToX, el.ToY)
		case geom2d.QuadToKind:
			p.QuadTo(el.Ctrl1X, el.Ctrl1Y, el.ToX, el.ToY)
		case geom2d.CubicToKind:
			p.CubicTo(el.Ctrl1X, el.Ctrl1Y, el.Ctrl2X, el.Ctrl2Y, el.ToX, el.ToY)
		}
	}
	return p, nil
}

func (td *TransformDescription) affine() (geom2d.Affine, error) {
	tr := geom2d.Identity
	if len(td.Matrix) > 0 {
		if err := wantCoords(td.Matrix, 6); err != nil {
			return tr, fmt.Errorf("matrix: %w", err)
		}
		tr = geom2d.NewAffine([6]float64(td.Matrix))
	}
	switch len(td.Scale) {
	case 0:
	case 1:
		tr = tr.ThenScale(td.Scale[0], td.Scale[0])
	case 2:
		tr = tr.ThenScale(td.Scale[0], td.Scale[1])
	default:
		return tr, fmt.Errorf("scale: %w: got %d, want 1 or 2", ErrCoordinates, len(td.Scale))
	}
	if len(td.Pivot) > 0 {
		if err := wantCoords(td.Pivot, 2); err != nil {
			return tr, fmt.Errorf("pivot: %w", err)
		}
	}
	if td.Rotate != 0 {
		th := td.Rotate * math.Pi / 180
		if len(td.Pivot) == 2 {
			tr = geom2d.RotateAbout(th, td.Pivot[0], td.Pivot[1]).Mul(tr)
		} else {
			tr = tr.ThenRotate(th)
		}
	}
	if len(td.Translate) > 0 {
		if err := wantCoords(td.Translate, 2); err != nil {
			return tr, fmt.Errorf("translate: %w", err)
		}
		tr = tr.ThenTranslate(td.Translate[0], td.Translate[1])
	}
	return tr, nil
}
