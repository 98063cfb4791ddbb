// Package scene keeps a set of shapes and answers collision queries over
// them.
//
// A Scene is not safe for concurrent use.
package scene

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"honnef.co/go/geom2d"
)

// ID identifies a shape registered with a scene.
type ID = uuid.UUID

// Pair is a pair of intersecting shapes. A was added to the scene before B.
type Pair struct {
	A ID `json:"a"`
	B ID `json:"b"`
}

// subscriber is implemented by the observable shapes.
type subscriber interface {
	Subscribe(fn func()) (cancel func())
}

type entry struct {
	id     ID
	name   string
	shape  geom2d.Shape
	seq    uint64
	cancel func()
}

type Scene struct {
	log     *zap.Logger
	entries map[ID]*entry
	seq     uint64

	bounds *geom2d.Rectangle
	dirty  bool
}

// New returns an empty scene. A nil logger disables logging.
func New(log *zap.Logger) *Scene {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scene{
		log:     log,
		entries: make(map[ID]*entry),
		dirty:   true,
	}
}

// Add registers s and returns its new ID.
func (sc *Scene) Add(s geom2d.Shape) ID {
	return sc.AddNamed("", s)
}

// AddNamed registers s under a human-readable name. Names are used in logs
// and need not be unique.
//
// Changes to observable shapes invalidate the cached bounds automatically.
// After changing a plain shape, call Invalidate.
func (sc *Scene) AddNamed(name string, s geom2d.Shape) ID {
	e := &entry{
		id:    uuid.New(),
		name:  name,
		shape: s,
		seq:   sc.seq,
	}
	sc.seq++
	if obs, ok := s.(subscriber); ok {
		e.cancel = obs.Subscribe(func() { sc.changed(e) })
	}
	sc.entries[e.id] = e
	sc.dirty = true
	sc.log.Debug("shape added",
		zap.Stringer("id", e.id),
		zap.String("name", name),
		zap.Stringer("kind", s.Kind()),
		zap.Bool("observable", e.cancel != nil))
	return e.id
}

func (sc *Scene) changed(e *entry) {
	if sc.dirty {
		return
	}
	sc.dirty = true
	sc.log.Debug("shape changed", zap.Stringer("id", e.id), zap.String("name", e.name))
}

// Remove unregisters the shape with the given ID. It reports whether the
// shape was present.
func (sc *Scene) Remove(id ID) bool {
	e, ok := sc.entries[id]
	if !ok {
		return false
	}
	if e.cancel != nil {
		e.cancel()
	}
	delete(sc.entries, id)
	sc.dirty = true
	return true
}

func (sc *Scene) Get(id ID) (geom2d.Shape, bool) {
	e, ok := sc.entries[id]
	if !ok {
		return nil, false
	}
	return e.shape, true
}

// Name returns the name the shape was registered with.
func (sc *Scene) Name(id ID) string {
	if e, ok := sc.entries[id]; ok {
		return e.name
	}
	return ""
}

func (sc *Scene) Len() int { return len(sc.entries) }

// IDs returns the IDs of all shapes in the order they were added.
func (sc *Scene) IDs() []ID {
	sorted := sc.sorted()
	ids := make([]ID, len(sorted))
	for i, e := range sorted {
		ids[i] = e.id
	}
	return ids
}

func (sc *Scene) sorted() []*entry {
	out := make([]*entry, 0, len(sc.entries))
	for _, e := range sc.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b *entry) int { return cmp.Compare(a.seq, b.seq) })
	return out
}

// Invalidate drops the cached bounds.
func (sc *Scene) Invalidate() { sc.dirty = true }

// Bounds returns the union of the bounding boxes of all shapes, or an empty
// rectangle at the origin if the scene is empty.
func (sc *Scene) Bounds() *geom2d.Rectangle {
	if sc.dirty || sc.bounds == nil {
		var b *geom2d.Rectangle
		for _, e := range sc.sorted() {
			if b == nil {
				b = e.shape.BoundingBox()
			} else {
				b.SetUnion(e.shape.BoundingBox())
			}
		}
		if b == nil {
			b = &geom2d.Rectangle{}
		}
		sc.bounds = b
		sc.dirty = false
	}
	return sc.bounds.Clone()
}

// boxesOverlap reports whether two closed boxes share a point. Degenerate
// shapes such as segments have boxes without area, so the test is inclusive.
func boxesOverlap(a, b geom2d.Box) bool {
	return a.MinX() <= b.MaxX() && b.MinX() <= a.MaxX() && a.MinY() <= b.MaxY() && b.MinY() <= a.MaxY()
}

type boxed struct {
	e   *entry
	box *geom2d.Rectangle
}

// Collisions returns all pairs of intersecting shapes, ordered by the
// insertion order of A, then of B.
//
// Candidate pairs are found by sweeping the bounding boxes along the x axis;
// only pairs whose boxes overlap are tested exactly.
func (sc *Scene) Collisions() []Pair {
	sorted := sc.sorted()
	items := make([]boxed, len(sorted))
	for i, e := range sorted {
		items[i] = boxed{e, e.shape.BoundingBox()}
	}
	slices.SortStableFunc(items, func(a, b boxed) int { return cmp.Compare(a.box.MinX(), b.box.MinX()) })

	var pairs []Pair
	candidates := 0
	for i, a := range items {
		for _, b := range items[i+1:] {
			if b.box.MinX() > a.box.MaxX() {
				break
			}
			if !boxesOverlap(a.box, b.box) {
				continue
			}
			candidates++
			if !a.e.shape.Intersects(b.e.shape) {
				continue
			}
			first, second := a.e, b.e
			if second.seq < first.seq {
				first, second = second, first
			}
			pairs = append(pairs, Pair{first.id, second.id})
		}
	}
	slices.SortFunc(pairs, func(p, q Pair) int {
		if c := cmp.Compare(sc.entries[p.A].seq, sc.entries[q.A].seq); c != 0 {
			return c
		}
		return cmp.Compare(sc.entries[p.B].seq, sc.entries[q.B].seq)
	})
	sc.log.Info("collisions evaluated",
		zap.Int("shapes", len(items)),
		zap.Int("candidates", candidates),
		zap.Int("collisions", len(pairs)))
	return pairs
}

// Query returns the IDs of all shapes intersecting s, in insertion order.
// s need not be part of the scene.
func (sc *Scene) Query(s geom2d.Shape) []ID {
	qb := s.BoundingBox()
	var ids []ID
	for _, e := range sc.sorted() {
		if e.shape == s {
			continue
		}
		if boxesOverlap(qb, e.shape.BoundingBox()) && e.shape.Intersects(s) {
			ids = append(ids, e.id)
		}
	}
	return ids
}

// Close cancels the subscriptions to all observable shapes. The scene must
// not be used afterwards.
func (sc *Scene) Close() {
	for _, e := range sc.entries {
		if e.cancel != nil {
			e.cancel()
			e.cancel = nil
		}
	}
}
