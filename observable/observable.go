// Package observable provides value cells that notify listeners when they
// change, and bindings whose values are derived from such cells and
// recomputed on demand.
//
// Notification is synchronous: listeners run on the caller's goroutine before
// Set returns. Cells and bindings are not safe for concurrent use.
package observable

import (
	"math"
	"slices"
)

// Dependency is implemented by anything a [Binding] can be derived from.
type Dependency interface {
	// Subscribe registers fn to be called whenever the dependency changes or
	// becomes invalid. Calling the returned function removes the
	// registration; calling it more than once is a no-op.
	Subscribe(fn func()) (cancel func())
}

var (
	_ Dependency = (*Value[int])(nil)
	_ Dependency = (*Binding[int])(nil)
	_ Dependency = ReadOnly[int]{}
)

type entry[F any] struct {
	id uint64
	fn F
}

// registry is an ordered list of callbacks. Callbacks registered or removed
// while a notification is running take effect for the next notification.
type registry[F any] struct {
	next    uint64
	entries []entry[F]
}

func (r *registry[F]) add(fn F) func() {
	r.next++
	id := r.next
	done := false
	r.entries = append(r.entries, entry[F]{id: id, fn: fn})
	return func() {
		if done {
			return
		}
		done = true
		r.entries = slices.DeleteFunc(slices.Clone(r.entries), func(e entry[F]) bool { return e.id == id })
	}
}

func (r *registry[F]) len() int { return len(r.entries) }

// Value is an observable cell holding a value of type T.
//
// The zero value holds T's zero value and notifies on every Set.
type Value[T any] struct {
	v     T
	equal func(a, b T) bool

	change     registry[func(old, new T)]
	invalidate registry[func()]
}

// NewValue returns a cell holding v. Setting a value equal to the current one
// (according to ==) does not notify.
func NewValue[T comparable](v T) *Value[T] {
	return &Value[T]{v: v, equal: func(a, b T) bool { return a == b }}
}

// NewValueFunc returns a cell holding v that uses equal to suppress
// notifications for unchanged values. A nil equal notifies on every Set.
func NewValueFunc[T any](v T, equal func(a, b T) bool) *Value[T] {
	return &Value[T]{v: v, equal: equal}
}

// NewFloat returns a float64 cell that compares values by their bit
// patterns. Unlike ==, this treats NaN as equal to itself and distinguishes
// 0 from -0.
func NewFloat(v float64) *Value[float64] {
	return NewValueFunc(v, sameBits)
}

func sameBits(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}

func (c *Value[T]) Get() T { return c.v }

// Set stores v and, if it differs from the current value, notifies
// subscribers and then change listeners, in registration order.
func (c *Value[T]) Set(v T) {
	old := c.v
	if c.equal != nil && c.equal(old, v) {
		return
	}
	c.v = v
	for _, e := range c.invalidate.entries {
		e.fn()
	}
	for _, e := range c.change.entries {
		e.fn(old, v)
	}
}

// OnChange registers fn to be called with the old and new value after every
// change.
func (c *Value[T]) OnChange(fn func(old, new T)) (cancel func()) {
	return c.change.add(fn)
}

// Subscribe implements [Dependency].
func (c *Value[T]) Subscribe(fn func()) (cancel func()) {
	return c.invalidate.add(fn)
}

// Listeners returns the number of registered callbacks.
func (c *Value[T]) Listeners() int {
	return c.change.len() + c.invalidate.len()
}

// ReadOnly returns a view of c that can be read and observed but not set.
func (c *Value[T]) ReadOnly() ReadOnly[T] { return ReadOnly[T]{c: c} }

// ReadOnly is a view of a [Value] without Set. Owners whose cells must only
// change through their own setters hand these out instead of the cells.
type ReadOnly[T any] struct {
	c *Value[T]
}

func (r ReadOnly[T]) Get() T { return r.c.Get() }

func (r ReadOnly[T]) OnChange(fn func(old, new T)) (cancel func()) { return r.c.OnChange(fn) }

// Subscribe implements [Dependency].
func (r ReadOnly[T]) Subscribe(fn func()) (cancel func()) { return r.c.Subscribe(fn) }

// Binding is a value computed from a set of dependencies. The value is
// computed lazily on the first Get after construction or after any dependency
// changed; it is never recomputed eagerly.
type Binding[T any] struct {
	compute func() T
	valid   bool
	v       T

	invalidate registry[func()]
	cancels    []func()
}

// Bind returns a binding computing its value with compute whenever one of
// deps has changed since the last Get.
func Bind[T any](compute func() T, deps ...Dependency) *Binding[T] {
	b := &Binding[T]{compute: compute}
	for _, d := range deps {
		b.cancels = append(b.cancels, d.Subscribe(b.markInvalid))
	}
	return b
}

func (b *Binding[T]) markInvalid() {
	if !b.valid {
		return
	}
	b.valid = false
	for _, e := range b.invalidate.entries {
		e.fn()
	}
}

func (b *Binding[T]) Get() T {
	if !b.valid {
		b.v = b.compute()
		b.valid = true
	}
	return b.v
}

// Valid reports whether the cached value is up to date.
func (b *Binding[T]) Valid() bool { return b.valid }

// Subscribe implements [Dependency]. fn is called when the binding goes from
// valid to invalid.
func (b *Binding[T]) Subscribe(fn func()) (cancel func()) {
	return b.invalidate.add(fn)
}

// Dispose detaches the binding from its dependencies. The binding keeps its
// last value and is never invalidated again.
func (b *Binding[T]) Dispose() {
	for _, cancel := range b.cancels {
		cancel()
	}
	b.cancels = nil
}

// SubscribeAll subscribes fn to every dependency and returns a function
// cancelling all of the subscriptions.
func SubscribeAll(fn func(), deps ...Dependency) (cancel func()) {
	cancels := make([]func(), len(deps))
	for i, d := range deps {
		cancels[i] = d.Subscribe(fn)
	}
	return func() {
		for _, c := range cancels {
			c()
		}
	}
}
