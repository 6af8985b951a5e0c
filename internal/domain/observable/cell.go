// Package observable provides reactive value cells with synchronous change
// notification.
package observable

import (
	"sync"

	"github.com/google/go-cmp/cmp"
)

// Cell holds a value of type T and notifies subscribers whenever it changes.
//
// Equality is structural (go-cmp), so replacing a slice with an equal copy is
// not a change while editing one element of it is. Subscribers are called
// synchronously, outside the lock, in registration order, before Set or
// Update returns.
type Cell[T any] struct {
	mu     sync.RWMutex
	value  T
	clone  func(T) T
	subs   map[uint64]func(T)
	order  []uint64
	nextID uint64
}

// Option configures a Cell.
type Option[T any] func(*Cell[T])

// WithClone sets the copy function used on every read and write. Collection
// cells need one so callers cannot mutate the stored value in place.
func WithClone[T any](fn func(T) T) Option[T] {
	return func(c *Cell[T]) {
		c.clone = fn
	}
}

// NewCell creates a cell holding initial.
func NewCell[T any](initial T, opts ...Option[T]) *Cell[T] {
	c := &Cell[T]{
		clone: func(v T) T { return v },
		subs:  make(map[uint64]func(T)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.value = c.clone(initial)
	return c
}

// Get returns a copy of the current value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clone(c.value)
}

// Set replaces the value. It returns true and notifies subscribers when the
// new value differs from the old one.
func (c *Cell[T]) Set(v T) bool {
	return c.Update(func(T) T { return v })
}

// Update applies fn to a copy of the current value and stores the result.
func (c *Cell[T]) Update(fn func(T) T) bool {
	c.mu.Lock()
	next := c.clone(fn(c.clone(c.value)))
	if cmp.Equal(c.value, next) {
		c.mu.Unlock()
		return false
	}
	c.value = next
	subs := c.snapshotSubscribers()
	c.mu.Unlock()

	for _, fn := range subs {
		fn(c.clone(next))
	}
	return true
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.order = append(c.order, id)
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs, id)
			for i, sid := range c.order {
				if sid == id {
					c.order = append(c.order[:i], c.order[i+1:]...)
					break
				}
			}
		})
	}
}

// caller holds c.mu
func (c *Cell[T]) snapshotSubscribers() []func(T) {
	out := make([]func(T), 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.subs[id])
	}
	return out
}

// CloneSlice is a WithClone function for slices of plain values.
func CloneSlice[E any](s []E) []E {
	if s == nil {
		return nil
	}
	out := make([]E, len(s))
	copy(out, s)
	return out
}
