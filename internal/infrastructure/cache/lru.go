// Package cache provides in-memory caches for infrastructure adapters.
package cache

import (
	"container/list"
	"sync"
)

// LRU is a thread-safe least-recently-used cache bounded by entry count and,
// optionally, by a total weight computed per value.
// It implements port.Cache[K, V].
type LRU[K comparable, V any] struct {
	capacity  int
	maxWeight int64
	weight    int64
	weigh     func(V) int64
	onEvict   func(K, V)

	mu    sync.Mutex
	items map[K]*list.Element
	order *list.List // Front = most recent
}

type entry[K comparable, V any] struct {
	key    K
	value  V
	weight int64
}

// NewLRU creates a cache holding at most capacity entries.
// A capacity below 1 is treated as 1.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element),
		order:    list.New(),
	}
}

// WithMaxWeight additionally bounds the sum of weigh(value) over all entries.
// A single value heavier than maxWeight is never stored.
func (c *LRU[K, V]) WithMaxWeight(maxWeight int64, weigh func(V) int64) *LRU[K, V] {
	c.maxWeight = maxWeight
	c.weigh = weigh
	return c
}

// OnEvict registers fn to run for every entry pushed out by capacity or
// weight limits. fn runs with the cache lock held and must not call back into it.
func (c *LRU[K, V]) OnEvict(fn func(K, V)) *LRU[K, V] {
	c.onEvict = fn
	return c
}

// Get returns the value for key and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Set adds or replaces key, then evicts from the back until both limits hold.
func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var w int64
	if c.weigh != nil {
		w = c.weigh(value)
		if c.maxWeight > 0 && w > c.maxWeight {
			c.removeLocked(key)
			return
		}
	}

	if elem, ok := c.items[key]; ok {
		e := elem.Value.(*entry[K, V])
		c.weight += w - e.weight
		e.value, e.weight = value, w
		c.order.MoveToFront(elem)
	} else {
		c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value, weight: w})
		c.weight += w
	}

	for c.order.Len() > c.capacity || (c.maxWeight > 0 && c.weight > c.maxWeight) {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		e := oldest.Value.(*entry[K, V])
		c.deleteLocked(oldest)
		if c.onEvict != nil {
			c.onEvict(e.key, e.value)
		}
	}
}

// Remove deletes key. Missing keys are ignored.
func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(key)
}

func (c *LRU[K, V]) removeLocked(key K) {
	if elem, ok := c.items[key]; ok {
		c.deleteLocked(elem)
	}
}

func (c *LRU[K, V]) deleteLocked(elem *list.Element) {
	e := elem.Value.(*entry[K, V])
	c.order.Remove(elem)
	delete(c.items, e.key)
	c.weight -= e.weight
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Weight returns the summed weight of all entries.
func (c *LRU[K, V]) Weight() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.weight
}

// Clear removes every entry without calling the eviction hook.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*list.Element)
	c.order.Init()
	c.weight = 0
}
