// Package cache holds the in-memory caches shared between items.
package cache

import (
	"container/list"
	"sync"
)

// LRU keeps recently used values while their summed cost stays within a
// budget. It implements port.Cache[K, V].
//
// Every value costs 1 unless WithCost is given, so the budget defaults to an
// entry count. Get and Set both mark an entry as recently used.
type LRU[K comparable, V any] struct {
	budget  int
	cost    func(V) int
	onEvict func(K, V)

	mu    sync.Mutex
	used  int
	items map[K]*list.Element
	order *list.List // front is most recent
}

type entry[K comparable, V any] struct {
	key   K
	value V
	cost  int
}

// Option configures an LRU.
type Option[K comparable, V any] func(*LRU[K, V])

// WithCost weighs values, for example by line count.
func WithCost[K comparable, V any](cost func(V) int) Option[K, V] {
	return func(c *LRU[K, V]) { c.cost = cost }
}

// WithOnEvict is called for every value pushed out by the budget. It runs
// after the cache lock is released.
func WithOnEvict[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *LRU[K, V]) { c.onEvict = fn }
}

// NewLRU creates a cache holding at most budget worth of values. A budget
// below 1 is raised to 1.
func NewLRU[K comparable, V any](budget int, opts ...Option[K, V]) *LRU[K, V] {
	c := &LRU[K, V]{
		budget: max(budget, 1),
		cost:   func(V) int { return 1 },
		items:  make(map[K]*list.Element),
		order:  list.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
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

// Set stores value under key and evicts the least recently used entries
// until the budget holds again. A value costing more than the whole budget
// is not stored, and drops any older value under key.
func (c *LRU[K, V]) Set(key K, value V) {
	cost := max(c.cost(value), 1)

	c.mu.Lock()
	var evicted []*entry[K, V]
	if elem, ok := c.items[key]; ok {
		e := elem.Value.(*entry[K, V])
		c.order.Remove(elem)
		delete(c.items, key)
		c.used -= e.cost
	}
	if cost <= c.budget {
		for c.used+cost > c.budget {
			oldest := c.order.Back()
			e := oldest.Value.(*entry[K, V])
			c.order.Remove(oldest)
			delete(c.items, e.key)
			c.used -= e.cost
			evicted = append(evicted, e)
		}
		c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value, cost: cost})
		c.used += cost
	}
	onEvict := c.onEvict
	c.mu.Unlock()

	if onEvict != nil {
		for _, e := range evicted {
			onEvict(e.key, e.value)
		}
	}
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Used returns the summed cost of the cached entries.
func (c *LRU[K, V]) Used() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.used
}
