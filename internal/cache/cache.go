// Package cache implements a fixed-capacity in-memory LRU cache: a key index
// (hash map) paired with an intrusive recency list gives O(1) Get, Put and
// Remove, evicting the least recently used entry on overflow.
package cache

import (
	"lrucache/pkg/errors"
)

// EvictCallback is invoked when a full cache drops its least recently used
// entry to make room. It runs after both internal structures are consistent
// again, so the callback may read the cache it is registered on.
type EvictCallback[K comparable, V any] func(key K, value V)

// Stats counts cache effectiveness since construction. Peek and Contains do
// not touch the counters.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Cache is a fixed-capacity LRU cache. All operations run in O(1) expected
// time. It is not safe for concurrent use; wrap it in a SyncedCache for that.
type Cache[K comparable, V any] struct {
	capacity int
	ll       *recencyList[K, V]
	index    keyIndex[K, V]
	onEvict  EvictCallback[K, V]
	stats    Stats
}

// New creates an LRU cache holding at most capacity entries. Capacities
// below 1 are rejected with ErrInvalidCapacity.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	return NewWithEvict[K, V](capacity, nil)
}

// NewWithEvict is New with a callback receiving every entry evicted on
// overflow.
func NewWithEvict[K comparable, V any](capacity int, onEvict EvictCallback[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, errors.ErrInvalidCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		ll:       newRecencyList[K, V](),
		index:    newKeyIndex[K, V](),
		onEvict:  onEvict,
	}, nil
}

// MustNew is New but panics on invalid capacity, for fixed literal capacities.
func MustNew[K comparable, V any](capacity int) *Cache[K, V] {
	c, err := New[K, V](capacity)
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the value cached under key and marks it most recently used.
// A miss returns the zero value and false and leaves the recency order
// untouched.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.index.lookup(key)
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}
	c.stats.Hits++
	c.ll.moveToFront(e)
	return e.value, true
}

// Put stores value under key. An existing key is updated in place and marked
// most recently used; size does not change. Inserting a new key into a full
// cache evicts the least recently used entry first, so size never exceeds
// capacity. Returns whether an eviction happened.
func (c *Cache[K, V]) Put(key K, value V) bool {
	if e, ok := c.index.lookup(key); ok {
		e.value = value
		c.ll.moveToFront(e)
		return false
	}

	evicted := false
	if c.ll.len() >= c.capacity {
		c.evictOldest()
		evicted = true
	}

	e := &entry[K, V]{key: key, value: value}
	c.ll.pushFront(e)
	c.index.insert(key, e)
	return evicted
}

// Remove drops key from the cache, reporting whether it was present. The
// eviction callback is not fired.
func (c *Cache[K, V]) Remove(key K) bool {
	e, ok := c.index.lookup(key)
	if !ok {
		return false
	}
	c.index.erase(key)
	c.ll.remove(e)
	return true
}

// Peek returns the value under key without refreshing its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	if e, ok := c.index.lookup(key); ok {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is cached, without refreshing its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index.lookup(key)
	return ok
}

// Oldest returns the least recently used entry without removing it.
func (c *Cache[K, V]) Oldest() (K, V, bool) {
	e := c.ll.back()
	if e == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return e.key, e.value, true
}

// RemoveOldest removes and returns the least recently used entry. Unlike an
// overflow eviction it does not fire the eviction callback.
func (c *Cache[K, V]) RemoveOldest() (K, V, bool) {
	e := c.ll.removeBack()
	if e == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	c.index.erase(e.key)
	return e.key, e.value, true
}

// Keys returns all cached keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.ll.len())
	for e := c.ll.head.next; e != c.ll.tail; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// Values returns all cached values from most to least recently used.
func (c *Cache[K, V]) Values() []V {
	values := make([]V, 0, c.ll.len())
	for e := c.ll.head.next; e != c.ll.tail; e = e.next {
		values = append(values, e.value)
	}
	return values
}

// Range calls f for each entry from most to least recently used, stopping
// early when f returns false. f must not mutate the cache.
func (c *Cache[K, V]) Range(f func(key K, value V) bool) {
	for e := c.ll.head.next; e != c.ll.tail; e = e.next {
		if !f(e.key, e.value) {
			return
		}
	}
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return c.ll.len()
}

// Cap returns the maximum number of entries the cache holds.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// IsEmpty reports whether the cache holds no entries.
func (c *Cache[K, V]) IsEmpty() bool {
	return c.ll.len() == 0
}

// Purge drops every entry. The eviction callback is not fired and the stats
// counters keep their values.
func (c *Cache[K, V]) Purge() {
	c.ll = newRecencyList[K, V]()
	c.index = newKeyIndex[K, V]()
}

// Resize changes the capacity. Shrinking below the current size evicts least
// recently used entries, with callbacks, until the cache fits. Returns how
// many entries were evicted, or ErrInvalidCapacity when capacity < 1.
func (c *Cache[K, V]) Resize(capacity int) (int, error) {
	if capacity < 1 {
		return 0, errors.ErrInvalidCapacity
	}
	evicted := 0
	for c.ll.len() > capacity {
		c.evictOldest()
		evicted++
	}
	c.capacity = capacity
	return evicted, nil
}

// Stats returns a snapshot of the hit/miss/eviction counters.
func (c *Cache[K, V]) Stats() Stats {
	return c.stats
}

// evictOldest drops the least recently used entry. The callback runs last,
// once index and list agree again, so it may safely re-enter the cache.
func (c *Cache[K, V]) evictOldest() {
	e := c.ll.removeBack()
	if e == nil {
		return
	}
	c.index.erase(e.key)
	c.stats.Evictions++
	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}
