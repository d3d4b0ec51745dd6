package cache

import "sync"

// evictedPair carries a dropped entry from inside the lock to the callback.
type evictedPair[K comparable, V any] struct {
	key   K
	value V
}

// SyncedCache is a Cache safe for concurrent use. A single mutex guards the
// recency list and the key index together; every operation, Get included,
// relinks entries, so there is no read-only path. Each critical section is
// O(1), and concurrent calls behave as if executed in some serial order.
//
// The eviction callback never runs under the lock. Evictions are queued while
// locked and delivered after unlock, so a callback may call back into the
// same SyncedCache without deadlocking, and always sees a consistent cache.
type SyncedCache[K comparable, V any] struct {
	mu      sync.Mutex
	inner   *Cache[K, V]
	onEvict EvictCallback[K, V]
	pending []evictedPair[K, V]
}

// NewSynced creates a thread-safe LRU cache holding at most capacity entries.
func NewSynced[K comparable, V any](capacity int) (*SyncedCache[K, V], error) {
	return NewSyncedWithEvict[K, V](capacity, nil)
}

// NewSyncedWithEvict is NewSynced with a callback receiving every entry
// evicted on overflow, invoked outside the lock.
func NewSyncedWithEvict[K comparable, V any](capacity int, onEvict EvictCallback[K, V]) (*SyncedCache[K, V], error) {
	s := &SyncedCache[K, V]{onEvict: onEvict}
	inner, err := NewWithEvict[K, V](capacity, s.queueEviction)
	if err != nil {
		return nil, err
	}
	s.inner = inner
	return s, nil
}

// MustNewSynced is NewSynced but panics on invalid capacity.
func MustNewSynced[K comparable, V any](capacity int) *SyncedCache[K, V] {
	s, err := NewSynced[K, V](capacity)
	if err != nil {
		panic(err)
	}
	return s
}

// queueEviction is the inner cache's callback; it runs under the lock.
func (s *SyncedCache[K, V]) queueEviction(key K, value V) {
	if s.onEvict == nil {
		return
	}
	s.pending = append(s.pending, evictedPair[K, V]{key: key, value: value})
}

// takePending hands over the queued evictions. Must be called under the lock.
func (s *SyncedCache[K, V]) takePending() []evictedPair[K, V] {
	queued := s.pending
	s.pending = nil
	return queued
}

// deliver fires the user callback for each queued eviction, outside the lock.
func (s *SyncedCache[K, V]) deliver(queued []evictedPair[K, V]) {
	for _, ev := range queued {
		s.onEvict(ev.key, ev.value)
	}
}

// Get returns the value cached under key and marks it most recently used.
func (s *SyncedCache[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Get(key)
}

// Put stores value under key, evicting the least recently used entry when a
// new key overflows a full cache. Returns whether an eviction happened.
func (s *SyncedCache[K, V]) Put(key K, value V) bool {
	s.mu.Lock()
	evicted := s.inner.Put(key, value)
	queued := s.takePending()
	s.mu.Unlock()

	s.deliver(queued)
	return evicted
}

// Remove drops key from the cache, reporting whether it was present.
func (s *SyncedCache[K, V]) Remove(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Remove(key)
}

// Peek returns the value under key without refreshing its recency.
func (s *SyncedCache[K, V]) Peek(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Peek(key)
}

// Contains reports whether key is cached, without refreshing its recency.
func (s *SyncedCache[K, V]) Contains(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Contains(key)
}

// Oldest returns the least recently used entry without removing it.
func (s *SyncedCache[K, V]) Oldest() (K, V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Oldest()
}

// RemoveOldest removes and returns the least recently used entry.
func (s *SyncedCache[K, V]) RemoveOldest() (K, V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.RemoveOldest()
}

// Keys returns all cached keys from most to least recently used.
func (s *SyncedCache[K, V]) Keys() []K {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Keys()
}

// Values returns all cached values from most to least recently used.
func (s *SyncedCache[K, V]) Values() []V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Values()
}

// Range calls f for each entry from most to least recently used while holding
// the lock. f must not call back into the cache and must not mutate it.
func (s *SyncedCache[K, V]) Range(f func(key K, value V) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Range(f)
}

// Len returns the number of cached entries.
func (s *SyncedCache[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Len()
}

// Cap returns the maximum number of entries the cache holds.
func (s *SyncedCache[K, V]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Cap()
}

// IsEmpty reports whether the cache holds no entries.
func (s *SyncedCache[K, V]) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.IsEmpty()
}

// Purge drops every entry without firing the eviction callback.
func (s *SyncedCache[K, V]) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Purge()
}

// Resize changes the capacity, evicting entries (with callbacks, delivered
// outside the lock) when shrinking. Returns how many entries were evicted.
func (s *SyncedCache[K, V]) Resize(capacity int) (int, error) {
	s.mu.Lock()
	evicted, err := s.inner.Resize(capacity)
	queued := s.takePending()
	s.mu.Unlock()

	s.deliver(queued)
	return evicted, err
}

// Stats returns a snapshot of the hit/miss/eviction counters.
func (s *SyncedCache[K, V]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Stats()
}
