package cache

import (
	"github.com/twmb/murmur3"

	"lrucache/pkg/errors"
)

// ShardedCache spreads string keys over independently locked LRU shards to
// cut lock contention. Recency is tracked per shard, so eviction order is
// only approximately LRU across the whole cache; within a shard it is exact.
// Views that need a single recency order (Keys, Oldest, Resize) are not
// provided.
type ShardedCache[V any] struct {
	shards []*SyncedCache[string, V]
	mask   uint32
}

// NewSharded builds a cache of the given total capacity split evenly over
// shards. The shard count is rounded up to the next power of two and each
// shard holds at least one entry, so the effective total capacity may round
// up slightly.
func NewSharded[V any](capacity, shards int) (*ShardedCache[V], error) {
	return NewShardedWithEvict[V](capacity, shards, nil)
}

// NewShardedWithEvict is NewSharded with a callback receiving every entry
// evicted on overflow, invoked outside any shard lock.
func NewShardedWithEvict[V any](capacity, shards int, onEvict EvictCallback[string, V]) (*ShardedCache[V], error) {
	if capacity < 1 {
		return nil, errors.ErrInvalidCapacity
	}
	if shards < 1 {
		return nil, errors.ErrInvalidShardCount
	}

	count := nextPowerOfTwo(shards)
	perShard := (capacity + count - 1) / count

	s := &ShardedCache[V]{
		shards: make([]*SyncedCache[string, V], count),
		mask:   uint32(count - 1),
	}
	for i := range s.shards {
		shard, err := NewSyncedWithEvict[string, V](perShard, onEvict)
		if err != nil {
			return nil, err
		}
		s.shards[i] = shard
	}
	return s, nil
}

// shard returns the shard owning key. The mask works because the shard count
// is a power of two.
func (s *ShardedCache[V]) shard(key string) *SyncedCache[string, V] {
	return s.shards[murmur3.Sum32([]byte(key))&s.mask]
}

// Get returns the value cached under key and marks it most recently used
// within its shard.
func (s *ShardedCache[V]) Get(key string) (V, bool) {
	return s.shard(key).Get(key)
}

// Put stores value under key, evicting within the owning shard when it is
// full. Returns whether an eviction happened.
func (s *ShardedCache[V]) Put(key string, value V) bool {
	return s.shard(key).Put(key, value)
}

// Remove drops key from the cache, reporting whether it was present.
func (s *ShardedCache[V]) Remove(key string) bool {
	return s.shard(key).Remove(key)
}

// Peek returns the value under key without refreshing its recency.
func (s *ShardedCache[V]) Peek(key string) (V, bool) {
	return s.shard(key).Peek(key)
}

// Contains reports whether key is cached, without refreshing its recency.
func (s *ShardedCache[V]) Contains(key string) bool {
	return s.shard(key).Contains(key)
}

// Len returns the number of cached entries summed over all shards.
func (s *ShardedCache[V]) Len() int {
	total := 0
	for _, shard := range s.shards {
		total += shard.Len()
	}
	return total
}

// Cap returns the total capacity summed over all shards.
func (s *ShardedCache[V]) Cap() int {
	total := 0
	for _, shard := range s.shards {
		total += shard.Cap()
	}
	return total
}

// IsEmpty reports whether no shard holds an entry.
func (s *ShardedCache[V]) IsEmpty() bool {
	for _, shard := range s.shards {
		if !shard.IsEmpty() {
			return false
		}
	}
	return true
}

// Purge drops every entry in every shard.
func (s *ShardedCache[V]) Purge() {
	for _, shard := range s.shards {
		shard.Purge()
	}
}

// ShardCount returns the number of shards after power-of-two rounding.
func (s *ShardedCache[V]) ShardCount() int {
	return len(s.shards)
}

// Stats returns the hit/miss/eviction counters aggregated over all shards.
func (s *ShardedCache[V]) Stats() Stats {
	var total Stats
	for _, shard := range s.shards {
		st := shard.Stats()
		total.Hits += st.Hits
		total.Misses += st.Misses
		total.Evictions += st.Evictions
	}
	return total
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
