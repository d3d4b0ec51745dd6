package cache_test

import (
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"lrucache/internal/cache"
)

const NUM_GOROUTINES = 10

// generateTestData builds distinct keys and values for benchmarks.
func generateTestData(n int) ([]string, []string) {
	keys := make([]string, n)
	values := make([]string, n)

	for i := 0; i < n; i++ {
		keys[i] = fmt.Sprintf("key_%d", i)
		values[i] = fmt.Sprintf("value_%d", i)
	}

	return keys, values
}

func BenchmarkCache_Put(b *testing.B) {
	c := cache.MustNew[string, string](10000)
	keys, values := generateTestData(b.N)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put(keys[i], values[i])
	}
}

func BenchmarkCache_Get(b *testing.B) {
	c := cache.MustNew[string, string](10000)
	keys, values := generateTestData(10000)

	// Fill the cache up front
	for i := 0; i < len(keys); i++ {
		c.Put(keys[i], values[i])
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(keys[i%len(keys)])
	}
}

// 80% reads, 20% writes
func BenchmarkCache_Mixed(b *testing.B) {
	c := cache.MustNew[string, string](10000)
	keys, values := generateTestData(10000)

	for i := 0; i < len(keys)/2; i++ {
		c.Put(keys[i], values[i])
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if rand.Float32() < 0.8 {
			c.Get(keys[rand.Intn(len(keys))])
		} else {
			c.Put(keys[rand.Intn(len(keys))], values[rand.Intn(len(values))])
		}
	}
}

func BenchmarkSyncedCache_Put(b *testing.B) {
	c := cache.MustNewSynced[string, string](10000)
	keys, values := generateTestData(b.N)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put(keys[i], values[i])
	}
}

func BenchmarkSyncedCache_ConcurrentPut(b *testing.B) {
	c := cache.MustNewSynced[string, string](10000)
	keys, values := generateTestData(b.N)

	itemsPerGoroutine := b.N / NUM_GOROUTINES

	b.ResetTimer()

	var wg sync.WaitGroup
	for g := 0; g < NUM_GOROUTINES; g++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			end := start + itemsPerGoroutine
			if end > b.N {
				end = b.N
			}
			for i := start; i < end; i++ {
				c.Put(keys[i], values[i])
			}
		}(g * itemsPerGoroutine)
	}
	wg.Wait()
}

func BenchmarkSyncedCache_ConcurrentGet(b *testing.B) {
	c := cache.MustNewSynced[string, string](10000)
	keys, values := generateTestData(10000)

	for i := 0; i < len(keys); i++ {
		c.Put(keys[i], values[i])
	}

	itemsPerGoroutine := b.N / NUM_GOROUTINES

	b.ResetTimer()

	var wg sync.WaitGroup
	for g := 0; g < NUM_GOROUTINES; g++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := 0; i < itemsPerGoroutine; i++ {
				c.Get(keys[(start+i)%len(keys)])
			}
		}(g * itemsPerGoroutine)
	}
	wg.Wait()
}

// Single mutex versus sharding under a concurrent mixed load
func BenchmarkSyncedCache_ConcurrentMixed(b *testing.B) {
	c := cache.MustNewSynced[string, string](10000)
	benchmarkConcurrentMixed(b, c.Get, c.Put)
}

func BenchmarkShardedCache_ConcurrentMixed(b *testing.B) {
	c, err := cache.NewSharded[string](10000, 16)
	if err != nil {
		b.Fatal(err)
	}
	benchmarkConcurrentMixed(b, c.Get, c.Put)
}

func benchmarkConcurrentMixed(b *testing.B, get func(string) (string, bool), put func(string, string) bool) {
	keys, values := generateTestData(10000)

	for i := 0; i < len(keys)/2; i++ {
		put(keys[i], values[i])
	}

	itemsPerGoroutine := b.N / NUM_GOROUTINES

	b.ResetTimer()

	var wg sync.WaitGroup
	for g := 0; g < NUM_GOROUTINES; g++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			r := rand.New(rand.NewSource(seed))
			for i := 0; i < itemsPerGoroutine; i++ {
				if r.Float32() < 0.8 {
					get(keys[r.Intn(len(keys))])
				} else {
					put(keys[r.Intn(len(keys))], values[r.Intn(len(values))])
				}
			}
		}(int64(g))
	}
	wg.Wait()
}
