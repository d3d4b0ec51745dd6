package cache

// keyIndex maps each cached key to its entry in the recency list. It is a
// thin wrapper over a map with O(1) average operations; keeping it in
// bijection with the list is the cache's job, not the index's.
type keyIndex[K comparable, V any] map[K]*entry[K, V]

func newKeyIndex[K comparable, V any]() keyIndex[K, V] {
	return make(keyIndex[K, V])
}

func (i keyIndex[K, V]) lookup(key K) (*entry[K, V], bool) {
	e, ok := i[key]
	return e, ok
}

func (i keyIndex[K, V]) insert(key K, e *entry[K, V]) {
	i[key] = e
}

func (i keyIndex[K, V]) erase(key K) {
	delete(i, key)
}

func (i keyIndex[K, V]) len() int {
	return len(i)
}
