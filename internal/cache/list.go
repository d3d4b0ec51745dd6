package cache

// entry is one cached key/value pair together with its links into the
// recency list. An entry is linked into at most one list at a time.
type entry[K comparable, V any] struct {
	key   K
	value V
	prev  *entry[K, V]
	next  *entry[K, V]
}

// recencyList keeps entries ordered from most recently used at the front to
// least recently used at the back. head and tail are sentinels holding no
// user data, so attach and detach never special-case an empty list.
type recencyList[K comparable, V any] struct {
	head *entry[K, V]
	tail *entry[K, V]
	size int
}

func newRecencyList[K comparable, V any]() *recencyList[K, V] {
	head := &entry[K, V]{}
	tail := &entry[K, V]{}
	head.next = tail
	tail.prev = head
	return &recencyList[K, V]{head: head, tail: tail}
}

// pushFront links a detached entry immediately after the head sentinel.
func (l *recencyList[K, V]) pushFront(e *entry[K, V]) {
	l.attachFront(e)
	l.size++
}

// moveToFront relinks an entry of this list to the front. The entry must be
// linked into this list; the cache is the only caller and keeps that true.
func (l *recencyList[K, V]) moveToFront(e *entry[K, V]) {
	if l.head.next == e {
		return
	}
	l.detach(e)
	l.attachFront(e)
}

// remove unlinks an entry and clears its links.
func (l *recencyList[K, V]) remove(e *entry[K, V]) {
	l.detach(e)
	e.prev = nil
	e.next = nil
	l.size--
}

// removeBack unlinks and returns the least recently used entry, or nil when
// the list holds no real entries.
func (l *recencyList[K, V]) removeBack() *entry[K, V] {
	e := l.back()
	if e == nil {
		return nil
	}
	l.remove(e)
	return e
}

// back returns the least recently used entry without unlinking it.
func (l *recencyList[K, V]) back() *entry[K, V] {
	if l.tail.prev == l.head {
		return nil
	}
	return l.tail.prev
}

// front returns the most recently used entry, or nil when empty.
func (l *recencyList[K, V]) front() *entry[K, V] {
	if l.head.next == l.tail {
		return nil
	}
	return l.head.next
}

func (l *recencyList[K, V]) len() int {
	return l.size
}

func (l *recencyList[K, V]) detach(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

func (l *recencyList[K, V]) attachFront(e *entry[K, V]) {
	e.prev = l.head
	e.next = l.head.next
	l.head.next.prev = e
	l.head.next = e
}
