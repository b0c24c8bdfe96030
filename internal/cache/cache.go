package cache

import "sync"

// Cache is a thread-safe LRU cache holding at most limit entries.
// A limit of 0 means unlimited.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*node[K, V]
	head    *node[K, V] // most recently used
	tail    *node[K, V] // least recently used
	limit   int
	onEvict func(K, V)
}

type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

// New creates a cache holding at most limit entries.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*node[K, V]),
		limit:   limit,
	}
}

// OnEvict sets a function called with every entry dropped to make room.
// It runs with the cache locked and must not call back into the cache.
func (c *Cache[K, V]) OnEvict(fn func(K, V)) {
	c.mu.Lock()
	c.onEvict = fn
	c.mu.Unlock()
}

// Get returns the value for key and marks it recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.touch(n)
	return n.value, true
}

// Set stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// GetOrCreate returns the cached value for key or stores the result of
// create. create runs under the lock, so concurrent callers never build
// the same key twice. Errors from create are returned and not cached.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.entries[key]; ok {
		c.touch(n)
		return n.value, nil
	}
	v, err := create()
	if err != nil {
		return v, err
	}
	c.set(key, v)
	return v, nil
}

// Delete removes key. It reports whether the key was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if ok {
		c.unlink(n)
		delete(c.entries, key)
	}
	return ok
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Caller must hold c.mu.
func (c *Cache[K, V]) set(key K, value V) {
	if n, ok := c.entries[key]; ok {
		n.value = value
		c.touch(n)
		return
	}
	n := &node[K, V]{key: key, value: value}
	c.entries[key] = n
	c.pushFront(n)
	for c.limit > 0 && len(c.entries) > c.limit {
		old := c.tail
		c.unlink(old)
		delete(c.entries, old.key)
		if c.onEvict != nil {
			c.onEvict(old.key, old.value)
		}
	}
}

func (c *Cache[K, V]) touch(n *node[K, V]) {
	if n == c.head {
		return
	}
	c.unlink(n)
	c.pushFront(n)
}

func (c *Cache[K, V]) pushFront(n *node[K, V]) {
	n.prev = nil
	n.next = c.head
	if c.head != nil {
		c.head.prev = n
	}
	c.head = n
	if c.tail == nil {
		c.tail = n
	}
}

func (c *Cache[K, V]) unlink(n *node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		c.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		c.tail = n.prev
	}
	n.prev, n.next = nil, nil
}
