package cache

import (
	"sync"

	"github.com/couchcryptid/neo-impact-service/internal/domain"
	"github.com/couchcryptid/neo-impact-service/internal/observability"
)

// CachedModel wraps an ImpactModel with an in-memory LRU cache. Only the
// impact analysis is cached: it is a pure function of its input, while the
// trajectory and environmental stages draw fresh random values per call.
type CachedModel struct {
	inner   domain.ImpactModel
	cache   *lruCache[domain.ImpactInput, domain.ImpactAnalysisResult]
	metrics *observability.Metrics
}

// NewCachedModel creates a cache decorator around an impact model.
func NewCachedModel(inner domain.ImpactModel, maxEntries int, metrics *observability.Metrics) *CachedModel {
	return &CachedModel{
		inner:   inner,
		cache:   newLRUCache[domain.ImpactInput, domain.ImpactAnalysisResult](maxEntries),
		metrics: metrics,
	}
}

func (c *CachedModel) ImpactAnalysis(in domain.ImpactInput) (domain.ImpactAnalysisResult, error) {
	if result, ok := c.cache.get(in); ok {
		c.metrics.AnalysisCache.WithLabelValues("hit").Inc()
		return result, nil
	}
	c.metrics.AnalysisCache.WithLabelValues("miss").Inc()

	result, err := c.inner.ImpactAnalysis(in)
	if err != nil {
		return result, err
	}
	c.cache.put(in, result)
	return result, nil
}

// Len returns the number of cached analyses.
func (c *CachedModel) Len() int {
	return c.cache.len()
}

// lruCache is a simple thread-safe LRU cache.
type lruCache[K comparable, V any] struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[K]*entry[K, V]
	head       *entry[K, V] // most recently used
	tail       *entry[K, V] // least recently used
}

type entry[K comparable, V any] struct {
	key   K
	value V
	prev  *entry[K, V]
	next  *entry[K, V]
}

func newLRUCache[K comparable, V any](maxEntries int) *lruCache[K, V] {
	return &lruCache[K, V]{
		maxEntries: maxEntries,
		entries:    make(map[K]*entry[K, V]),
	}
}

func (c *lruCache[K, V]) get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache[K, V]) put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry[K, V]{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache[K, V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *lruCache[K, V]) moveToFront(e *entry[K, V]) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache[K, V]) addToFront(e *entry[K, V]) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache[K, V]) remove(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache[K, V]) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
