// Folio - Related Article Recommendations for Blogs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/folio

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/goccy/go-json"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tomtom215/folio/internal/models"
)

// DefaultMaxEntries bounds the cache when no capacity is configured.
const DefaultMaxEntries = 1000

// AnyCategory tags an entry that a change in any category can invalidate.
// ClearCategory removes such entries whatever category it is given.
const AnyCategory models.Category = "*"

// entry is a cached value tagged with its partition and the categories it
// depends on.
type entry[V any] struct {
	kind       Kind
	value      V
	categories map[models.Category]struct{}
}

// Stats is a point-in-time view of the cache.
type Stats struct {
	EntriesByKind map[string]int `json:"entries_by_kind"`
	TotalEntries  int            `json:"total_entries"`
	Hits          int64          `json:"hits"`
	Misses        int64          `json:"misses"`
	Evictions     int64          `json:"evictions"`
}

// HitRate returns the hit rate as a percentage.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// ResultCache is a bounded, partitioned LRU cache of computed results.
//
// Entries never expire. They leave the cache through an explicit clear (by
// kind or by category) or when capacity eviction removes the least recently
// used entry. Values are passed through the clone function on read so that
// callers can never mutate a stored result.
//
// ResultCache is safe for concurrent use and starts no goroutines.
type ResultCache[V any] struct {
	// mu serializes multi-key operations (clears, stats) against writers.
	mu    sync.RWMutex
	lru   *lru.Cache[string, entry[V]]
	clone func(V) V

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// New creates a ResultCache holding at most maxEntries values.
// A nil clone stores and returns values as-is.
func New[V any](maxEntries int, clone func(V) V) (*ResultCache[V], error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if clone == nil {
		clone = func(v V) V { return v }
	}

	l, err := lru.New[string, entry[V]](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}

	return &ResultCache[V]{lru: l, clone: clone}, nil
}

// Key builds a cache key for the given kind from arbitrary parameters.
func Key(kind Kind, params interface{}) string {
	return GenerateKey(string(kind), params)
}

// Get returns a copy of the value stored under key.
func (c *ResultCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.lru.Get(key)
	c.mu.RUnlock()

	if !ok {
		c.misses.Add(1)
		var zero V
		return zero, false
	}

	c.hits.Add(1)
	return c.clone(e.value), true
}

// Set stores a copy of value under key, tagged with kind and the categories
// the value depends on.
func (c *ResultCache[V]) Set(key string, kind Kind, value V, categories ...models.Category) {
	tags := make(map[models.Category]struct{}, len(categories))
	for _, cat := range categories {
		tags[cat] = struct{}{}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.lru.Add(key, entry[V]{kind: kind, value: c.clone(value), categories: tags}) {
		c.evictions.Add(1)
	}
}

// Clear removes every entry of the given kind, or all entries for KindAll.
// It returns the number of entries removed. Hit and miss counters are kept.
func (c *ResultCache[V]) Clear(kind Kind) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if kind == KindAll {
		n := c.lru.Len()
		c.lru.Purge()
		return n
	}

	removed := 0
	for _, key := range c.lru.Keys() {
		if e, ok := c.lru.Peek(key); ok && e.kind == kind {
			if c.lru.Remove(key) {
				removed++
			}
		}
	}
	return removed
}

// ClearCategory removes every entry that depends on the given category,
// including entries tagged with AnyCategory. It returns the number of
// entries removed.
func (c *ResultCache[V]) ClearCategory(category models.Category) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for _, key := range c.lru.Keys() {
		e, ok := c.lru.Peek(key)
		if !ok {
			continue
		}
		if !e.dependsOn(category) {
			continue
		}
		if c.lru.Remove(key) {
			removed++
		}
	}
	return removed
}

func (e entry[V]) dependsOn(category models.Category) bool {
	if _, wildcard := e.categories[AnyCategory]; wildcard {
		return true
	}
	_, tagged := e.categories[category]
	return tagged
}

// Len returns the number of cached entries.
func (c *ResultCache[V]) Len() int {
	return c.lru.Len()
}

// Stats returns entry counts per kind and the lifetime hit and miss counters.
func (c *ResultCache[V]) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	byKind := make(map[string]int, len(Kinds()))
	for _, k := range Kinds() {
		byKind[k.String()] = 0
	}

	total := 0
	for _, key := range c.lru.Keys() {
		if e, ok := c.lru.Peek(key); ok {
			byKind[e.kind.String()]++
			total++
		}
	}

	return Stats{
		EntriesByKind: byKind,
		TotalEntries:  total,
		Hits:          c.hits.Load(),
		Misses:        c.misses.Load(),
		Evictions:     c.evictions.Load(),
	}
}

// GenerateKey creates a cache key from method name and parameters.
// Parameters are JSON-encoded and hashed to keep keys compact.
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		// Fallback to simple string key
		return fmt.Sprintf("%s:%v", method, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
