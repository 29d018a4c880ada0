package cache

import (
	"context"
	"slices"
	"time"

	expirable "github.com/go-pkgz/expirable-cache/v3"

	"github.com/craftdays/craftfeed/pkg/domain"
)

type memEntry struct {
	doc  domain.FeedDocument
	tags []string
}

// MemoryCache is an in-process document cache with per-entry TTL
type MemoryCache struct {
	cache expirable.Cache[string, memEntry]
}

// NewMemoryCache makes a cache with default ttl, maxKeys 0 means unlimited
func NewMemoryCache(ttl time.Duration, maxKeys int) *MemoryCache {
	return &MemoryCache{cache: expirable.NewCache[string, memEntry]().WithTTL(ttl).WithMaxKeys(maxKeys)}
}

// Get returns a cached document
func (m *MemoryCache) Get(_ context.Context, key string) (domain.FeedDocument, bool) {
	e, ok := m.cache.Get(key)
	if !ok {
		return domain.FeedDocument{}, false
	}
	return e.doc, true
}

// Set stores a document, zero ttl means cache default
func (m *MemoryCache) Set(_ context.Context, key string, doc domain.FeedDocument, ttl time.Duration, tags ...string) error {
	m.cache.Set(key, memEntry{doc: doc, tags: slices.Clone(tags)}, ttl)
	return nil
}

// Invalidate drops all documents marked with any of the tags
func (m *MemoryCache) Invalidate(_ context.Context, tags ...string) error {
	var drop []string
	for _, key := range m.cache.Keys() {
		e, ok := m.cache.Peek(key)
		if !ok {
			continue
		}
		if slices.ContainsFunc(e.tags, func(t string) bool { return slices.Contains(tags, t) }) {
			drop = append(drop, key)
		}
	}
	for _, key := range drop {
		m.cache.Invalidate(key)
	}
	return nil
}

// Stat returns hit/miss counters
func (m *MemoryCache) Stat(context.Context) Stats {
	s := m.cache.Stat()
	return Stats{Backend: "memory", Hits: int64(s.Hits), Misses: int64(s.Misses), Keys: int64(m.cache.Len())}
}
