package translation

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/giygas/afyabuddy-api/interfaces"
	"github.com/giygas/afyabuddy-api/logging"
	"github.com/giygas/afyabuddy-api/metrics"
)

const (
	DefaultCacheTTL        = 7 * 24 * time.Hour
	DefaultCachePrefix     = "afyabuddy:tr"
	defaultMemoryCacheSize = 10000
)

// CachingTranslator serves repeated translations from a cache. Cache
// failures are logged and never fail a translation.
type CachingTranslator struct {
	next   interfaces.Translator
	cache  interfaces.TranslationCache
	prefix string
}

// NewCachingTranslator wraps next with cache
func NewCachingTranslator(next interfaces.Translator, cache interfaces.TranslationCache, prefix string) *CachingTranslator {
	if prefix == "" {
		prefix = DefaultCachePrefix
	}
	return &CachingTranslator{next: next, cache: cache, prefix: prefix}
}

// CacheKey returns the cache key for text translated into targetLanguage
func (t *CachingTranslator) CacheKey(text, targetLanguage string) string {
	sum := sha1.Sum([]byte(targetLanguage + "\x00" + text))
	return t.prefix + ":" + targetLanguage + ":" + hex.EncodeToString(sum[:])
}

func (t *CachingTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	key := t.CacheKey(text, targetLanguage)

	cached, ok, err := t.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.TranslationCache.WithLabelValues(metrics.CacheError).Inc()
		logging.Warn("Translation cache read failed", "backend", t.cache.Backend(), "error", err)
	case ok:
		metrics.TranslationCache.WithLabelValues(metrics.CacheHit).Inc()
		return cached, nil
	default:
		metrics.TranslationCache.WithLabelValues(metrics.CacheMiss).Inc()
	}

	translated, err := t.next.Translate(ctx, text, targetLanguage)
	if err != nil || strings.TrimSpace(translated) == "" {
		return translated, err
	}

	if err := t.cache.Set(ctx, key, translated); err != nil {
		metrics.TranslationCache.WithLabelValues(metrics.CacheError).Inc()
		logging.Warn("Translation cache write failed", "backend", t.cache.Backend(), "error", err)
	}

	return translated, nil
}

type memoryEntry struct {
	value   string
	expires time.Time
}

// MemoryCache is an in-process TTL cache used when Redis is not available
type MemoryCache struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// Compile-time check to ensure MemoryCache implements TranslationCache
var _ interfaces.TranslationCache = (*MemoryCache)(nil)

// NewMemoryCache creates a cache holding at most maxEntries values for ttl
func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if maxEntries <= 0 {
		maxEntries = defaultMemoryCacheSize
	}
	return &MemoryCache{
		entries:    make(map[string]memoryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (c *MemoryCache) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false, nil
	}
	if c.now().After(entry.expires) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", false, nil
	}
	return entry.value, true, nil
}

func (c *MemoryCache) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}
	c.entries[key] = memoryEntry{value: value, expires: c.now().Add(c.ttl)}
	return nil
}

// evictLocked drops expired entries, then an arbitrary one if still full
func (c *MemoryCache) evictLocked() {
	now := c.now()
	for k, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, k)
		}
	}
	if len(c.entries) < c.maxEntries {
		return
	}
	for k := range c.entries {
		delete(c.entries, k)
		return
	}
}

// Len returns the number of stored entries, expired ones included
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *MemoryCache) Backend() string {
	return "memory"
}
