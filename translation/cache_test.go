package translation

import (
	"context"
	"errors"
	"testing"
	"time"
)

type failingCache struct{}

func (failingCache) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}

func (failingCache) Set(ctx context.Context, key, value string) error {
	return errors.New("connection refused")
}

func (failingCache) Backend() string { return "failing" }

func TestCachingTranslatorServesRepeats(t *testing.T) {
	stub := &stubTranslator{}
	translator := NewCachingTranslator(stub, NewMemoryCache(time.Hour, 0), "")

	for i := 0; i < 3; i++ {
		got, err := translator.Translate(context.Background(), "Stay calm", "sw")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got != "[sw] Stay calm" {
			t.Errorf("Expected cached translation, got %q", got)
		}
	}

	if stub.Calls() != 1 {
		t.Errorf("Expected a single backend call, got %d", stub.Calls())
	}

	// another language is a different key
	if _, err := translator.Translate(context.Background(), "Stay calm", "fr"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stub.Calls() != 2 {
		t.Errorf("Expected a second backend call, got %d", stub.Calls())
	}
}

func TestCachingTranslatorSkipsFailures(t *testing.T) {
	stub := &stubTranslator{
		fail:  map[string]bool{"broken": true},
		empty: map[string]bool{"blank": true},
	}
	cache := NewMemoryCache(time.Hour, 0)
	translator := NewCachingTranslator(stub, cache, "test")

	if _, err := translator.Translate(context.Background(), "broken", "sw"); err == nil {
		t.Error("Expected backend error to propagate")
	}
	if _, err := translator.Translate(context.Background(), "blank", "sw"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if cache.Len() != 0 {
		t.Errorf("Failed translations must not be cached, got %d entries", cache.Len())
	}
}

func TestCachingTranslatorIgnoresCacheErrors(t *testing.T) {
	stub := &stubTranslator{}
	translator := NewCachingTranslator(stub, failingCache{}, "")

	got, err := translator.Translate(context.Background(), "Stay calm", "sw")
	if err != nil {
		t.Fatalf("Cache errors must not fail a translation, got %v", err)
	}
	if got != "[sw] Stay calm" {
		t.Errorf("Expected backend translation, got %q", got)
	}
}

func TestCacheKey(t *testing.T) {
	translator := NewCachingTranslator(&stubTranslator{}, NewMemoryCache(0, 0), "")

	a := translator.CacheKey("Stay calm", "sw")
	b := translator.CacheKey("Stay calm", "fr")
	c := translator.CacheKey("Stay calm", "sw")

	if a == b {
		t.Error("Keys must differ per language")
	}
	if a != c {
		t.Error("Keys must be deterministic")
	}
	if want := DefaultCachePrefix + ":sw:"; a[:len(want)] != want {
		t.Errorf("Expected key prefix %q, got %q", want, a)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	cache := NewMemoryCache(time.Minute, 0)
	now := time.Date(2025, 10, 7, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	ctx := context.Background()
	_ = cache.Set(ctx, "k", "v")

	if v, ok, _ := cache.Get(ctx, "k"); !ok || v != "v" {
		t.Fatalf("Expected hit, got %q %v", v, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := cache.Get(ctx, "k"); ok {
		t.Error("Expected expired entry to miss")
	}
	if cache.Len() != 0 {
		t.Errorf("Expected expired entry to be removed, got %d", cache.Len())
	}
}

func TestMemoryCacheEviction(t *testing.T) {
	cache := NewMemoryCache(time.Minute, 2)
	now := time.Date(2025, 10, 7, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	ctx := context.Background()
	_ = cache.Set(ctx, "old", "1")
	now = now.Add(2 * time.Minute)
	_ = cache.Set(ctx, "a", "2")
	_ = cache.Set(ctx, "b", "3")

	if _, ok, _ := cache.Get(ctx, "old"); ok {
		t.Error("Expected expired entry to be evicted first")
	}
	if cache.Len() != 2 {
		t.Errorf("Expected 2 entries, got %d", cache.Len())
	}

	_ = cache.Set(ctx, "c", "4")
	if cache.Len() != 2 {
		t.Errorf("Cache must not grow beyond its bound, got %d", cache.Len())
	}
	if v, ok, _ := cache.Get(ctx, "c"); !ok || v != "4" {
		t.Errorf("Expected newest entry to be stored, got %q %v", v, ok)
	}
}

func TestNewRedisCacheRequiresAddress(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), RedisOptions{}); err == nil {
		t.Error("Expected error for empty address")
	}
}

func TestNewRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	if _, err := NewRedisCache(ctx, RedisOptions{Addr: "127.0.0.1:1"}); err == nil {
		t.Error("Expected ping error for unreachable server")
	}
}
