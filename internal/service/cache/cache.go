package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"

	"polylinegpx/internal/redis"
	"polylinegpx/internal/service/storage"
)

const GPXKeyPrefix = "gpx"

// Cache stores rendered documents by key
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// GPXKey derives the cache key for a polyline decoded at the given precision
func GPXKey(polyline string, precision int) string {
	d := xxhash.New()
	_, _ = d.WriteString(strconv.Itoa(precision))
	_, _ = d.WriteString("|")
	_, _ = d.WriteString(polyline)
	return GPXKeyPrefix + ":" + strconv.FormatUint(d.Sum64(), 16)
}

// RedisCache keeps entries in Redis through the shared client
type RedisCache struct {
	ttl time.Duration
}

// NewRedisCache expects redis.Init to have been called
func NewRedisCache(ttl time.Duration) *RedisCache {
	return &RedisCache{ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool, error) {
	return redis.Get(ctx, key)
}

func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	return redis.Set(ctx, key, value, c.ttl)
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return redis.Delete(ctx, key)
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is the fallback used when no Redis URL is configured
type MemoryCache struct {
	storage storage.Storage[string, memoryEntry]
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		storage: storage.NewMemoryStorage[string, memoryEntry](),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	entry, ok := c.storage.Get(key)
	if !ok || !c.now().Before(entry.expiresAt) {
		return "", false, nil
	}
	return entry.value, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key, value string) error {
	c.storage.Set(key, memoryEntry{value: value, expiresAt: c.now().Add(c.ttl)})
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.storage.Delete(key)
	return nil
}

// Purge drops expired entries and returns how many were removed
func (c *MemoryCache) Purge() int {
	now := c.now()
	return c.storage.DeleteIf(func(_ string, e memoryEntry) bool {
		return !now.Before(e.expiresAt)
	})
}

// Len returns the number of stored entries, expired ones included
func (c *MemoryCache) Len() int {
	return c.storage.Count()
}
