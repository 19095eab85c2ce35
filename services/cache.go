package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKeyTestsAll       = "tests:all"
	cacheKeyTestsPublished = "tests:published"
	cacheKeyActiveTags     = "tags:active"
)

func testListCacheKey(publishedOnly bool) string {
	if publishedOnly {
		return cacheKeyTestsPublished
	}
	return cacheKeyTestsAll
}

func testListCacheKeys() []string {
	return []string{cacheKeyTestsAll, cacheKeyTestsPublished}
}

// Cache is a fail-open read cache over Redis. Every operation tolerates a
// missing or unreachable Redis: readers fall through to the store and writers
// silently skip. A nil *Cache disables caching entirely.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) GetJSON(key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}

	data, err := c.client.Get(context.Background(), key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache get %s: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("cache decode %s: %v", key, err)
		return false
	}
	return true
}

func (c *Cache) SetJSON(key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("cache encode %s: %v", key, err)
		return
	}

	if err := c.client.Set(context.Background(), key, data, c.ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

func (c *Cache) Invalidate(keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(context.Background(), keys...).Err(); err != nil {
		log.Printf("cache invalidate %v: %v", keys, err)
	}
}
