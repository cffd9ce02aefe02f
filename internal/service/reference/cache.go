package reference

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// vocabCache is the TTL cache for reference data. Lookup failures are
// treated as misses; set and invalidate are best effort.
type vocabCache interface {
	get(ctx context.Context, key string, dest any) bool
	set(ctx context.Context, key string, value any)
	invalidate(ctx context.Context, keys ...string)
}

const cachePrefix = "harmonia:reference:"

// redisCache shares one warm copy across instances. A nil client
// disables caching; lookups then always hit the store.
type redisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func (c redisCache) get(ctx context.Context, key string, dest any) bool {
	if c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, cachePrefix+key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c redisCache) set(ctx context.Context, key string, value any) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, cachePrefix+key, raw, c.ttl)
}

func (c redisCache) invalidate(ctx context.Context, keys ...string) {
	if c.rdb == nil {
		return
	}
	for _, key := range keys {
		c.rdb.Del(ctx, cachePrefix+key)
	}
}
