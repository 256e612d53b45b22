package cache

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"acme_shop/internal/domain/entities"
	"acme_shop/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const productKeyPrefix = "product:"

// RedisProductCache caches single products as JSON blobs in Redis.
// All failures are swallowed: the storefront must keep working when Redis
// is down, just without the cache.
type RedisProductCache struct {
	rdb    *redis.Client
	logger *zap.Logger
}

var _ interfaces.IProductCache = (*RedisProductCache)(nil)

// NewRedisProductCacheFromEnv connects using REDIS_ADDR and REDIS_PASSWORD.
// Returns nil when REDIS_ADDR is unset so the storefront can run uncached.
func NewRedisProductCacheFromEnv(logger *zap.Logger) *RedisProductCache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	return &RedisProductCache{rdb: rdb, logger: logger}
}

func (c *RedisProductCache) Get(ctx context.Context, id string) (entities.Product, bool) {
	raw, err := c.rdb.Get(ctx, productKeyPrefix+id).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("product cache read failed", zap.String("id", id), zap.Error(err))
		}
		return entities.Product{}, false
	}
	var p entities.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		c.logger.Warn("product cache entry corrupt", zap.String("id", id), zap.Error(err))
		return entities.Product{}, false
	}
	return p, true
}

func (c *RedisProductCache) Set(ctx context.Context, p entities.Product, ttl time.Duration) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, productKeyPrefix+p.ID, raw, ttl).Err(); err != nil {
		c.logger.Warn("product cache write failed", zap.String("id", p.ID), zap.Error(err))
	}
}
