// AngelaMos | 2026
// cache.go

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyCategories = "catalog:categories"
	keyProducts   = "catalog:products:c=%s:b=%s"
	keyPattern    = "catalog:*"

	scanBatch = 100
)

// Cache holds the public (active-only) listings. Misses and Redis errors
// both report ok=false so callers fall through to the database.
type Cache interface {
	Categories(ctx context.Context) ([]Category, bool)
	StoreCategories(ctx context.Context, categories []Category)
	Products(ctx context.Context, filter ProductFilter) ([]Product, bool)
	StoreProducts(ctx context.Context, filter ProductFilter, products []Product)
	Invalidate(ctx context.Context)
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// productsKey leaves an absent filter segment empty. Slugs are never empty,
// so no real filter shares a key with the unfiltered listing.
func productsKey(filter ProductFilter) string {
	var bestseller string
	if filter.Bestseller != nil {
		bestseller = strconv.FormatBool(*filter.Bestseller)
	}
	return fmt.Sprintf(keyProducts, filter.Category, bestseller)
}

func (c *RedisCache) Categories(ctx context.Context) ([]Category, bool) {
	var out []Category
	return out, c.load(ctx, keyCategories, &out)
}

func (c *RedisCache) StoreCategories(ctx context.Context, categories []Category) {
	c.store(ctx, keyCategories, categories)
}

func (c *RedisCache) Products(
	ctx context.Context,
	filter ProductFilter,
) ([]Product, bool) {
	var out []Product
	return out, c.load(ctx, productsKey(filter), &out)
}

func (c *RedisCache) StoreProducts(
	ctx context.Context,
	filter ProductFilter,
	products []Product,
) {
	c.store(ctx, productsKey(filter), products)
}

func (c *RedisCache) Invalidate(ctx context.Context) {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, keyPattern, scanBatch).Result()
		if err != nil {
			slog.WarnContext(ctx, "catalog cache scan failed", "error", err)
			return
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				slog.WarnContext(ctx, "catalog cache delete failed", "error", err)
				return
			}
		}

		cursor = next
		if cursor == 0 {
			return
		}
	}
}

func (c *RedisCache) load(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "catalog cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		slog.WarnContext(ctx, "catalog cache entry corrupt", "key", key, "error", err)
		return false
	}

	return true
}

func (c *RedisCache) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "catalog cache write failed", "key", key, "error", err)
	}
}

type noopCache struct{}

func (noopCache) Categories(context.Context) ([]Category, bool) { return nil, false }

func (noopCache) StoreCategories(context.Context, []Category) {}

func (noopCache) Products(context.Context, ProductFilter) ([]Product, bool) {
	return nil, false
}

func (noopCache) StoreProducts(context.Context, ProductFilter, []Product) {}

func (noopCache) Invalidate(context.Context) {}
