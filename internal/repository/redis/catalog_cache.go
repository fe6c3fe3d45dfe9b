package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"whyEngine/business/catalog"
	"whyEngine/domain"
	"whyEngine/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// CatalogCache is a read-through cache in front of a slower item
// repository. Only catalog snapshots are cached; scores are request-scoped
// and never stored.
type CatalogCache struct {
	inner  catalog.ItemRepository
	client *redis.Client
	ttl    time.Duration
}

var _ catalog.ItemRepository = (*CatalogCache)(nil)

func NewCatalogCache(inner catalog.ItemRepository, client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

func (c *CatalogCache) FindByDomain(ctx context.Context, domainName string) ([]domain.Item, error) {
	key := fmt.Sprintf("catalog:domain:%s", domainName)

	val, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var items []domain.Item
		if uErr := json.Unmarshal([]byte(val), &items); uErr == nil {
			return items, nil
		}
		// corrupt entry, fall through to the source and rewrite
		logger.Warn("dropping unreadable catalog cache entry", "key", key)
	} else if err != redis.Nil {
		logger.Warn("catalog cache read failed, hitting source", "key", key, "error", err)
	}

	items, err := c.inner.FindByDomain(ctx, domainName)
	if err != nil {
		return nil, err
	}

	if data, mErr := json.Marshal(items); mErr == nil {
		if sErr := c.client.Set(ctx, key, data, c.ttl).Err(); sErr != nil {
			logger.Warn("catalog cache write failed", "key", key, "error", sErr)
		}
	}

	return items, nil
}

func (c *CatalogCache) Domains(ctx context.Context) ([]string, error) {
	return c.inner.Domains(ctx)
}
