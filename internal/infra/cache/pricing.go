package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"therapist-management-saas/internal/usecase/queries"
	"therapist-management-saas/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	therapistPricingKeyPrefix = "pricing:therapist:"
	shopDefaultsKeyPrefix     = "pricing:shop:"
)

type LookupRecorder interface {
	RecordCacheLookup(hit bool)
}

// PricingCache is a cache-aside decorator over a PricingReadStore. Only
// successful loads are cached and Redis failures fall through to the store.
type PricingCache struct {
	next     queries.PricingReadStore
	client   *redis.Client
	ttl      time.Duration
	recorder LookupRecorder
	logger   *slog.Logger
}

func NewPricingCache(next queries.PricingReadStore, client *redis.Client, ttl time.Duration, recorder LookupRecorder, logger *slog.Logger) *PricingCache {
	return &PricingCache{
		next:     next,
		client:   client,
		ttl:      ttl,
		recorder: recorder,
		logger:   logger,
	}
}

func (c *PricingCache) FindTherapistPricing(ctx context.Context, shopID, therapistID uuid.UUID) (*readmodel.TherapistPricingRM, error) {
	key := therapistPricingKey(shopID, therapistID)

	var cached readmodel.TherapistPricingRM
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	rm, err := c.next.FindTherapistPricing(ctx, shopID, therapistID)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, rm)
	return rm, nil
}

func (c *PricingCache) FindShopDefaults(ctx context.Context, shopID uuid.UUID) (*readmodel.ShopDefaultsRM, error) {
	key := shopDefaultsKeyPrefix + shopID.String()

	var cached readmodel.ShopDefaultsRM
	if c.get(ctx, key, &cached) {
		return &cached, nil
	}

	rm, err := c.next.FindShopDefaults(ctx, shopID)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, rm)
	return rm, nil
}

func (c *PricingCache) get(ctx context.Context, key string, dest any) bool {
	if c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		c.record(false)
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.WarnContext(ctx, "cache value unreadable", slog.String("key", key), slog.String("error", err.Error()))
		c.record(false)
		return false
	}

	c.record(true)
	return true
}

func (c *PricingCache) set(ctx context.Context, key string, value any) {
	if c.client == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "cache marshal failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (c *PricingCache) record(hit bool) {
	if c.recorder != nil {
		c.recorder.RecordCacheLookup(hit)
	}
}

// keyed by shop too; the same therapist id looked up for another shop is a different entry
func therapistPricingKey(shopID, therapistID uuid.UUID) string {
	return therapistPricingKeyPrefix + shopID.String() + ":" + therapistID.String()
}
