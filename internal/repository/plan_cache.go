package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	appErrors "github.com/agathon991/class-schedule-creator/pkg/errors"
)

// PlanCache stores computed resource plans in Redis. Keys hash the
// catalog fingerprint together with the scenario, so a plan computed
// against one catalog is never served for another; the TTL only
// bounds memory.
type PlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPlanCache creates the cache with the given entry TTL.
func NewPlanCache(client *redis.Client, ttl time.Duration) *PlanCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &PlanCache{client: client, ttl: ttl}
}

// Get unmarshals the cached plan into dest, ErrCacheMiss when absent.
func (c *PlanCache) Get(ctx context.Context, key string, dest interface{}) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return appErrors.ErrCacheMiss
	}
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "plan cache read")
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "plan cache decode")
	}
	return nil
}

// Set marshals and stores the value under the key.
func (c *PlanCache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "plan cache encode")
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "plan cache write")
	}
	return nil
}
