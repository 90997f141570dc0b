package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/heartline-backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

// ProfileCache stores profiles as JSON under profile:<id>. A nil client turns
// every operation into a no-op miss.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProfileCache(client *redis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{client: client, ttl: ttl}
}

func ProfileKey(id int) string {
	return fmt.Sprintf("profile:%d", id)
}

// Get returns (nil, nil) on a miss.
func (c *ProfileCache) Get(ctx context.Context, id int) (*domain.Profile, error) {
	if c.client == nil {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, ProfileKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile domain.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *ProfileCache) Set(ctx context.Context, profile *domain.Profile) error {
	if c.client == nil {
		return nil
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, ProfileKey(profile.ID), raw, c.ttl).Err()
}

func (c *ProfileCache) Invalidate(ctx context.Context, id int) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, ProfileKey(id)).Err()
}
