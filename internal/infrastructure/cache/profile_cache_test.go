package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gdugdh24/heartline-backend/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*ProfileCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return NewProfileCache(rdb, time.Minute), mr
}

func TestProfileCache_SetGetInvalidate(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	got, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)

	profile := &domain.Profile{
		ID: 1, Name: "Ann", Age: 28, Location: "NYC", Bio: "hi",
		Interests: []string{"art"}, Images: []string{}, Distance: 5,
	}
	require.NoError(t, c.Set(ctx, profile))
	assert.True(t, mr.Exists("profile:1"))
	assert.Equal(t, time.Minute, mr.TTL("profile:1"))

	got, err = c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, profile.Name, got.Name)
	assert.Equal(t, profile.Interests, got.Interests)

	require.NoError(t, c.Invalidate(ctx, 1))
	assert.False(t, mr.Exists("profile:1"))
}

func TestProfileCache_CorruptEntry(t *testing.T) {
	c, mr := newTestCache(t)
	require.NoError(t, mr.Set("profile:3", "not json"))

	_, err := c.Get(context.Background(), 3)
	assert.Error(t, err)
}

func TestProfileCache_NilClientIsNoop(t *testing.T) {
	c := NewProfileCache(nil, time.Minute)
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, &domain.Profile{ID: 1}))
	got, err := c.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Invalidate(ctx, 1))
}

func TestProfileKey(t *testing.T) {
	assert.Equal(t, "profile:42", ProfileKey(42))
}
