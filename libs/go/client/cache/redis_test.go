package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/client/cache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := cache.NewRedisClient(context.Background(), "http://not-redis")
	assert.ErrorContains(t, err, "invalid redis url")
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	_, err := cache.NewRedisClient(ctx, "redis://127.0.0.1:1/0")
	assert.ErrorContains(t, err, "failed to ping redis")
}

// REDIS_TEST_URL points at a disposable Redis, e.g. redis://localhost:6379/15.
func newTestRedis(t *testing.T) *cache.RedisClient {
	t.Helper()
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	client, err := cache.NewRedisClient(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisClient_GetSet(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()
	key := "test:cache:" + uuid.NewString()

	_, found, err := client.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, client.Set(ctx, key, []byte(`{"ids":[]}`), time.Minute))
	val, found, err := client.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"ids":[]}`, string(val))
}

func TestRedisClient_TryLock(t *testing.T) {
	client := newTestRedis(t)
	ctx := context.Background()
	key := "test:lock:" + uuid.NewString()

	release, acquired, err := client.TryLock(ctx, key, time.Minute)
	require.NoError(t, err)
	require.True(t, acquired)

	_, acquired, err = client.TryLock(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.False(t, acquired, "second holder must not acquire a held lock")

	release()
	release2, acquired, err := client.TryLock(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
	release2()
}
