package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/campusperks/campusperks-api/libs/go/client/cache"
	"github.com/campusperks/campusperks-api/libs/go/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ interfaces.Cache  = cache.NoopCache{}
	_ interfaces.Locker = cache.NoopCache{}
	_ interfaces.Cache  = (*cache.RedisClient)(nil)
	_ interfaces.Locker = (*cache.RedisClient)(nil)
)

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NoopCache{}

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	val, found, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, val)

	release, acquired, err := c.TryLock(ctx, "lock", time.Minute)
	require.NoError(t, err)
	assert.True(t, acquired)
	release()
}
