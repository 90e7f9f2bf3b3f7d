//go:build e2e

package idempotent

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisIdempotencyService(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
	})
	t.Cleanup(func() {
		client.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skip("Redis 不可用，跳过")
		return
	}

	svc := NewRedisIdempotencyService(client, "test:activation", time.Minute)
	key := "dist-" + time.Now().Format("20060102150405.000")

	first, err := svc.MarkExecuted(ctx, key)
	require.NoError(t, err)
	assert.True(t, first)

	// 同一个key的第二次标记不再是首次
	second, err := svc.MarkExecuted(ctx, key)
	require.NoError(t, err)
	assert.False(t, second)

	results, err := svc.MarkExecutedBatch(ctx, key, key+"-other")
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true}, results)

	_, err = svc.MarkExecutedBatch(ctx)
	assert.Error(t, err)
}
