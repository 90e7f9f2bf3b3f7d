package idempotent

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisIdempotencyService 基于 SETNX 的幂等标记
// 用来吸收 at-least-once 调度器的重复回调，只是快路径，
// 真正的兜底是状态机上的 CAS，redis 不可用时退化为直接走 CAS
type RedisIdempotencyService struct {
	client    redis.Cmdable
	keyPrefix string
	ttl       time.Duration
}

func NewRedisIdempotencyService(client redis.Cmdable, keyPrefix string, ttl time.Duration) *RedisIdempotencyService {
	return &RedisIdempotencyService{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (s *RedisIdempotencyService) MarkExecuted(ctx context.Context, key string) (bool, error) {
	return s.client.SetNX(ctx, s.keyPrefix+":"+key, 1, s.ttl).Result()
}

func (s *RedisIdempotencyService) MarkExecutedBatch(ctx context.Context, keys ...string) ([]bool, error) {
	if len(keys) == 0 {
		return nil, errors.New("empty keys")
	}
	res := make([]bool, 0, len(keys))
	for _, key := range keys {
		ok, err := s.MarkExecuted(ctx, key)
		if err != nil {
			return nil, err
		}
		res = append(res, ok)
	}
	return res, nil
}
