package ioc

import (
	redismetrics "gitee.com/flycash/survey-platform/internal/pkg/redis/metrics"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

func InitRedisClient() *redis.Client {
	type Config struct {
		Addr string
	}
	var cfg Config
	err := econf.UnmarshalKey("redis", &cfg)
	if err != nil {
		panic(err)
	}
	cmd := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
	})
	cmd = redismetrics.WithMetrics(cmd)
	return cmd
}
