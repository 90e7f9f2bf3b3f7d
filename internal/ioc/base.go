package ioc

import (
	"time"

	"github.com/meoying/dlock-go"
	dlockRedis "github.com/meoying/dlock-go/redis"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
	"github.com/sony/sonyflake"
)

const (
	defaultExpiration = time.Minute
	cleanupInterval   = time.Minute * 10
)

func InitDistributedLock(rdb *redis.Client) dlock.Client {
	return dlockRedis.NewClient(rdb)
}

func InitIDGenerator() *sonyflake.Sonyflake {
	generator := sonyflake.NewSonyflake(sonyflake.Settings{})
	if generator == nil {
		panic("初始化ID生成器失败")
	}
	return generator
}

func InitGoCache() *gocache.Cache {
	return gocache.New(defaultExpiration, cleanupInterval)
}
