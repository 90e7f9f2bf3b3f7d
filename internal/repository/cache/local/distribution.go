package local

import (
	"fmt"
	"time"

	"gitee.com/flycash/survey-platform/internal/domain"

	ca "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
)

var ErrKeyNotFound = errors.New("key not found")

const defaultExpiration = time.Minute

// Cache 投放概要的本地缓存
// 报表侧高频读投放概要，写路径负责失效
type Cache struct {
	c *ca.Cache
}

func NewCache(c *ca.Cache) *Cache {
	return &Cache{
		c: c,
	}
}

func (l *Cache) Get(id uint64) (domain.Distribution, error) {
	v, ok := l.c.Get(distributionKey(id))
	if !ok {
		return domain.Distribution{}, ErrKeyNotFound
	}
	return v.(domain.Distribution), nil
}

func (l *Cache) Set(d domain.Distribution) {
	l.c.Set(distributionKey(d.ID), d, defaultExpiration)
}

func (l *Cache) Del(id uint64) {
	l.c.Delete(distributionKey(id))
}

func distributionKey(id uint64) string {
	return fmt.Sprintf("distribution:%d", id)
}
