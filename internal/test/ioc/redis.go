package testioc

import (
	"sync"

	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

var (
	rdb       redis.Cmdable
	cache     ecache.Cache
	redisOnce sync.Once
)

func InitRedis() redis.Cmdable {
	redisOnce.Do(func() {
		LoadConfig()
		rdb = redis.NewClient(&redis.Options{
			Addr: econf.GetString("redis.addr"),
		})
		cache = &ecache.NamespaceCache{
			C:         eredis.NewCache(rdb),
			Namespace: "jobportal:",
		}
	})
	return rdb
}

func InitCache() ecache.Cache {
	InitRedis()
	return cache
}
