package cache

import (
	"context"
	"time"

	"buyback/conf"
	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// InitRedis 初始化redisClient
func InitRedis(redisCfg conf.RedisConfig) {
	redisClient = redis.NewClient(&redis.Options{
		DB:              redisCfg.Db,
		Addr:            redisCfg.Addr,
		Password:        redisCfg.Password,
		PoolSize:        redisCfg.PoolSize,
		MinIdleConns:    redisCfg.MinIdleConns,
		ConnMaxIdleTime: time.Duration(redisCfg.IdleTimeout) * time.Second,
	})
	_, err := redisClient.Ping(context.TODO()).Result()
	if err != nil {
		panic(err)
	}
}

// GetRedisClient 未初始化时返回nil，调用方自己降级
func GetRedisClient() *redis.Client {
	return redisClient
}

// 关闭redis client
func CloseRedis() {
	if nil != redisClient {
		_ = redisClient.Close()
	}
}
