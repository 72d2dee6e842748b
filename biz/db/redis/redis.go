package redis

import (
	"context"
	"fmt"

	"bankdemo/biz/config"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

func Init() {
	conf := config.GetRedisConf()
	port := conf.Port
	if port == 0 {
		port = 6379
	}

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", conf.IP, port),
		Password: conf.Password,
		DB:       conf.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		panic(fmt.Errorf("redis ping: %w", err))
	}
}

func GetRedisClient() *redis.Client {
	return client
}
