package redis

import (
	"context"

	"ClipFlow.com/config"
	goredis "github.com/redis/go-redis/v9"
	"github.com/pkg/errors"
)

var rdb *goredis.Client

func Init() error {
	rdb = goredis.NewClient(&goredis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       config.ConfigInfo.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return errors.WithMessage(err, "failed to connect redis")
	}
	return nil
}
