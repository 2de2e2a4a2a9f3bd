package redis

import (
	"context"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultPoolSize = 10
)

type Config struct {
	Addr     string `mapstructure:"addr"` // Empty address disables redis.
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"` // Default is 10
}

// Enabled reports whether a redis server is configured.
func (conf Config) Enabled() bool {
	return conf.Addr != ""
}

// NewClient creates a redis client and checks the connection.
func NewClient(ctx context.Context, conf Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
		PoolSize: utils.Default(conf.PoolSize, DefaultPoolSize),
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "can't connect to redis %q", conf.Addr)
	}
	return client, nil
}
