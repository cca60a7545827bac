package redis

import (
	"context"
	"fmt"
	"time"

	"splash-go/internal/config"
	"splash-go/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var client *redis.Client

// Init 连接 Redis 并返回客户端，登录态存储使用
func Init(cfg *config.RedisConfig) (*redis.Client, error) {
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr(), err)
	}

	client = c
	logger.Info("Redis connected", zap.String("addr", cfg.Addr()), zap.Int("db", cfg.DB))
	return c, nil
}

// Ping 健康检查；未启用 Redis 时返回 nil
func Ping(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Ping(ctx).Err()
}

func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	logger.Info("Redis connection closed")
	return err
}
