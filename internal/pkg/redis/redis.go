package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"monster-arena/internal/pkg/config"
	"monster-arena/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

// Client Redis 客户端封装, 每个操作都会上报指标
type Client struct {
	*redis.Client
	service string
}

// NewClient 创建 Redis 客户端并检查连通性
func NewClient(ctx context.Context, cfg config.RedisConfig, service string) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	if service == "" {
		service = metrics.GetServiceName()
	}
	return &Client{Client: rdb, service: service}, nil
}

// IsNil 判断是否为 key 不存在
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}

// SetWithTTL 设置键值对，带过期时间
func (c *Client) SetWithTTL(ctx context.Context, key string, value any, ttl time.Duration) error {
	start := time.Now()
	err := c.Set(ctx, key, value, ttl).Err()
	metrics.DefaultResourceMetrics.RecordRedisOperation("SET", err == nil, time.Since(start), c.service)
	return err
}

// GetBytes 获取值, key 不存在时返回 redis.Nil
func (c *Client) GetBytes(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	result, err := c.Get(ctx, key).Bytes()
	metrics.DefaultResourceMetrics.RecordRedisOperation("GET", err == nil || IsNil(err), time.Since(start), c.service)
	return result, err
}

// SetIfAbsent 仅在 key 不存在时写入 (SET NX), 返回是否写入成功
func (c *Client) SetIfAbsent(ctx context.Context, key string, value any, ttl time.Duration) (bool, error) {
	start := time.Now()
	ok, err := c.SetNX(ctx, key, value, ttl).Result()
	metrics.DefaultResourceMetrics.RecordRedisOperation("SETNX", err == nil, time.Since(start), c.service)
	return ok, err
}
