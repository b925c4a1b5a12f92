package redis

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"monster-arena/internal/pkg/config"
)

func TestIsNil(t *testing.T) {
	assert.True(t, IsNil(redis.Nil))
	assert.True(t, IsNil(fmt.Errorf("get monster: %w", redis.Nil)))
	assert.False(t, IsNil(errors.New("connection refused")))
	assert.False(t, IsNil(nil))
}

func TestNewClient_Unreachable(t *testing.T) {
	client, err := NewClient(context.Background(), config.RedisConfig{Host: "127.0.0.1", Port: 1}, "arena-test")
	assert.Error(t, err)
	assert.Nil(t, client)
}
