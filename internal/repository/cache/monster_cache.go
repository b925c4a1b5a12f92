package cache

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"monster-arena/internal/entity/arena"
	"monster-arena/internal/pkg/log"
	"monster-arena/internal/pkg/metrics"
	"monster-arena/internal/pkg/redis"
	"monster-arena/internal/repository/interfaces"
)

const (
	keyPrefix  = "arena:monster:"
	defaultTTL = 5 * time.Minute
)

// tombstone 更新或删除后写入的占位值, 存在期间读取直接回源且不回填
var tombstone = []byte("-")

// Store 缓存后端需要提供的最小操作集, *redis.Client 满足该接口
type Store interface {
	GetBytes(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value any, ttl time.Duration) error
	SetIfAbsent(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
}

// MonsterRepository 在怪物仓储外包一层读穿透缓存
//
// 只缓存按ID读取的快照。回填使用 SET NX, 更新和删除成功后用占位值覆盖,
// 因此回源期间发生的修改不会被旧数据覆盖。
// 缓存读写失败不会影响主流程, 只记录日志后回源。
type MonsterRepository struct {
	interfaces.MonsterRepository
	store   Store
	ttl     time.Duration
	service string
	logger  log.Logger
}

// NewMonsterRepository store 为 nil 时直接返回原仓储
func NewMonsterRepository(next interfaces.MonsterRepository, store Store, ttl time.Duration, logger log.Logger) interfaces.MonsterRepository {
	if store == nil {
		return next
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if logger == nil {
		logger = log.GetLogger()
	}
	return &MonsterRepository{
		MonsterRepository: next,
		store:             store,
		ttl:               ttl,
		service:           metrics.GetServiceName(),
		logger:            logger.With("component", "monster_cache"),
	}
}

// Key 返回怪物缓存键, monsterID 应为标准格式的 UUID
func Key(monsterID string) string {
	return keyPrefix + monsterID
}

// GetByID 先查缓存, 未命中时回源并回填
func (c *MonsterRepository) GetByID(ctx context.Context, monsterID string) (*arena.Monster, error) {
	key := Key(monsterID)

	data, err := c.store.GetBytes(ctx, key)
	switch {
	case err == nil && bytes.Equal(data, tombstone):
		metrics.DefaultBusinessMetrics.RecordCacheLookup(false, c.service)
		return c.MonsterRepository.GetByID(ctx, monsterID)
	case err == nil:
		var monster arena.Monster
		if jsonErr := json.Unmarshal(data, &monster); jsonErr == nil {
			metrics.DefaultBusinessMetrics.RecordCacheLookup(true, c.service)
			return &monster, nil
		}
		c.logger.WarnContext(ctx, "monster cache entry corrupted", log.String("key", key))
	case !redis.IsNil(err):
		c.logger.WarnContext(ctx, "monster cache read failed", log.String("key", key), log.String("error", err.Error()))
	}
	metrics.DefaultBusinessMetrics.RecordCacheLookup(false, c.service)

	monster, err := c.MonsterRepository.GetByID(ctx, monsterID)
	if err != nil {
		return nil, err
	}

	c.fill(ctx, monster)
	return monster, nil
}

// Update 成功后写入占位值
func (c *MonsterRepository) Update(ctx context.Context, monster *arena.Monster) error {
	if err := c.MonsterRepository.Update(ctx, monster); err != nil {
		return err
	}
	c.retire(ctx, monster.ID)
	return nil
}

// Delete 成功后写入占位值
func (c *MonsterRepository) Delete(ctx context.Context, monsterID string) error {
	if err := c.MonsterRepository.Delete(ctx, monsterID); err != nil {
		return err
	}
	c.retire(ctx, monsterID)
	return nil
}

// fill key 已存在(包括占位值)时放弃写入
func (c *MonsterRepository) fill(ctx context.Context, monster *arena.Monster) {
	data, err := json.Marshal(monster)
	if err != nil {
		return
	}
	if _, err := c.store.SetIfAbsent(ctx, Key(monster.ID), data, c.ttl); err != nil {
		c.logger.WarnContext(ctx, "monster cache write failed", log.String("monster_id", monster.ID), log.String("error", err.Error()))
	}
}

func (c *MonsterRepository) retire(ctx context.Context, monsterID string) {
	if err := c.store.SetWithTTL(ctx, Key(monsterID), tombstone, c.ttl); err != nil {
		c.logger.WarnContext(ctx, "monster cache invalidation failed", log.String("monster_id", monsterID), log.String("error", err.Error()))
	}
}
