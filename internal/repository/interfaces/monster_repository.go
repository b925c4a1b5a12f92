package interfaces

import (
	"context"

	"monster-arena/internal/entity/arena"
	"monster-arena/internal/repository/query"
)

// MonsterQueryParams 怪物查询参数
type MonsterQueryParams struct {
	query.Pagination
	OrderDesc bool // 按创建时间降序
}

// MonsterRepository 怪物仓储接口
type MonsterRepository interface {
	// GetByID 根据ID获取怪物, 不存在时返回 ErrMonsterNotFound
	GetByID(ctx context.Context, monsterID string) (*arena.Monster, error)

	// List 获取怪物列表
	List(ctx context.Context, params MonsterQueryParams) ([]*arena.Monster, int64, error)

	// Create 创建怪物, ID 为空时自动生成
	Create(ctx context.Context, monster *arena.Monster) error

	// Update 更新怪物
	Update(ctx context.Context, monster *arena.Monster) error

	// Delete 删除怪物
	Delete(ctx context.Context, monsterID string) error
}
