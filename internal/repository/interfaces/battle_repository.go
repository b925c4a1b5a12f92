package interfaces

import (
	"context"

	"monster-arena/internal/entity/arena"
	"monster-arena/internal/repository/query"
)

// BattleQueryParams 对战记录查询参数
type BattleQueryParams struct {
	query.Pagination
	MonsterID string // 只看某只怪物参与的对战
}

// BattleRepository 对战记录仓储接口
//
// 对战记录只创建和删除, 不提供更新。
type BattleRepository interface {
	GetByID(ctx context.Context, battleID string) (*arena.Battle, error)
	List(ctx context.Context, params BattleQueryParams) ([]*arena.Battle, int64, error)
	Create(ctx context.Context, battle *arena.Battle) error
	Delete(ctx context.Context, battleID string) error
}
