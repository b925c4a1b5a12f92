package impl

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/google/uuid"

	"monster-arena/internal/entity/arena"
	"monster-arena/internal/repository/interfaces"
)

type battleRepositoryImpl struct {
	exec boil.ContextExecutor
}

// NewBattleRepository 创建对战记录仓储实例
func NewBattleRepository(db *sql.DB) interfaces.BattleRepository {
	return &battleRepositoryImpl{exec: db}
}

// GetByID 根据ID获取对战记录
func (r *battleRepositoryImpl) GetByID(ctx context.Context, battleID string) (*arena.Battle, error) {
	battle, err := arena.FindBattle(ctx, r.exec, battleID)
	if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrBattleNotFound, battleID)
	}
	if err != nil {
		return nil, fmt.Errorf("查询对战记录失败: %w", err)
	}

	return battle, nil
}

// List 获取对战记录列表, 最新的在前
func (r *battleRepositoryImpl) List(ctx context.Context, params interfaces.BattleQueryParams) ([]*arena.Battle, int64, error) {
	params.Normalize()

	var baseQueryMods []qm.QueryMod
	if params.MonsterID != "" {
		baseQueryMods = append(baseQueryMods, qm.Where("(monster_a = ? OR monster_b = ?)", params.MonsterID, params.MonsterID))
	}

	count, err := arena.Battles(baseQueryMods...).Count(ctx, r.exec)
	if err != nil {
		return nil, 0, fmt.Errorf("查询对战记录总数失败: %w", err)
	}

	mods := append(baseQueryMods,
		qm.OrderBy("\"battles\".\"created_at\" DESC, \"battles\".\"id\" ASC"),
		qm.Limit(params.Limit()),
	)
	if params.Offset > 0 {
		mods = append(mods, qm.Offset(params.Offset))
	}

	battles, err := arena.Battles(mods...).All(ctx, r.exec)
	if err != nil {
		return nil, 0, fmt.Errorf("查询对战记录列表失败: %w", err)
	}

	return battles, count, nil
}

// Create 保存对战结果, ID 总是由服务端生成
func (r *battleRepositoryImpl) Create(ctx context.Context, battle *arena.Battle) error {
	battle.ID = uuid.New().String()

	start := time.Now()
	err := battle.Insert(ctx, r.exec)
	logWrite(ctx, "insert", arena.TableNames.Battles, start, 1, err)
	if err != nil {
		return fmt.Errorf("创建对战记录失败: %w", err)
	}

	return nil
}

// Delete 删除对战记录
func (r *battleRepositoryImpl) Delete(ctx context.Context, battleID string) error {
	start := time.Now()
	rows, err := (&arena.Battle{ID: battleID}).Delete(ctx, r.exec)
	if isInvalidText(err) {
		return fmt.Errorf("%w: %s", interfaces.ErrBattleNotFound, battleID)
	}
	logWrite(ctx, "delete", arena.TableNames.Battles, start, rows, err)
	if err != nil {
		return fmt.Errorf("删除对战记录失败: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", interfaces.ErrBattleNotFound, battleID)
	}

	return nil
}
