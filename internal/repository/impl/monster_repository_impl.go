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

type monsterRepositoryImpl struct {
	exec boil.ContextExecutor
}

// NewMonsterRepository 创建怪物仓储实例
func NewMonsterRepository(db *sql.DB) interfaces.MonsterRepository {
	return &monsterRepositoryImpl{exec: db}
}

// GetByID 根据ID获取怪物
func (r *monsterRepositoryImpl) GetByID(ctx context.Context, monsterID string) (*arena.Monster, error) {
	monster, err := arena.FindMonster(ctx, r.exec, monsterID)
	if errors.Is(err, sql.ErrNoRows) || isInvalidText(err) {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrMonsterNotFound, monsterID)
	}
	if err != nil {
		return nil, fmt.Errorf("查询怪物失败: %w", err)
	}

	return monster, nil
}

// List 获取怪物列表
func (r *monsterRepositoryImpl) List(ctx context.Context, params interfaces.MonsterQueryParams) ([]*arena.Monster, int64, error) {
	params.Normalize()

	count, err := arena.Monsters().Count(ctx, r.exec)
	if err != nil {
		return nil, 0, fmt.Errorf("查询怪物总数失败: %w", err)
	}

	orderDir := "ASC"
	if params.OrderDesc {
		orderDir = "DESC"
	}
	mods := []qm.QueryMod{
		qm.OrderBy(fmt.Sprintf("\"monsters\".\"created_at\" %s, \"monsters\".\"id\" ASC", orderDir)),
		qm.Limit(params.Limit()),
	}
	if params.Offset > 0 {
		mods = append(mods, qm.Offset(params.Offset))
	}

	monsters, err := arena.Monsters(mods...).All(ctx, r.exec)
	if err != nil {
		return nil, 0, fmt.Errorf("查询怪物列表失败: %w", err)
	}

	return monsters, count, nil
}

// Create 创建怪物
func (r *monsterRepositoryImpl) Create(ctx context.Context, monster *arena.Monster) error {
	if monster.ID == "" {
		monster.ID = uuid.New().String()
	}

	start := time.Now()
	err := monster.Insert(ctx, r.exec)
	logWrite(ctx, "insert", arena.TableNames.Monsters, start, 1, err)
	if err != nil {
		return fmt.Errorf("创建怪物失败: %w", err)
	}

	return nil
}

// Update 更新怪物
func (r *monsterRepositoryImpl) Update(ctx context.Context, monster *arena.Monster) error {
	start := time.Now()
	rows, err := monster.Update(ctx, r.exec)
	logWrite(ctx, "update", arena.TableNames.Monsters, start, rows, err)
	if err != nil {
		return fmt.Errorf("更新怪物失败: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", interfaces.ErrMonsterNotFound, monster.ID)
	}

	return nil
}

// Delete 删除怪物, 不影响已有的对战记录
func (r *monsterRepositoryImpl) Delete(ctx context.Context, monsterID string) error {
	start := time.Now()
	rows, err := (&arena.Monster{ID: monsterID}).Delete(ctx, r.exec)
	if isInvalidText(err) {
		return fmt.Errorf("%w: %s", interfaces.ErrMonsterNotFound, monsterID)
	}
	logWrite(ctx, "delete", arena.TableNames.Monsters, start, rows, err)
	if err != nil {
		return fmt.Errorf("删除怪物失败: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", interfaces.ErrMonsterNotFound, monsterID)
	}

	return nil
}
