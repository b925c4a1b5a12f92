package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aarondl/null/v8"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monster-arena/internal/entity/arena"
	"monster-arena/internal/repository/interfaces"
)

var battleRowColumns = []string{"id", "monster_a", "monster_b", "winner", "created_at", "updated_at"}

func TestBattleRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBattleRepository(db)
	ctx := context.Background()

	t.Run("忽略客户端传入的ID", func(t *testing.T) {
		battle := &arena.Battle{
			ID:       "client-supplied",
			MonsterA: "monster-a",
			MonsterB: "monster-b",
			Winner:   null.StringFrom("monster-b"),
		}

		mock.ExpectExec(`INSERT INTO "battles"`).
			WithArgs(sqlmock.AnyArg(), "monster-a", "monster-b", "monster-b", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, repo.Create(ctx, battle))
		assert.NotEqual(t, "client-supplied", battle.ID)
		assert.Len(t, battle.ID, 36)
		assert.True(t, battle.CreatedAt.Valid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("其他数据库错误", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO "battles"`).
			WillReturnError(errors.New("disk full"))

		err := repo.Create(ctx, &arena.Battle{MonsterA: "a", MonsterB: "b"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "创建对战记录失败")
	})
}

func TestBattleRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBattleRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("成功获取", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM "battles"`).
			WithArgs("battle-1").
			WillReturnRows(sqlmock.NewRows(battleRowColumns).
				AddRow("battle-1", "a", "b", "a", now, now))

		battle, err := repo.GetByID(ctx, "battle-1")
		require.NoError(t, err)
		assert.Equal(t, "a", battle.Winner.String)
		assert.True(t, battle.Winner.Valid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("winner为空", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM "battles"`).
			WithArgs("battle-2").
			WillReturnRows(sqlmock.NewRows(battleRowColumns).
				AddRow("battle-2", "a", "b", nil, now, now))

		battle, err := repo.GetByID(ctx, "battle-2")
		require.NoError(t, err)
		assert.False(t, battle.Winner.Valid)
	})

	t.Run("记录不存在", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM "battles"`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(battleRowColumns))

		battle, err := repo.GetByID(ctx, "missing")
		assert.Nil(t, battle)
		assert.ErrorIs(t, err, interfaces.ErrBattleNotFound)
	})

	t.Run("数据库无法解析的ID视为不存在", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM "battles"`).
			WithArgs("urn:uuid:x").
			WillReturnError(&pq.Error{Code: "22P02", Message: "invalid input syntax for type uuid"})

		_, err := repo.GetByID(ctx, "urn:uuid:x")
		assert.ErrorIs(t, err, interfaces.ErrBattleNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestBattleRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBattleRepository(db)
	now := time.Now()

	t.Run("按怪物过滤", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "battles" WHERE`).
			WithArgs("m-1", "m-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery(`SELECT (.+) FROM "battles" WHERE (.+) ORDER BY`).
			WithArgs("m-1", "m-1").
			WillReturnRows(sqlmock.NewRows(battleRowColumns).AddRow("battle-1", "m-1", "m-2", "m-1", now, now))

		battles, total, err := repo.List(context.Background(), interfaces.BattleQueryParams{MonsterID: "m-1"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, battles, 1)
		assert.Equal(t, "m-2", battles[0].MonsterB)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("计数失败", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "battles"`).
			WillReturnError(errors.New("timeout"))

		_, _, err := repo.List(context.Background(), interfaces.BattleQueryParams{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "查询对战记录总数失败")
	})
}

func TestBattleRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewBattleRepository(db)
	ctx := context.Background()

	t.Run("成功删除", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM "battles"`).
			WithArgs("battle-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "battle-1"))
	})

	t.Run("记录不存在", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM "battles"`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "missing"), interfaces.ErrBattleNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
