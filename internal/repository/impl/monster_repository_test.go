package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monster-arena/internal/entity/arena"
	"monster-arena/internal/repository/interfaces"
	"monster-arena/internal/repository/query"
)

var monsterRowColumns = []string{"id", "name", "image_url", "attack", "defense", "hp", "speed", "created_at", "updated_at"}

func TestMonsterRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMonsterRepository(db)
	ctx := context.Background()

	t.Run("成功创建怪物并生成ID", func(t *testing.T) {
		monster := &arena.Monster{
			Name:     "Dead Unicorn",
			ImageURL: "https://example.com/unicorn.png",
			Attack:   60,
			Defense:  40,
			HP:       100,
			Speed:    80,
		}

		mock.ExpectExec(`INSERT INTO "monsters"`).
			WithArgs(
				sqlmock.AnyArg(), // id
				monster.Name,
				monster.ImageURL,
				monster.Attack,
				monster.Defense,
				monster.HP,
				monster.Speed,
				sqlmock.AnyArg(), // created_at
				sqlmock.AnyArg(), // updated_at
			).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(ctx, monster)
		require.NoError(t, err)
		assert.NotEmpty(t, monster.ID)
		assert.True(t, monster.CreatedAt.Valid)
		assert.True(t, monster.UpdatedAt.Valid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("数据库错误", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO "monsters"`).
			WillReturnError(errors.New("connection refused"))

		err := repo.Create(ctx, &arena.Monster{Name: "x", ImageURL: "y"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "创建怪物失败")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMonsterRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMonsterRepository(db)
	ctx := context.Background()
	now := time.Now()
	id := "6c2ab1d4-3f0e-4a5b-9a43-2a1c1e9c0b11"

	t.Run("成功获取怪物", func(t *testing.T) {
		rows := sqlmock.NewRows(monsterRowColumns).
			AddRow(id, "Old Shark", "https://example.com/shark.png", 50, 20, 80, 90, now, now)

		mock.ExpectQuery(`SELECT (.+) FROM "monsters"`).
			WithArgs(id).
			WillReturnRows(rows)

		monster, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, monster.ID)
		assert.Equal(t, "Old Shark", monster.Name)
		assert.Equal(t, 50, monster.Attack)
		assert.Equal(t, 90, monster.Speed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("怪物不存在", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM "monsters"`).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(monsterRowColumns))

		monster, err := repo.GetByID(ctx, id)
		assert.Nil(t, monster)
		assert.ErrorIs(t, err, interfaces.ErrMonsterNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMonsterRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMonsterRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "monsters"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT (.+) FROM "monsters" ORDER BY (.+) LIMIT 20`).
		WillReturnRows(sqlmock.NewRows(monsterRowColumns).
			AddRow("id-1", "A", "a.png", 1, 2, 3, 4, now, now).
			AddRow("id-2", "B", "b.png", 5, 6, 7, 8, now, now))

	monsters, total, err := repo.List(context.Background(), interfaces.MonsterQueryParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, monsters, 2)
	assert.Equal(t, "B", monsters[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonsterRepository_ListPaged(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMonsterRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "monsters"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(30))
	mock.ExpectQuery(`LIMIT 10 OFFSET 20`).
		WillReturnRows(sqlmock.NewRows(monsterRowColumns))

	params := interfaces.MonsterQueryParams{Pagination: query.Pagination{Page: 3, PageSize: 10}}
	monsters, total, err := repo.List(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, int64(30), total)
	assert.Empty(t, monsters)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonsterRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMonsterRepository(db)
	ctx := context.Background()
	monster := &arena.Monster{ID: "id-1", Name: "Renamed", ImageURL: "r.png", Attack: 10, Defense: 10, HP: 10, Speed: 10}

	t.Run("成功更新", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "monsters" SET`).
			WithArgs(monster.Name, monster.ImageURL, 10, 10, 10, 10, sqlmock.AnyArg(), monster.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Update(ctx, monster))
		assert.True(t, monster.UpdatedAt.Valid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("没有匹配行时返回不存在", func(t *testing.T) {
		mock.ExpectExec(`UPDATE "monsters" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, monster)
		assert.ErrorIs(t, err, interfaces.ErrMonsterNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMonsterRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewMonsterRepository(db)
	ctx := context.Background()

	t.Run("成功删除", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM "monsters"`).
			WithArgs("id-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "id-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("怪物不存在", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM "monsters"`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, "missing")
		assert.ErrorIs(t, err, interfaces.ErrMonsterNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("数据库无法解析的ID视为不存在", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM "monsters"`).
			WithArgs("{bad}").
			WillReturnError(&pq.Error{Code: "22P02"})

		err := repo.Delete(ctx, "{bad}")
		assert.ErrorIs(t, err, interfaces.ErrMonsterNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("其他数据库错误", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM "monsters"`).
			WithArgs("id-2").
			WillReturnError(errors.New("connection reset"))

		err := repo.Delete(ctx, "id-2")
		assert.NotErrorIs(t, err, interfaces.ErrMonsterNotFound)
		assert.Contains(t, err.Error(), "删除怪物失败")
	})
}
