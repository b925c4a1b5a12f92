package migrate

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monster-arena/migrations"
)

func TestExtractUp(t *testing.T) {
	t.Run("截取Up部分", func(t *testing.T) {
		got := ExtractUp("-- +migrate Up\nCREATE TABLE a ();\n-- +migrate Down\nDROP TABLE a;\n")
		assert.Equal(t, "\nCREATE TABLE a ();\n", got)
	})

	t.Run("没有标记时返回全文", func(t *testing.T) {
		assert.Equal(t, "SELECT 1;", ExtractUp("SELECT 1;"))
	})

	t.Run("内嵌脚本都带有Up部分", func(t *testing.T) {
		for _, name := range []string{"0001_create_monsters.sql", "0002_create_battles.sql"} {
			content, err := migrations.FS.ReadFile(name)
			require.NoError(t, err)
			assert.Contains(t, ExtractUp(string(content)), "CREATE TABLE", name)
			assert.NotContains(t, ExtractUp(string(content)), "DROP TABLE", name)
		}
	})
}

func TestApply(t *testing.T) {
	fsys := fstest.MapFS{
		"0001_a.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE a (id INT);\n-- +migrate Down\nDROP TABLE a;\n")},
		"0002_b.sql": {Data: []byte("CREATE TABLE b (id INT);")},
		"README.md":  {Data: []byte("ignored")},
	}

	t.Run("只执行未执行过的脚本", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))

		mock.ExpectQuery("SELECT EXISTS").WithArgs("0001_a.sql").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		mock.ExpectQuery("SELECT EXISTS").WithArgs("0002_b.sql").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE b").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO schema_migrations").WithArgs("0002_b.sql").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		applied, err := Apply(context.Background(), db, fsys)
		require.NoError(t, err)
		assert.Equal(t, []string{"0002_b.sql"}, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("脚本失败时回滚并停止", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").WithArgs("0001_a.sql").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE a").WillReturnError(errors.New("syntax error"))
		mock.ExpectRollback()

		applied, err := Apply(context.Background(), db, fsys)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "0001_a.sql")
		assert.Empty(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db为空", func(t *testing.T) {
		_, err := Apply(context.Background(), nil, fsys)
		assert.Error(t, err)
	})
}
