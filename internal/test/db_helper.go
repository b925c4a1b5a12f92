// Package test 测试辅助: 真实数据库连接与内存仓储
package test

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/lib/pq"
)

// SetupTestDB 连接 TEST_DATABASE_URL 指定的数据库, 未配置或无法连接时跳过测试
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("未设置 TEST_DATABASE_URL, 跳过数据库集成测试")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Skipf("无法连接测试数据库: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("无法ping测试数据库: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// TruncateTables 清空表数据
func TruncateTables(t *testing.T, db *sql.DB, tables ...string) {
	t.Helper()

	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %q CASCADE", table)); err != nil {
			t.Fatalf("清空表失败 %s: %v", table, err)
		}
	}
}
