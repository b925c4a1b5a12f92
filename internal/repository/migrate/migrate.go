// Package migrate 执行内嵌的 PostgreSQL 迁移脚本
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

const migrationTable = "schema_migrations"

const (
	markerUp   = "-- +migrate Up"
	markerDown = "-- +migrate Down"
)

// Apply 按文件名顺序执行尚未执行过的 .sql 文件, 每个文件一个事务, 返回本次执行的文件名
func Apply(ctx context.Context, db *sql.DB, migrationFS fs.FS) ([]string, error) {
	if db == nil {
		return nil, fmt.Errorf("sql db is required")
	}

	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return nil, fmt.Errorf("读取迁移目录失败: %w", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	createSQL := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    name TEXT PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`, migrationTable)
	if _, err := db.ExecContext(ctx, createSQL); err != nil {
		return nil, fmt.Errorf("创建迁移记录表失败: %w", err)
	}

	var applied []string
	for _, file := range files {
		done, err := isApplied(ctx, db, file)
		if err != nil {
			return applied, fmt.Errorf("检查迁移 %s 失败: %w", file, err)
		}
		if done {
			continue
		}

		content, err := fs.ReadFile(migrationFS, file)
		if err != nil {
			return applied, fmt.Errorf("读取迁移 %s 失败: %w", file, err)
		}
		if err := applyOne(ctx, db, file, ExtractUp(string(content))); err != nil {
			return applied, err
		}
		applied = append(applied, file)
	}
	return applied, nil
}

func applyOne(ctx context.Context, db *sql.DB, file, upSQL string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("开启迁移事务 %s 失败: %w", file, err)
	}

	if strings.TrimSpace(upSQL) != "" {
		if _, err := tx.ExecContext(ctx, upSQL); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("执行迁移 %s 失败: %w", file, err)
		}
	}

	insertSQL := fmt.Sprintf("INSERT INTO %s (name) VALUES ($1) ON CONFLICT (name) DO NOTHING", migrationTable)
	if _, err := tx.ExecContext(ctx, insertSQL, file); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("记录迁移 %s 失败: %w", file, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("提交迁移 %s 失败: %w", file, err)
	}
	return nil
}

func isApplied(ctx context.Context, db *sql.DB, file string) (bool, error) {
	var exists bool
	q := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE name = $1)", migrationTable)
	if err := db.QueryRowContext(ctx, q, file).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ExtractUp 返回 -- +migrate Up 与 -- +migrate Down 之间的 SQL, 没有标记时返回全文
func ExtractUp(content string) string {
	upIdx := strings.Index(content, markerUp)
	if upIdx == -1 {
		return content
	}
	rest := content[upIdx+len(markerUp):]
	if downIdx := strings.Index(rest, markerDown); downIdx != -1 {
		return rest[:downIdx]
	}
	return rest
}
