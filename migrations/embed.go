// Package migrations 内嵌的 PostgreSQL 建表脚本
package migrations

import "embed"

// FS 按文件名顺序执行
//
//go:embed *.sql
var FS embed.FS
