package impl

import (
	"context"
	"time"

	pkgerrors "github.com/friendsofgo/errors"
	"github.com/lib/pq"

	"monster-arena/internal/pkg/log"
)

// pgInvalidTextRepresentation 参数无法转换为列类型, 例如非法的 uuid
const pgInvalidTextRepresentation = "22P02"

// isInvalidText ID 写法 PostgreSQL 无法解析时按记录不存在处理
func isInvalidText(err error) bool {
	pqErr, ok := pkgerrors.Cause(err).(*pq.Error)
	return ok && pqErr.Code == pgInvalidTextRepresentation
}

func logWrite(ctx context.Context, operation, table string, start time.Time, rows int64, err error) {
	log.LogDatabaseOperation(ctx, operation, table, time.Since(start).Milliseconds(), rows, err)
}
