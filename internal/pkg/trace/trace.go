// File: internal/pkg/trace/trace.go
package trace

import (
	"context"
	"net/http"
	"strings"

	"monster-arena/internal/pkg/ctxkey"

	"github.com/google/uuid"
)

// HeaderTraceID 响应中回写的追踪头
const HeaderTraceID = "X-Trace-Id"

// WithTraceID 在 context 中设置 trace ID
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return ctxkey.WithValue(ctx, ctxkey.TraceID, traceID)
}

// GetTraceID 从 context 中获取 trace ID
func GetTraceID(ctx context.Context) string {
	return ctxkey.GetString(ctx, ctxkey.TraceID)
}

// GenerateTraceID 生成 32 位十六进制 trace ID
func GenerateTraceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// ExtractFromHeader 按 X-Trace-Id, X-Request-Id, traceparent 的顺序提取 trace ID,
// 都没有时生成新的
func ExtractFromHeader(h http.Header) string {
	if v := h.Get(HeaderTraceID); v != "" {
		return v
	}
	if v := h.Get("X-Request-Id"); v != "" {
		return v
	}
	if v := parseTraceparent(h.Get("Traceparent")); v != "" {
		return v
	}
	return GenerateTraceID()
}

// parseTraceparent 解析 W3C traceparent: "00-<trace-id>-<parent-id>-<flags>"
func parseTraceparent(v string) string {
	parts := strings.Split(v, "-")
	if len(parts) != 4 || len(parts[1]) != 32 {
		return ""
	}
	return parts[1]
}
