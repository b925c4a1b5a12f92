package middleware

import (
	"strings"
	"time"

	"monster-arena/internal/pkg/ctxkey"
	"monster-arena/internal/pkg/i18n"
	"monster-arena/internal/pkg/log"

	"github.com/labstack/echo/v4"
)

// quietPaths 探活、指标抓取和文档请求不记录
var quietPaths = []string{"/health", "/metrics", "/swagger"}

// LoggingMiddleware 请求完成后记录一条访问日志
//
// 级别随状态码变化: 5xx 为 Error, 4xx 为 Warn, 其余为 Info。
func LoggingMiddleware(logger log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if isQuiet(req.URL.Path) {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			ctx := c.Request().Context()
			route := ctxkey.GetString(ctx, ctxkey.RoutePattern)
			if route == "" {
				route = req.URL.Path
			}
			status := c.Response().Status

			// trace_id 由日志 handler 从 context 注入
			fields := []any{
				log.String("method", req.Method),
				log.String("route", route),
				log.String("lang", i18n.GetLanguage(ctx).String()),
				log.Int("status_code", status),
				log.Duration("duration", time.Since(start).Milliseconds()),
			}

			switch {
			case err != nil:
				fields = append(fields, log.Any("error", err))
				logger.ErrorContext(ctx, "请求处理出错", fields...)
			case status >= 500:
				logger.ErrorContext(ctx, "请求完成", fields...)
			case status >= 400:
				logger.WarnContext(ctx, "请求完成", fields...)
			default:
				logger.InfoContext(ctx, "请求完成", fields...)
			}
			return err
		}
	}
}

func isQuiet(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
