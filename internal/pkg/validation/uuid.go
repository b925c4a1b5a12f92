// Package validation 提供通用的验证工具和中间件
package validation

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"monster-arena/internal/pkg/response"
	"monster-arena/internal/pkg/xerrors"
)

// NormalizeUUID 解析 UUID 并返回小写的标准格式
//
// uuid.Parse 还接受大写、{...}、无连字符和 urn:uuid: 前缀等写法,
// 存储、缓存键和响应只使用标准格式。
func NormalizeUUID(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// NotFoundFunc 根据非法 ID 构造 404 错误
type NotFoundFunc func(id string) *xerrors.AppError

// UUIDParamMiddleware 校验并规范化路径参数 :id, 格式非法时按资源不存在处理
func UUIDParamMiddleware(respWriter response.Writer, notFound NotFoundFunc) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			names := c.ParamNames()
			values := append([]string(nil), c.ParamValues()...)
			for i, name := range names {
				if name != "id" || i >= len(values) {
					continue
				}
				id, ok := NormalizeUUID(values[i])
				if !ok {
					return response.EchoError(c, respWriter, notFound(values[i]))
				}
				values[i] = id
			}
			c.SetParamValues(values...)
			return next(c)
		}
	}
}
