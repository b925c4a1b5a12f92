// File: internal/pkg/response/echo.go
package response

import (
	"net/http"

	"monster-arena/internal/pkg/xerrors"

	"github.com/labstack/echo/v4"
)

// Echo 框架适配器, 写入 c.Response() 以便中间件拿到真实状态码

// EchoOK 200 成功响应
func EchoOK[T any](c echo.Context, h Writer, data T) error {
	return h.WriteSuccess(c.Request().Context(), c.Response(), data)
}

// EchoCreated 201 创建成功响应
func EchoCreated[T any](c echo.Context, h Writer, data T) error {
	return h.WriteCreated(c.Request().Context(), c.Response(), data)
}

// EchoNoContent 204 响应
func EchoNoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// EchoError 错误响应
func EchoError(c echo.Context, h Writer, err error) error {
	return h.WriteError(c.Request().Context(), c.Response(), err)
}

// EchoBadRequest 400 错误响应
func EchoBadRequest(c echo.Context, h Writer, message string) error {
	err := xerrors.NewValidationError("request", message)
	err.Message = message
	return h.WriteError(c.Request().Context(), c.Response(), err)
}

// EchoJSON 直接返回 JSON, 不使用统一响应包装
func EchoJSON(c echo.Context, h Writer, data any, statusCode int) error {
	return h.WriteJSON(c.Request().Context(), c.Response(), data, statusCode)
}
