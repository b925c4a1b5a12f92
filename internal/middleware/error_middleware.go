package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"monster-arena/internal/pkg/log"
	"monster-arena/internal/pkg/response"
	"monster-arena/internal/pkg/xerrors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware 统一错误处理中间件, 未写出响应的错误都在这里渲染为统一结构
func ErrorMiddleware(respWriter response.Writer, logger log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			ctx := c.Request().Context()
			if c.Response().Committed {
				logger.WarnContext(ctx, "响应已写出, 忽略后续错误", log.Any("error", err))
				return nil
			}

			var appErr *xerrors.AppError
			var httpErr *echo.HTTPError
			switch {
			case errors.As(err, &appErr):
				return response.EchoError(c, respWriter, appErr)

			case errors.As(err, &httpErr):
				return response.EchoError(c, respWriter, convertEchoError(httpErr))

			default:
				logger.ErrorContext(ctx, "未处理的错误",
					log.Any("original_error", err),
					log.String("error_type", fmt.Sprintf("%T", err)),
				)
				wrapped := xerrors.NewWithError(xerrors.CodeInternalError, "系统内部错误", err).
					WithService("echo-middleware", "error_handler")
				return response.EchoError(c, respWriter, wrapped)
			}
		}
	}
}

// convertEchoError 将 Echo 错误转换为业务错误; 未匹配的路由和方法都按资源不存在处理
func convertEchoError(echoErr *echo.HTTPError) *xerrors.AppError {
	var code xerrors.ErrorCode
	switch echoErr.Code {
	case http.StatusBadRequest:
		code = xerrors.CodeInvalidParams
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		code = xerrors.CodeResourceNotFound
	case http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		code = xerrors.CodeInvalidRequest
	default:
		return xerrors.FromCode(xerrors.CodeInternalError).
			WithMetadata("echo_code", echoErr.Code).
			WithMetadata("echo_message", fmt.Sprintf("%v", echoErr.Message))
	}
	return xerrors.FromCode(code).
		WithMetadata("echo_message", fmt.Sprintf("%v", echoErr.Message))
}
