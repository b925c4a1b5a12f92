package middleware

import (
	"fmt"

	"monster-arena/internal/pkg/log"
	"monster-arena/internal/pkg/response"
	"monster-arena/internal/pkg/xerrors"

	"github.com/labstack/echo/v4"
)

// RecoveryMiddleware 恢复中间件
func RecoveryMiddleware(respWriter response.Writer, logger log.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				ctx := c.Request().Context()

				logger.ErrorContext(ctx, "应用程序 panic",
					log.Any("panic_value", r),
					log.String("path", c.Request().URL.Path),
					log.String("method", c.Request().Method),
				)

				appErr := xerrors.FromCode(xerrors.CodeInternalError).
					WithService("echo-middleware", "recovery").
					WithMetadata("panic_value", fmt.Sprintf("%v", r))

				if c.Response().Committed {
					err = appErr
					return
				}
				err = response.EchoError(c, respWriter, appErr)
			}()

			return next(c)
		}
	}
}
