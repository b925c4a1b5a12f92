// File: internal/pkg/metrics/middleware.go
package metrics

import (
	"errors"
	"net/http"
	"time"

	"monster-arena/internal/pkg/ctxkey"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HeaderRoutePattern 回写匹配到的路由模板, 便于排查指标标签
const HeaderRoutePattern = "X-Route-Pattern"

// Middleware 记录 HTTP 请求数, 延迟和进行中的请求
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route := NormalizeRoute(c.Path())

			ctx := ctxkey.WithValue(req.Context(), ctxkey.HTTPMethod, req.Method)
			ctx = ctxkey.WithValue(ctx, ctxkey.RoutePattern, route)
			c.SetRequest(req.WithContext(ctx))

			if IsHealthCheckEndpoint(route) {
				return next(c)
			}

			m := DefaultHTTPMetrics
			service := GetServiceName()
			m.RequestsInProgress.WithLabelValues(service).Inc()
			defer m.RequestsInProgress.WithLabelValues(service).Dec()

			c.Response().Header().Set(HeaderRoutePattern, route)
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}
			m.RecordRequest(service, route, req.Method, status, time.Since(start))
			return err
		}
	}
}

// EchoHandler 暴露 /metrics 端点
func EchoHandler() echo.HandlerFunc {
	var h http.Handler
	if g, ok := GetRegisterer().(prometheus.Gatherer); ok {
		h = promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	} else {
		h = promhttp.Handler()
	}
	return echo.WrapHandler(h)
}
