// File: internal/pkg/metrics/http_metrics.go
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace 所有指标的命名空间
const Namespace = "arena"

// HTTPMetrics HTTP 性能指标收集器
type HTTPMetrics struct {
	// 按路由模板、方法、状态码分组的请求总数
	RequestsTotal *prometheus.CounterVec
	// 按路由模板分组的请求延迟
	RequestDuration *prometheus.HistogramVec
	// 当前进行中的请求数
	RequestsInProgress *prometheus.GaugeVec
}

// DefaultHTTPMetrics 默认的 HTTP 指标实例
var DefaultHTTPMetrics = NewHTTPMetricsWithRegistry(Namespace, GetRegisterer())

// HTTPBuckets 针对 p95 < 200ms 的延迟 buckets, 单位秒
var HTTPBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.2, 0.5, 1, 2, 5}

// NewHTTPMetricsWithRegistry 创建 HTTP 指标收集器
func NewHTTPMetricsWithRegistry(namespace string, registerer prometheus.Registerer) *HTTPMetrics {
	factory := promauto.With(registerer)

	return &HTTPMetrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by service, route template, method, and status code",
			},
			[]string{"service", "route", "method", "status_code"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency histogram by service and route template",
				Buckets:   HTTPBuckets,
			},
			[]string{"service", "route"},
		),
		RequestsInProgress: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_progress",
				Help:      "Current number of HTTP requests being processed by service",
			},
			[]string{"service"},
		),
	}
}

// RecordRequest 记录 HTTP 请求指标, route 必须是路由模板(如 /api/monsters/:id)
func (m *HTTPMetrics) RecordRequest(service, route, method string, statusCode int, duration time.Duration) {
	service = normalizeServiceName(service)
	m.RequestsTotal.WithLabelValues(service, route, method, strconv.Itoa(statusCode)).Inc()
	m.RequestDuration.WithLabelValues(service, route).Observe(duration.Seconds())
}

// IsHealthCheckEndpoint 健康检查和指标端点不计入 HTTP 指标
func IsHealthCheckEndpoint(path string) bool {
	switch path {
	case "/metrics", "/health", "/healthz", "/readyz":
		return true
	default:
		return false
	}
}

// NormalizeRoute 未匹配路由统一记为 unknown, 防止标签基数爆炸
func NormalizeRoute(route string) string {
	if route == "" {
		return "unknown"
	}
	return route
}
