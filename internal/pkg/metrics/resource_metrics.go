// File: internal/pkg/metrics/resource_metrics.go
package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ResourceMetrics 外部资源监控指标
type ResourceMetrics struct {
	DBConnections    *prometheus.GaugeVec // 按 open/in_use/idle 分组
	DBMaxConnections *prometheus.GaugeVec
	DBWaitCount      *prometheus.GaugeVec // sql.DBStats 中的累计值
	DBWaitDuration   *prometheus.GaugeVec

	RedisOperations        *prometheus.CounterVec
	RedisOperationDuration *prometheus.HistogramVec

	// NATS 连接状态, 1 为已连接
	NatsConnected *prometheus.GaugeVec
}

// DefaultResourceMetrics 默认的资源指标实例
var DefaultResourceMetrics = NewResourceMetricsWithRegistry(Namespace, GetRegisterer())

// RedisOperationBuckets Redis 操作延迟 buckets, 单位秒
var RedisOperationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

// NewResourceMetricsWithRegistry 创建资源指标收集器
func NewResourceMetricsWithRegistry(namespace string, registerer prometheus.Registerer) *ResourceMetrics {
	factory := promauto.With(registerer)

	return &ResourceMetrics{
		DBConnections: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "connections",
				Help:      "Current number of database connections by state",
			},
			[]string{"service", "database", "state"},
		),
		DBMaxConnections: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "max_connections",
				Help:      "Maximum number of open database connections",
			},
			[]string{"service", "database"},
		),
		DBWaitCount: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "wait_count",
				Help:      "Total number of connections waited for since start",
			},
			[]string{"service", "database"},
		),
		DBWaitDuration: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "db",
				Name:      "wait_duration_seconds",
				Help:      "Total time blocked waiting for a new connection since start",
			},
			[]string{"service", "database"},
		),
		RedisOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "redis",
				Name:      "operations_total",
				Help:      "Total number of Redis operations by operation and result",
			},
			[]string{"operation", "result", "service"},
		),
		RedisOperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "redis",
				Name:      "operation_duration_seconds",
				Help:      "Redis operation latency by operation",
				Buckets:   RedisOperationBuckets,
			},
			[]string{"operation", "service"},
		),
		NatsConnected: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "nats",
				Name:      "connected",
				Help:      "Whether the NATS connection is up (1) or down (0)",
			},
			[]string{"service"},
		),
	}
}

// RecordDBPoolStats 记录数据库连接池统计信息
func (m *ResourceMetrics) RecordDBPoolStats(service, database string, stats sql.DBStats) {
	service = normalizeServiceName(service)
	m.DBConnections.WithLabelValues(service, database, "open").Set(float64(stats.OpenConnections))
	m.DBConnections.WithLabelValues(service, database, "in_use").Set(float64(stats.InUse))
	m.DBConnections.WithLabelValues(service, database, "idle").Set(float64(stats.Idle))
	m.DBMaxConnections.WithLabelValues(service, database).Set(float64(stats.MaxOpenConnections))
	m.DBWaitCount.WithLabelValues(service, database).Set(float64(stats.WaitCount))
	m.DBWaitDuration.WithLabelValues(service, database).Set(stats.WaitDuration.Seconds())
}

// RecordRedisOperation 记录 Redis 操作指标
func (m *ResourceMetrics) RecordRedisOperation(operation string, success bool, duration time.Duration, service string) {
	service = normalizeServiceName(service)
	result := "success"
	if !success {
		result = "error"
	}
	m.RedisOperations.WithLabelValues(operation, result, service).Inc()
	m.RedisOperationDuration.WithLabelValues(operation, service).Observe(duration.Seconds())
}

// RecordNatsStatus 记录 NATS 连接状态
func (m *ResourceMetrics) RecordNatsStatus(connected bool, service string) {
	service = normalizeServiceName(service)
	v := 0.0
	if connected {
		v = 1
	}
	m.NatsConnected.WithLabelValues(service).Set(v)
}
