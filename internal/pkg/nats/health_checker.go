package nats

import (
	"sync"

	"monster-arena/internal/pkg/metrics"

	"github.com/nats-io/nats.go"
)

// HealthChecker NATS 连接健康检查器, 由定时任务驱动
type HealthChecker struct {
	conn    *nats.Conn
	service string

	mu        sync.RWMutex
	isHealthy bool
}

// NewHealthChecker 创建健康检查器, conn 为 nil 时始终不健康
func NewHealthChecker(conn *nats.Conn, service string) *HealthChecker {
	return &HealthChecker{conn: conn, service: service}
}

// Check 检查一次连接状态并上报指标
func (hc *HealthChecker) Check() bool {
	healthy := hc.conn != nil && hc.conn.IsConnected() && !hc.conn.IsClosed()

	hc.mu.Lock()
	hc.isHealthy = healthy
	hc.mu.Unlock()

	metrics.DefaultResourceMetrics.RecordNatsStatus(healthy, hc.service)
	return healthy
}

// IsHealthy 最近一次检查的结果
func (hc *HealthChecker) IsHealthy() bool {
	hc.mu.RLock()
	defer hc.mu.RUnlock()
	return hc.isHealthy
}
