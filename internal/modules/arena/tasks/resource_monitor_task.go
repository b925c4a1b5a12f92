package tasks

import (
	"database/sql"
	"fmt"

	"github.com/robfig/cron/v3"

	"monster-arena/internal/pkg/log"
	"monster-arena/internal/pkg/metrics"
	natshealth "monster-arena/internal/pkg/nats"
)

// DefaultMonitorSpec 每 30 秒采集一次
// Cron 表达式: 秒 分 时 日 月 周
const DefaultMonitorSpec = "*/30 * * * * *"

// ResourceMonitorTask 定时采集数据库连接池和 NATS 连接状态到 Prometheus
type ResourceMonitorTask struct {
	db     *sql.DB
	nats   *natshealth.HealthChecker
	spec   string
	logger log.Logger
	cron   *cron.Cron
}

// NewResourceMonitorTask 创建资源监控任务, db 或 checker 为 nil 时跳过对应采集
func NewResourceMonitorTask(db *sql.DB, checker *natshealth.HealthChecker, spec string, logger log.Logger) *ResourceMonitorTask {
	if spec == "" {
		spec = DefaultMonitorSpec
	}
	return &ResourceMonitorTask{
		db:     db,
		nats:   checker,
		spec:   spec,
		logger: logger,
	}
}

// Start 启动定时任务
func (t *ResourceMonitorTask) Start() error {
	t.cron = cron.New(cron.WithSeconds())

	if _, err := t.cron.AddFunc(t.spec, t.Collect); err != nil {
		t.cron = nil
		return fmt.Errorf("添加资源监控任务失败 %q: %w", t.spec, err)
	}

	t.cron.Start()
	t.logger.Info("【定时任务】资源监控已启动", "spec", t.spec)
	return nil
}

// Collect 采集一次
func (t *ResourceMonitorTask) Collect() {
	service := metrics.GetServiceName()

	if t.db != nil {
		metrics.DefaultResourceMetrics.RecordDBPoolStats(service, "postgres", t.db.Stats())
	}
	if t.nats != nil {
		wasHealthy := t.nats.IsHealthy()
		switch healthy := t.nats.Check(); {
		case !healthy:
			t.logger.Warn("【定时任务】NATS 连接不可用")
		case !wasHealthy:
			t.logger.Info("【定时任务】NATS 连接可用")
		}
	}
}

// Stop 停止定时任务, 等待正在执行的采集结束
func (t *ResourceMonitorTask) Stop() {
	if t.cron == nil {
		return
	}
	ctx := t.cron.Stop()
	<-ctx.Done()
	t.logger.Info("【定时任务】资源监控已停止")
}
