// File: internal/pkg/metrics/business_metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics 竞技场业务指标收集器
type BusinessMetrics struct {
	// 对战次数, 按胜者是先手还是后手分组
	BattlesTotal *prometheus.CounterVec
	// 每场对战的攻击次数
	BattleAttacks *prometheus.HistogramVec
	// CSV 导入的怪物数, 按 created/failed 分组
	MonstersImportedTotal *prometheus.CounterVec
	// 怪物快照缓存命中情况, 按 hit/miss 分组
	MonsterCacheLookups *prometheus.CounterVec
}

// DefaultBusinessMetrics 默认的业务指标实例
var DefaultBusinessMetrics = NewBusinessMetricsWithRegistry(Namespace, GetRegisterer())

// AttackBuckets 单场对战攻击次数的 buckets
var AttackBuckets = []float64{1, 2, 4, 8, 16, 32, 64, 128, 256, 1024}

// NewBusinessMetricsWithRegistry 创建业务指标收集器
func NewBusinessMetricsWithRegistry(namespace string, registerer prometheus.Registerer) *BusinessMetrics {
	factory := promauto.With(registerer)

	return &BusinessMetrics{
		BattlesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "battle",
				Name:      "resolved_total",
				Help:      "Total number of resolved battles by winning side (first/second actor)",
			},
			[]string{"winner_side", "service"},
		),
		BattleAttacks: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "battle",
				Name:      "attacks",
				Help:      "Number of attacks exchanged per battle",
				Buckets:   AttackBuckets,
			},
			[]string{"service"},
		),
		MonstersImportedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "monster",
				Name:      "imported_total",
				Help:      "Monsters processed by CSV import by result (created/failed)",
			},
			[]string{"result", "service"},
		),
		MonsterCacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "monster",
				Name:      "cache_lookups_total",
				Help:      "Monster snapshot cache lookups by result (hit/miss)",
			},
			[]string{"result", "service"},
		),
	}
}

// RecordBattle 记录一场对战结果
func (m *BusinessMetrics) RecordBattle(firstActorWon bool, attacks int, service string) {
	service = normalizeServiceName(service)
	side := "second"
	if firstActorWon {
		side = "first"
	}
	m.BattlesTotal.WithLabelValues(side, service).Inc()
	m.BattleAttacks.WithLabelValues(service).Observe(float64(attacks))
}

// RecordImport 记录一次 CSV 导入
func (m *BusinessMetrics) RecordImport(created, failed int, service string) {
	service = normalizeServiceName(service)
	m.MonstersImportedTotal.WithLabelValues("created", service).Add(float64(created))
	m.MonstersImportedTotal.WithLabelValues("failed", service).Add(float64(failed))
}

// RecordCacheLookup 记录缓存命中或未命中
func (m *BusinessMetrics) RecordCacheLookup(hit bool, service string) {
	service = normalizeServiceName(service)
	result := "miss"
	if hit {
		result = "hit"
	}
	m.MonsterCacheLookups.WithLabelValues(result, service).Inc()
}
