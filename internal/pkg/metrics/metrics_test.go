package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withServiceName(t *testing.T, name string) {
	original := GetServiceName()
	SetServiceName(name)
	t.Cleanup(func() { SetServiceName(original) })
}

func withHTTPMetrics(t *testing.T) *HTTPMetrics {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetricsWithRegistry("test", reg)
	original := DefaultHTTPMetrics
	DefaultHTTPMetrics = m
	t.Cleanup(func() { DefaultHTTPMetrics = original })
	return m
}

func TestMiddleware_RecordsRouteTemplate(t *testing.T) {
	withServiceName(t, "arena-test")
	m := withHTTPMetrics(t)

	e := echo.New()
	e.Use(Middleware())
	e.GET("/api/monsters/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/monsters/0b8a5d3e-9c1f-4a3b-8f7e-2d6c4b1a9e00", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/api/monsters/:id", rec.Header().Get(HeaderRoutePattern))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.RequestsTotal.WithLabelValues("arena-test", "/api/monsters/:id", http.MethodGet, "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RequestsInProgress.WithLabelValues("arena-test")))
}

func TestMiddleware_RecordsErrorStatus(t *testing.T) {
	withServiceName(t, "arena-test")
	m := withHTTPMetrics(t)

	e := echo.New()
	e.Use(Middleware())
	e.DELETE("/api/battles/:id", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/battles/x", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(
		m.RequestsTotal.WithLabelValues("arena-test", "/api/battles/:id", http.MethodDelete, "404")))
}

func TestMiddleware_SkipsHealthCheck(t *testing.T) {
	m := withHTTPMetrics(t)

	e := echo.New()
	e.Use(Middleware())
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, 0, testutil.CollectAndCount(m.RequestsTotal))
}

func TestBusinessMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBusinessMetricsWithRegistry("test", reg)

	m.RecordBattle(true, 3, "arena")
	m.RecordBattle(false, 10, "arena")
	m.RecordBattle(true, 1, "arena")
	m.RecordImport(4, 1, "arena")
	m.RecordCacheLookup(true, "arena")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BattlesTotal.WithLabelValues("first", "arena")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BattlesTotal.WithLabelValues("second", "arena")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.MonstersImportedTotal.WithLabelValues("created", "arena")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MonsterCacheLookups.WithLabelValues("hit", "arena")))

	count, err := testutil.GatherAndCount(reg, "test_battle_attacks")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestResourceMetrics_RecordDBPoolStats(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewResourceMetricsWithRegistry("test", reg)

	stats := sql.DBStats{MaxOpenConnections: 25, OpenConnections: 10, InUse: 4, Idle: 6, WaitCount: 7, WaitDuration: 2 * time.Second}
	m.RecordDBPoolStats("arena", "postgres", stats)
	// 累计值重复上报不会重复累加
	m.RecordDBPoolStats("arena", "postgres", stats)

	assert.Equal(t, 4.0, testutil.ToFloat64(m.DBConnections.WithLabelValues("arena", "postgres", "in_use")))
	assert.Equal(t, 25.0, testutil.ToFloat64(m.DBMaxConnections.WithLabelValues("arena", "postgres")))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.DBWaitCount.WithLabelValues("arena", "postgres")))

	m.RecordRedisOperation("GET", false, time.Millisecond, "arena")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RedisOperations.WithLabelValues("GET", "error", "arena")))

	m.RecordNatsStatus(true, "arena")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NatsConnected.WithLabelValues("arena")))
}
