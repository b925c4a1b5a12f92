package arena

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/liangdas/mqant/conf"
	"github.com/liangdas/mqant/module"
	basemodule "github.com/liangdas/mqant/module/base"
	"github.com/liangdas/mqant/server"
	_ "github.com/lib/pq"

	"monster-arena/internal/modules/arena/rpc"
	"monster-arena/internal/modules/arena/tasks"
	"monster-arena/internal/pkg/config"
	"monster-arena/internal/pkg/log"
	"monster-arena/internal/pkg/metrics"
	natshealth "monster-arena/internal/pkg/nats"
	"monster-arena/internal/pkg/notify"
	"monster-arena/internal/pkg/redis"
	"monster-arena/internal/pkg/response"
	"monster-arena/internal/repository/cache"
	"monster-arena/internal/repository/impl"
	"monster-arena/internal/repository/migrate"
	"monster-arena/migrations"
)

// ArenaModule 竞技场模块: HTTP API + mqant RPC
type ArenaModule struct {
	basemodule.BaseModule
	cfg         config.ArenaConfig
	db          *sql.DB
	redisClient *redis.Client
	httpServer  *echo.Echo
	services    *Services
	monitor     *tasks.ResourceMonitorTask
	respWriter  response.Writer
	logger      log.Logger
}

// GetType returns module type
func (m *ArenaModule) GetType() string {
	return "arena"
}

// Version returns module version
func (m *ArenaModule) Version() string {
	return "1.0.0"
}

// OnAppConfigurationLoaded 当App初始化时调用
func (m *ArenaModule) OnAppConfigurationLoaded(app module.App) {
	m.BaseModule.OnAppConfigurationLoaded(app)
}

// OnInit module initialization
func (m *ArenaModule) OnInit(app module.App, settings *conf.ModuleSettings) {
	metrics.SetServiceName("arena")
	// TTL 必须大于心跳间隔
	m.BaseModule.OnInit(m, app, settings,
		server.RegisterInterval(15*time.Second),
		server.RegisterTTL(30*time.Second),
	)

	var raw map[string]any
	if settings != nil {
		raw = settings.Settings
	}
	cfg, err := config.LoadArenaConfig(raw)
	if err != nil {
		panic(fmt.Sprintf("[Arena Module] 加载配置失败: %v", err))
	}
	m.cfg = cfg

	// 1. 日志和响应写入器
	log.Init(log.ParseLevel(cfg.LogLevel), cfg.Environment)
	m.logger = log.GetLogger()
	m.respWriter = response.NewResponseHandler(m.logger, cfg.Environment)
	m.logger.Info("[Arena Module] 配置已加载", "config", cfg.LogFields())

	// 2. 数据库
	if err := m.initDatabase(); err != nil {
		panic(fmt.Sprintf("[Arena Module] 数据库初始化失败: %v", err))
	}

	// 3. Redis 缓存（可选）
	m.initRedis()

	// 4. 业务服务和 HTTP 服务
	m.initServices()
	m.httpServer = NewHTTPServer(m.services, m.respWriter, m.logger, cfg.Environment)

	// 5. 定时任务
	m.monitor = tasks.NewResourceMonitorTask(m.db,
		natshealth.NewHealthChecker(notify.Conn(), metrics.GetServiceName()),
		cfg.MonitorSpec, m.logger)
	if err := m.monitor.Start(); err != nil {
		m.logger.Error("[Arena Module] 资源监控任务启动失败", err)
		m.monitor = nil
	}

	// 6. RPC
	rpcHandler := rpc.NewArenaRPCHandler(m.services.Monster, m.services.Battle, m.logger)
	m.GetServer().RegisterGO("ResolveBattle", rpcHandler.ResolveBattle)
	m.GetServer().RegisterGO("GetMonster", rpcHandler.GetMonster)

	go m.startHTTPServer()
}

// initDatabase initializes database connection
func (m *ArenaModule) initDatabase() error {
	db, err := sql.Open("postgres", m.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(m.cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(m.cfg.DBMaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	m.db = db
	m.logger.Info("[Arena Module] 数据库连接成功",
		"max_open_conns", m.cfg.DBMaxOpenConns,
		"max_idle_conns", m.cfg.DBMaxIdleConns)

	if !m.cfg.AutoMigrate {
		return nil
	}
	applied, err := migrate.Apply(context.Background(), db, migrations.FS)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	m.logger.Info("[Arena Module] 数据库迁移完成", "applied", applied)
	return nil
}

// initRedis 连接失败时降级为不使用缓存
func (m *ArenaModule) initRedis() {
	if !m.cfg.Redis.Enabled() {
		m.logger.Info("[Arena Module] 未配置 Redis, 怪物缓存已禁用")
		return
	}

	client, err := redis.NewClient(context.Background(), m.cfg.Redis, metrics.GetServiceName())
	if err != nil {
		m.logger.Warn("[Arena Module] Redis 不可用, 怪物缓存已禁用", "error", err.Error())
		return
	}
	m.redisClient = client
	m.logger.Info("[Arena Module] Redis 连接成功", "ttl", m.cfg.CacheTTL.String())
}

func (m *ArenaModule) initServices() {
	var store cache.Store
	if m.redisClient != nil {
		store = m.redisClient
	}

	monsterRepo := cache.NewMonsterRepository(impl.NewMonsterRepository(m.db), store, m.cfg.CacheTTL, m.logger)
	battleRepo := impl.NewBattleRepository(m.db)
	m.services = NewServices(monsterRepo, battleRepo, notify.NewPublisher())
}

func (m *ArenaModule) startHTTPServer() {
	addr := ":" + strconv.Itoa(m.cfg.HTTPPort)
	m.logger.Info("[Arena Module] HTTP 服务启动", "addr", addr)

	if err := m.httpServer.Start(addr); err != nil {
		m.logger.Warn("[Arena Module] HTTP 服务退出", "error", err.Error())
	}
}

// Run module run
func (m *ArenaModule) Run(closeSig chan bool) {
	m.logger.Info("[Arena Module] Started successfully")
	<-closeSig
}

// OnDestroy module destroy
func (m *ArenaModule) OnDestroy() {
	if m.monitor != nil {
		m.monitor.Stop()
	}

	if m.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := m.httpServer.Shutdown(ctx); err != nil {
			m.logger.Error("[Arena Module] 关闭 HTTP 服务失败", err)
		}
		cancel()
	}

	if m.redisClient != nil {
		if err := m.redisClient.Close(); err != nil {
			m.logger.Error("[Arena Module] 关闭 Redis 失败", err)
		}
	}

	if m.db != nil {
		if err := m.db.Close(); err != nil {
			m.logger.Error("[Arena Module] 关闭数据库失败", err)
		}
	}

	m.BaseModule.OnDestroy()
	m.logger.Info("[Arena Module] Destroyed")
}

// Module creates Arena module instance
func Module() module.Module {
	return new(ArenaModule)
}
