package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
)

// RedisConfig Redis 连接配置, Host 为空表示不启用缓存
type RedisConfig struct {
	Host     string `env:"HOST"`
	Port     int    `env:"PORT"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB"`
}

// Enabled 是否配置了 Redis
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// ArenaConfig 竞技场服务配置
//
// 加载顺序: 模块配置文件 settings < 环境变量 < 代码默认值(仅填充空值)
type ArenaConfig struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	HTTPPort       int    `env:"ARENA_HTTP_PORT"`
	DatabaseURL    string `env:"DATABASE_URL"`
	DBMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	AutoMigrate    bool   `env:"ARENA_AUTO_MIGRATE" envDefault:"true"`

	Redis    RedisConfig   `envPrefix:"REDIS_"`
	CacheTTL time.Duration `env:"ARENA_CACHE_TTL"`

	// MonitorSpec 资源监控任务的 cron 表达式(带秒)
	MonitorSpec string `env:"ARENA_MONITOR_SPEC" envDefault:"*/30 * * * * *"`
}

const (
	defaultHTTPPort = 8080
	defaultCacheTTL = 5 * time.Minute
)

// LoadArenaConfig 从模块 settings 和环境变量加载配置
func LoadArenaConfig(settings map[string]any) (ArenaConfig, error) {
	cfg := ArenaConfig{
		HTTPPort:    settingInt(settings, "http_port"),
		DatabaseURL: settingString(settings, "database_url"),
		Redis: RedisConfig{
			Host:     settingString(settings, "redis_host"),
			Port:     settingInt(settings, "redis_port"),
			Password: settingString(settings, "redis_password"),
			DB:       settingInt(settings, "redis_db"),
		},
	}
	if ttl := settingString(settings, "cache_ttl"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return cfg, fmt.Errorf("解析 cache_ttl 失败: %w", err)
		}
		cfg.CacheTTL = d
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("解析环境变量失败: %w", err)
	}

	if cfg.HTTPPort == 0 {
		cfg.HTTPPort = defaultHTTPPort
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("未配置数据库连接: 请设置 DATABASE_URL 或 settings.database_url")
	}
	return cfg, nil
}

// LogFields 返回可以安全写入日志的配置摘要
func (c ArenaConfig) LogFields() map[string]any {
	return SanitizeConfigForLog(map[string]any{
		"environment":    c.Environment,
		"http_port":      c.HTTPPort,
		"database_url":   c.DatabaseURL,
		"redis_host":     c.Redis.Host,
		"redis_password": c.Redis.Password,
		"cache_ttl":      c.CacheTTL.String(),
		"monitor_spec":   c.MonitorSpec,
	})
}

// settingString mqant settings 来自 JSON, 数字会被解码为 float64
func settingString(settings map[string]any, key string) string {
	switch v := settings[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

func settingInt(settings map[string]any, key string) int {
	switch v := settings[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		n, _ := strconv.Atoi(v)
		return n
	default:
		return 0
	}
}

// ServerConfig 进程级配置, 由 main 在创建 mqant 应用前读取
type ServerConfig struct {
	ConsulAddress string `env:"CONSUL_ADDRESS" envDefault:"localhost:8500"`
	NatsAddress   string `env:"NATS_ADDRESS" envDefault:"localhost:4222"`
	ConfigFile    string `env:"ARENA_CONFIG_FILE" envDefault:"./configs/server/arena-server.json"`
	Debug         bool   `env:"ARENA_DEBUG"`
}

// LoadServerConfig 从环境变量加载进程级配置
func LoadServerConfig() (ServerConfig, error) {
	cfg, err := env.ParseAs[ServerConfig]()
	if err != nil {
		return cfg, fmt.Errorf("解析环境变量失败: %w", err)
	}
	return cfg, nil
}
