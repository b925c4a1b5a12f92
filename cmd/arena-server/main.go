package main

import (
	"fmt"
	"time"

	docs "monster-arena/docs/arena"
	"monster-arena/internal/modules/arena"
	"monster-arena/internal/pkg/config"
	"monster-arena/internal/pkg/notify"

	"github.com/liangdas/mqant"
	"github.com/liangdas/mqant/module"
	"github.com/liangdas/mqant/registry"
	"github.com/liangdas/mqant/registry/consul"
	"github.com/nats-io/nats.go"
)

// @title           Monster Arena API
// @version         1.0
// @description     怪物管理与对战结算 API - 基于 mqant 微服务架构

// @contact.name   Monster Arena Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost
// @BasePath  /

func main() {
	fmt.Println("==============================================")
	fmt.Println("  Monster Arena Server")
	fmt.Println("  Version: 1.0.0")
	fmt.Println("==============================================")
	fmt.Println()

	cfg, err := config.LoadServerConfig()
	if err != nil {
		fmt.Printf("[Main] Failed to load config: %v\n", err)
		return
	}
	fmt.Printf("[Main] Consul address: %s\n", cfg.ConsulAddress)
	fmt.Printf("[Main] NATS address: %s\n", cfg.NatsAddress)

	// Connect to NATS
	nc, err := nats.Connect("nats://"+cfg.NatsAddress,
		nats.MaxReconnects(10),
		nats.ReconnectWait(1*time.Second),
	)
	if err != nil {
		fmt.Printf("[Main] Failed to connect to NATS: %v\n", err)
		return
	}
	fmt.Println("[Main] Connected to NATS successfully")

	// 对战事件与 mqant RPC 共用同一个连接
	notify.SetNatsConn(nc)

	// Configure Swagger to follow current request origin
	docs.SwaggerInfo.Host = ""
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Create Consul registry
	rs := consul.NewRegistry(func(options *registry.Options) {
		options.Addrs = []string{cfg.ConsulAddress}
	})

	// RegisterTTL 和 RegisterInterval 在模块的 OnInit 中配置
	app := mqant.CreateApp(
		module.Configure(cfg.ConfigFile),
		module.Debug(cfg.Debug),
		module.Nats(nc),
		module.Registry(rs),
	)

	fmt.Println("[Main] Configuration loaded")

	app.Run(
		arena.Module(),
	)
}
