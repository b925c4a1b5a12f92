package arena

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "monster-arena/docs/arena" // Swagger 生成的文档

	custommiddleware "monster-arena/internal/middleware"
	"monster-arena/internal/modules/arena/handler"
	"monster-arena/internal/modules/arena/service"
	"monster-arena/internal/pkg/i18n"
	"monster-arena/internal/pkg/log"
	"monster-arena/internal/pkg/metrics"
	"monster-arena/internal/pkg/notify"
	"monster-arena/internal/pkg/response"
	"monster-arena/internal/pkg/security"
	"monster-arena/internal/pkg/trace"
	"monster-arena/internal/pkg/validation"
	"monster-arena/internal/pkg/validator"
	"monster-arena/internal/pkg/xerrors"
	"monster-arena/internal/repository/interfaces"
)

// maxBodySize CSV 上传也走这个限制
const maxBodySize = "10M"

// Services 竞技场业务服务
type Services struct {
	Monster *service.MonsterService
	Battle  *service.BattleService
}

// NewServices 组装业务服务
func NewServices(monsterRepo interfaces.MonsterRepository, battleRepo interfaces.BattleRepository, publisher notify.Publisher) *Services {
	return &Services{
		Monster: service.NewMonsterService(monsterRepo, publisher),
		Battle:  service.NewBattleService(monsterRepo, battleRepo, publisher),
	}
}

// NewHTTPServer 创建配置好中间件和路由的 echo 实例
func NewHTTPServer(svcs *Services, respWriter response.Writer, logger log.Logger, environment string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = environment == "development"
	e.Validator = validator.New()

	// ========== 中间件配置（顺序很重要！） ==========

	// 1. TraceID 中间件 - 最先执行，生成或提取 TraceID
	e.Use(trace.Middleware())

	// 2. Metrics 中间件 - 记录路由模板到 context（用于 Prometheus 和日志）
	e.Use(metrics.Middleware())

	// 3. i18n 中间件 - 语言检测和设置
	e.Use(i18n.Middleware())

	// 4. Logging 中间件 - 记录请求日志（依赖 TraceID）
	e.Use(custommiddleware.LoggingMiddleware(logger))

	// 5. Recovery 中间件 - 捕获 panic
	e.Use(custommiddleware.RecoveryMiddleware(respWriter, logger))

	// 6. Error 中间件 - 统一错误处理, 未知路由也在这里转成 404 响应
	e.Use(custommiddleware.ErrorMiddleware(respWriter, logger))

	// 7. CORS 和安全响应头
	e.Use(security.CORSMiddleware())
	e.Use(security.SecurityHeadersMiddleware())

	e.Use(echomiddleware.BodyLimit(maxBodySize))

	SetupRoutes(e, svcs, respWriter)
	return e
}

// SetupRoutes 注册所有路由
func SetupRoutes(e *echo.Echo, svcs *Services, respWriter response.Writer) {
	monsterHandler := handler.NewMonsterHandler(svcs.Monster, respWriter)
	battleHandler := handler.NewBattleHandler(svcs.Battle, respWriter)
	healthHandler := handler.NewHealthHandler(respWriter)

	// 系统
	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", metrics.EchoHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// 非法 ID 与不存在的 ID 同样返回 404
	monsterID := validation.UUIDParamMiddleware(respWriter, xerrors.NewMonsterNotFoundError)
	battleID := validation.UUIDParamMiddleware(respWriter, xerrors.NewBattleNotFoundError)

	api := e.Group("/api")

	monsters := api.Group("/monsters")
	{
		monsters.GET("", monsterHandler.GetMonsters)
		monsters.POST("", monsterHandler.CreateMonster)
		monsters.POST("/import_csv", monsterHandler.ImportCSV)
		monsters.GET("/:id", monsterHandler.GetMonster, monsterID)
		monsters.PUT("/:id", monsterHandler.UpdateMonster, monsterID)
		monsters.DELETE("/:id", monsterHandler.DeleteMonster, monsterID)
	}

	battles := api.Group("/battles")
	{
		battles.GET("", battleHandler.GetBattles)
		battles.POST("", battleHandler.CreateBattle)
		battles.GET("/:id", battleHandler.GetBattle, battleID)
		battles.DELETE("/:id", battleHandler.DeleteBattle, battleID)
	}
}
