package route

import (
	"net/http"
	"time"

	"gitcraft-go-server/api/controller"
	"gitcraft-go-server/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies 路由依赖注入结构
type Dependencies struct {
	UserController    *controller.UserController
	CounterController *controller.CounterController
	WebhookController *controller.WebhookController

	// VerifyToken 校验 /api/user 下的 Clerk 会话 Token
	VerifyToken middleware.TokenVerifier

	// Gatherer 提供 /metrics 数据，nil 时不注册该端点
	Gatherer prometheus.Gatherer
}

// Setup 配置所有路由
func Setup(router *gin.Engine, deps *Dependencies) {
	// --- 公开路由 ---

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running. Try GET /health or /api/test/count")
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":      true,
			"service": "api",
			"time":    time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// Clerk Webhook（使用 svix 签名验证，不使用 JWT）
	router.POST("/webhook/clerk", deps.WebhookController.HandleClerkWebhook)

	api := router.Group("/api")
	api.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "API root"})
	})

	// --- 诊断用计数器 ---
	test := api.Group("/test")
	{
		test.GET("/ping", deps.CounterController.Ping)
		test.GET("/count", deps.CounterController.Count)
		test.GET("/settings", deps.CounterController.GetSettings)
		test.POST("/settings", deps.CounterController.UpdateSettings)
	}

	// --- 用户路由（需要 Clerk JWT 认证）---
	user := api.Group("/user")
	user.Use(middleware.ClerkAuth(deps.VerifyToken))
	{
		user.GET("/me", deps.UserController.GetMe)
		user.POST("/ensure", deps.UserController.Ensure)
		user.PATCH("/me", deps.UserController.PatchMe)
	}
}
