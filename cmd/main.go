package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"gitcraft-go-server/api/controller"
	"gitcraft-go-server/api/middleware"
	"gitcraft-go-server/api/route"
	"gitcraft-go-server/bootstrap"
	"gitcraft-go-server/internal/counter"
	"gitcraft-go-server/internal/identity"
	"gitcraft-go-server/internal/metrics"
	"gitcraft-go-server/repository"
	"gitcraft-go-server/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	env, err := bootstrap.LoadEnv()
	if err != nil {
		slog.Error("invalid configuration", "component", "server", "err", err)
		os.Exit(1)
	}

	slog.SetDefault(bootstrap.NewLogger(os.Stdout, env.LogLevel, env.LogFormat))
	slog.Info("gitcraft api starting", "component", "server")

	// 初始化 Clerk（jwt.Verify 使用全局 Key，API 客户端单独配置）
	bootstrap.InitClerk(env.ClerkSecretKey)

	db, err := bootstrap.NewDatabase(env.Database)
	if err != nil {
		slog.Error("database init failed", "component", "server", "err", err)
		os.Exit(1)
	}

	// Prometheus 指标
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.New(registry)

	// 依赖注入 - Repository 层
	userRepo := repository.NewUserRepository(db)

	// 依赖注入 - 身份提供方
	idp := identity.NewClerkProviderFromKey(env.ClerkSecretKey)

	// 依赖注入 - UseCase 层
	userUseCase := usecase.NewUserUseCase(userRepo, idp, collector)

	// 依赖注入 - Controller 层
	userController := controller.NewUserController(userUseCase)
	counterController := controller.NewCounterController(counter.NewStore(env.CounterInitial, env.CounterStep))
	webhookController := controller.NewWebhookController(userUseCase, env.WebhookSecret)

	router := gin.Default()
	router.Use(middleware.CORS(env.AllowedOrigins()))
	router.Use(middleware.Metrics(collector))

	route.Setup(router, &route.Dependencies{
		UserController:    userController,
		CounterController: counterController,
		WebhookController: webhookController,
		VerifyToken:       middleware.VerifyClerkToken,
		Gatherer:          registry,
	})

	srv := &http.Server{
		Addr:    ":" + env.Port,
		Handler: router,
	}

	go func() {
		slog.Info("listening", "component", "server", "addr", "http://localhost:"+env.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "component", "server", "err", err)
			os.Exit(1)
		}
	}()

	// 优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutdown signal received", "component", "server")

	ctx, cancel := context.WithTimeout(context.Background(), env.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "component", "server", "err", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	slog.Info("server stopped", "component", "server")
}
