package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/matthewshvorin/dokkan-team-backend/api"
	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/config"
	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/database"
	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/health"
	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/shutdown"
	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/startup"
	"github.com/matthewshvorin/dokkan-team-backend/pkg/lifecycle"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("无法加载配置文件: %v", err))
	}

	database.InitDB(cfg.Database.Sqlite)
	database.InitRedis(cfg.Database.Redis)

	// 阻塞式获取初始Run ID
	health.InitializeRunID()

	// 执行应用首次启动初始化流程
	if err := startup.InitializeApplication(cfg); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 阻塞式执行一次启动后健康检查
	fmt.Println("正在执行启动后健康检查...")
	health.PerformCheck()

	// 后台服务的生命周期管理
	gracefulMgr := lifecycle.NewManager()
	forcefulMgr := lifecycle.NewManager()

	healthHandle, err := gracefulMgr.NewServiceHandle("redis-health-checker")
	if err != nil {
		panic(fmt.Sprintf("无法注册健康检查器: %v", err))
	}
	go health.StartRedisHealthCheck(healthHandle)

	r := api.NewRouter(cfg)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic("服务器启动失败: " + err.Error())
		}
	}()

	coordinator := shutdown.NewCoordinator(gracefulMgr, forcefulMgr)
	coordinator.ListenForSignalsAndShutdown(server)
}
