package api

import (
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/config"
)

// NewRouter 创建Gin引擎并完成中间件、静态资源与API路由的装配。
func NewRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	allowedOrigins := cfg.Server.Cors.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 卡面与头像图片直接从抓取器落盘的资源目录提供
	if cfg.Catalog.AssetsDir != "" {
		r.Static("/images/cards", filepath.Join(cfg.Catalog.AssetsDir, "cards"))
	}

	SetupRoutes(r)
	return r
}
