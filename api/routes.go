package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/database"
	"github.com/matthewshvorin/dokkan-team-backend/internal/platform/startup"
	"github.com/matthewshvorin/dokkan-team-backend/internal/team"
	"github.com/matthewshvorin/dokkan-team-backend/internal/unit"
)

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		// 角色图鉴相关的路由组 /api/units
		unitRoutes := api.Group("/units")
		{
			unitRoutes.GET("", unit.GetUnits)
			unitRoutes.GET("/:id", unit.GetUnitByID)
			unitRoutes.GET("/:id/coverage", unit.GetUnitCoverage)
		}

		// 配队相关的路由组 /api/team
		teamRoutes := api.Group("/team")
		{
			teamRoutes.POST("/suggest-leader", team.SuggestLeader)
			teamRoutes.GET("/leaders", team.FindLeaders)
			teamRoutes.POST("/autofill", team.AutoFillTeamHandler)
			teamRoutes.POST("/synergy", team.GetSynergy)

			teamRoutes.POST("/presets", team.SavePresetHandler)
			teamRoutes.GET("/presets", team.GetPresets)
			teamRoutes.GET("/presets/:id", team.GetPresetByID)
			teamRoutes.DELETE("/presets/:id", team.DeletePresetByID)
		}

		// 管理相关的路由
		api.POST("/admin/reload", reloadCatalog)
		api.GET("/health", getHealth)
	}
}

// reloadCatalog 在运行时重新加载图鉴索引并预热缓存。
func reloadCatalog(c *gin.Context) {
	if err := startup.RebuildCache(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "图鉴重载失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "图鉴重载完成"})
}

// getHealth 返回服务与Redis的健康状态。
func getHealth(c *gin.Context) {
	status := http.StatusOK
	redisState := "healthy"
	if !database.IsRedisHealthy() {
		status = http.StatusServiceUnavailable
		redisState = "unavailable"
	}
	c.JSON(status, gin.H{"redis": redisState})
}
