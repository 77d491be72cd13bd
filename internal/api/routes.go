package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"breakeven/server/config"
)

func SetupRoutes(router *gin.Engine, handler *Handler, cfg *config.Config) {
	corsCfg := cors.DefaultConfig()
	corsCfg.MaxAge = 12 * time.Hour
	if len(cfg.HTTP.AllowedOrigins) == 1 && cfg.HTTP.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.HTTP.AllowedOrigins
	}
	router.Use(cors.New(corsCfg))

	if cfg.HTTP.RateLimitPerMinute > 0 {
		limiter := NewRateLimiter(cfg.HTTP.RateLimitPerMinute, time.Minute)
		router.Use(RateLimitMiddleware(limiter))
	}

	api := router.Group("/api")
	{
		api.POST("/schedule", handler.CalculateSchedule)
		api.POST("/schedule/export", handler.ExportSchedule)
		api.POST("/schedule/compare", handler.CompareSchedules)
		api.GET("/presets", handler.GetPresets)
		api.GET("/presets/:name", handler.GetPreset)
		api.POST("/scenarios", handler.CreateScenario)
		api.GET("/scenarios", handler.ListScenarios)
		api.GET("/scenarios/:name", handler.GetScenario)
		api.DELETE("/scenarios/:name", handler.DeleteScenario)
	}

	router.GET("/healthz", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
