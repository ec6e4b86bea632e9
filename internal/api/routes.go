package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alexiusacademia/gocable/internal/api/handlers"
	"github.com/alexiusacademia/gocable/internal/config"
	"github.com/alexiusacademia/gocable/internal/store"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, st store.Store, cfg *config.Config, logger *zap.Logger) {
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, Origin")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	if !cfg.IsProduction() {
		router.Use(func(c *gin.Context) {
			c.Header("Cache-Control", "no-store")
			c.Next()
		})
	}

	api := router.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		sims := api.Group("/simulations")
		{
			sims.POST("", handlers.CreateSimulation(st, logger))
			sims.GET("", handlers.ListSimulations(st, logger))
			sims.GET("/:id", handlers.GetSimulation(st, logger))
		}
	}
}

// NewRouter builds a gin engine with request logging through zap
func NewRouter(st store.Store, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	SetupRoutes(router, st, cfg, logger)
	return router
}
