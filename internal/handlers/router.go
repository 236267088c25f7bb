package handlers

import (
	"html/template"

	"github.com/alimgiray/repostats/internal/middleware"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the read-only report routes
func NewRouter(templates *template.Template, statsHandler *StatsHandler, healthHandler *HealthHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())
	router.SetHTMLTemplate(templates)

	router.GET("/health", healthHandler.HealthCheck)

	stats := router.Group("/stats")
	{
		stats.GET("/global/:year", statsHandler.GlobalStats)
		stats.GET("/contributors", statsHandler.ContributorStats)
	}

	router.NoRoute(NewNotFoundHandler().NotFound)

	return router
}
