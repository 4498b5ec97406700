package router

import (
	"github.com/gin-gonic/gin"

	"legibrief/internal/config"
	"legibrief/internal/handler"
	"legibrief/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	summarizeH *handler.SummarizeHandler,
	searchH *handler.SearchHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS))

	api := r.Group("/api")
	api.POST("/summarize", summarizeH.Summarize)
	api.POST("/search", searchH.Search)
	api.GET("/health", healthH.Health)

	return r
}
