package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pageza/recipe-gateway/internal/api"
	"github.com/pageza/recipe-gateway/internal/middleware"
	"github.com/pageza/recipe-gateway/internal/service"
)

// SetupRouter configures the middleware chain and application routes
func SetupRouter(provider service.RecipeProvider, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// Recovery runs inside Logger and Metrics so panicking requests are
	// still logged and counted as 500s
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(),
		middleware.Recovery(logger),
		middleware.CORS(),
	)

	// Gateway routes
	api.SetupAPI(router, provider, logger)

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
