package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipe-gateway/internal/service"
)

// SetupAPI registers the liveness probe and the recipe relay routes
func SetupAPI(router *gin.Engine, provider service.RecipeProvider, logger *zap.Logger) {
	router.GET("/test", Health)

	apiGroup := router.Group("/api")
	{
		recipeHandler := NewRecipeHandler(provider, logger)
		recipeHandler.RegisterRoutes(apiGroup)
	}
}
