package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipe-gateway/internal/middleware"
	"github.com/pageza/recipe-gateway/internal/service"
)

const (
	errFetchRecipes       = "Failed to fetch recipes"
	errFetchRecipeDetails = "Failed to fetch recipe details"
)

// RecipeHandler relays recipe lookups to the upstream provider
type RecipeHandler struct {
	provider service.RecipeProvider
	logger   *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(provider service.RecipeProvider, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		provider: provider,
		logger:   logger,
	}
}

// RegisterRoutes registers the recipe routes
func (h *RecipeHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/recipes", h.SearchRecipes)
	router.GET("/recipe/:id", h.GetRecipe)
}

// SearchRecipes finds recipes by a comma-separated ingredient list
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	ingredients, ok := c.GetQuery("ingredients")

	body, err := h.provider.FindByIngredients(c.Request.Context(), service.IngredientQuery{
		Value: ingredients,
		Set:   ok,
	})
	if err != nil {
		h.logger.Error("API Error",
			zap.String("operation", "find_by_ingredients"),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errFetchRecipes})
		return
	}

	c.Data(http.StatusOK, gin.MIMEJSON+"; charset=utf-8", body)
}

// GetRecipe fetches the details of a single recipe
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id := c.Param("id")

	body, err := h.provider.GetRecipeInformation(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("API Error",
			zap.String("operation", "recipe_information"),
			zap.String("recipe_id", id),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errFetchRecipeDetails})
		return
	}

	c.Data(http.StatusOK, gin.MIMEJSON+"; charset=utf-8", body)
}
