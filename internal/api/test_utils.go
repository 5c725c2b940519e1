package api

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/recipe-gateway/internal/middleware"
	"github.com/pageza/recipe-gateway/internal/service"
)

// SetupTestRouter builds a router with the gateway routes and the given provider
func SetupTestRouter(provider service.RecipeProvider, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.CORS())
	SetupAPI(router, provider, logger)
	return router
}

// PerformRequest sends a request through the router and records the response
func PerformRequest(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
