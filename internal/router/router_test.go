package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pageza/recipe-gateway/internal/mocks"
)

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := SetupRouter(new(mocks.MockRecipeProvider), zap.NewNop())

	tests := []struct {
		name   string
		method string
		path   string
		origin string
		want   int
	}{
		{name: "liveness", method: http.MethodGet, path: "/test", want: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", want: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/api/unknown", want: http.StatusNotFound},
		{name: "preflight", method: http.MethodOptions, path: "/api/recipe/1", origin: "https://cookbook.example.net", want: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
				req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

// counterValue reads a counter sample from the default registry, 0 if absent
func counterValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
	metrics:
		for _, m := range family.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue metrics
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestPanickingRouteIsLoggedAndCounted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	provider := new(mocks.MockRecipeProvider)
	provider.On("GetRecipeInformation", mock.Anything, "boom").Run(func(mock.Arguments) {
		panic("provider exploded")
	})
	router := SetupRouter(provider, zap.New(core))

	labels := map[string]string{"method": http.MethodGet, "route": "/api/recipe/:id", "status": "500"}
	before := counterValue(t, "recipe_gateway_http_requests_total", labels)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/recipe/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())

	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
	completed := logs.FilterMessage("request completed").All()
	require.Len(t, completed, 1)
	assert.Equal(t, int64(http.StatusInternalServerError), completed[0].ContextMap()["status"])

	assert.Equal(t, before+1, counterValue(t, "recipe_gateway_http_requests_total", labels))
}
