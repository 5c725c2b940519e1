package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS middleware to handle cross-origin requests. Every origin is accepted
// and preflight requests are answered with 204.
func CORS() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AddAllowHeaders("Accept", "Authorization", "X-Requested-With", RequestIDHeader)
	cfg.AddExposeHeaders(RequestIDHeader)
	cfg.MaxAge = 24 * time.Hour

	return cors.New(cfg)
}
