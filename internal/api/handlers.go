package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports that the server is up. It does not touch the upstream.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Server is running!"})
}
