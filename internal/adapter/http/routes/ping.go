package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// addPingRoutes mounts the liveness endpoint used by load balancers.
func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
