package middleware

import (
	"net/http"

	"socialhub/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into the generic 500 body.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("Panic serving %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong!"})
	})
}

// NotFound answers requests that match no route.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
}
