package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health provides an unauthenticated liveness endpoint.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "Health check complete")
}
