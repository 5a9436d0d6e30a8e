package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController reports service liveness and build information.
type HealthController struct {
	version string
}

func NewHealthController(version string) *HealthController {
	return &HealthController{version: version}
}

func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": c.version,
	})
}
