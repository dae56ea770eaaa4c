package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	storageCheck func() bool
}

// NewHealthController creates a new health controller instance. storageCheck
// reports whether the data directory is usable.
func NewHealthController(storageCheck func() bool) *HealthController {
	return &HealthController{storageCheck: storageCheck}
}

// Check handles GET /health requests.
func (c *HealthController) Check(ctx *gin.Context) {
	storage := "ok"
	status := http.StatusOK
	if c.storageCheck != nil && !c.storageCheck() {
		storage = "unavailable"
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, gin.H{
		"status":  "ok",
		"storage": storage,
	})
}
