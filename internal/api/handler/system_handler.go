package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kirkclark82/UGCC-APP/pkg/response"
)

// SystemHandler liveness endpoints
type SystemHandler struct{}

// NewSystemHandler creates a SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Health liveness probe
// GET /health
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Test reports that the API is reachable
// GET /api/test
func (h *SystemHandler) Test(c *gin.Context) {
	response.OK(c, "Backend server is running!")
}
