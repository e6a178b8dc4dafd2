package handler

import (
	"net/http"

	"github.com/digipark/captionforge/internal/service"
	"github.com/gin-gonic/gin"
)

// MaintenanceHandler handles scheduler-driven maintenance endpoints. The
// routes behind it are guarded by the shared-secret middleware.
type MaintenanceHandler struct {
	history *service.HistoryService
}

// NewMaintenanceHandler creates a new maintenance handler.
func NewMaintenanceHandler(history *service.HistoryService) *MaintenanceHandler {
	return &MaintenanceHandler{history: history}
}

// Cleanup handles POST /api/v1/maintenance/cleanup.
func (h *MaintenanceHandler) Cleanup(c *gin.Context) {
	removed, err := h.history.Cleanup(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
