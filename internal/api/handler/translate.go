package handler

import (
	"net/http"

	"github.com/digipark/captionforge/internal/service"
	"github.com/gin-gonic/gin"
)

// TranslateHandler handles the bilingual label helper endpoint.
type TranslateHandler struct {
	translate *service.TranslateService
}

// NewTranslateHandler creates a new translate handler.
func NewTranslateHandler(translate *service.TranslateService) *TranslateHandler {
	return &TranslateHandler{translate: translate}
}

type translateRequest struct {
	Text string `json:"text" binding:"required"`
}

// Translate handles POST /api/v1/translate.
func (h *TranslateHandler) Translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	result, err := h.translate.Translate(c.Request.Context(), req.Text)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
