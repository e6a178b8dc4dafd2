package handler

import (
	"net/http"

	"github.com/digipark/captionforge/internal/api/middleware"
	"github.com/digipark/captionforge/internal/presets"
	"github.com/digipark/captionforge/internal/service"
	"github.com/gin-gonic/gin"
)

// LibraryHandler handles saved keywords, catalog customization, and the
// preset catalog itself.
type LibraryHandler struct {
	library *service.LibraryService
	catalog *presets.Catalog
}

// NewLibraryHandler creates a new library handler.
func NewLibraryHandler(library *service.LibraryService, catalog *presets.Catalog) *LibraryHandler {
	return &LibraryHandler{library: library, catalog: catalog}
}

// Presets handles GET /api/v1/presets. Identified callers see the catalog
// with their customization applied; anonymous callers see the built-ins.
func (h *LibraryHandler) Presets(c *gin.Context) {
	cat := h.catalog
	if userID := middleware.UserID(c); userID != "" {
		cfg, err := h.library.GetVariableConfig(c.Request.Context(), userID)
		if err == nil && len(cfg) > 0 {
			cat = cat.WithConfig(cfg)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"dimensions": cat.Dimensions(),
	})
}

// ListKeywords handles GET /api/v1/library/keywords.
func (h *LibraryHandler) ListKeywords(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	keywords, err := h.library.ListKeywords(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load keywords"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"keywords": keywords,
		"total":    len(keywords),
	})
}

type addKeywordsRequest struct {
	Keywords []string `json:"keywords" binding:"required"`
	Category string   `json:"category"`
}

// AddKeywords handles POST /api/v1/library/keywords.
func (h *LibraryHandler) AddKeywords(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req addKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	created, err := h.library.AddKeywords(c.Request.Context(), userID, req.Category, req.Keywords)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save keywords"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"keywords": created,
		"total":    len(created),
	})
}

// DeleteKeyword handles DELETE /api/v1/library/keywords/:id.
func (h *LibraryHandler) DeleteKeyword(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	deleted, err := h.library.DeleteKeyword(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete keyword"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "keyword not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// GetVariableConfig handles GET /api/v1/library/variable-config.
func (h *LibraryHandler) GetVariableConfig(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	cfg, err := h.library.GetVariableConfig(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load variable config"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// SaveVariableConfig handles PUT /api/v1/library/variable-config.
func (h *LibraryHandler) SaveVariableConfig(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var cfg presets.VariableConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	if err := h.library.SaveVariableConfig(c.Request.Context(), userID, cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save variable config"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": true})
}
