package handler

import (
	"net/http"

	"github.com/digipark/captionforge/internal/api/middleware"
	"github.com/digipark/captionforge/internal/domain"
	"github.com/digipark/captionforge/internal/logger"
	"github.com/digipark/captionforge/internal/service"
	"github.com/gin-gonic/gin"
)

// GenerateHandler handles caption generation endpoints.
type GenerateHandler struct {
	gen     *service.GenerationService
	batch   *service.BatchService
	history *service.HistoryService
	library *service.LibraryService
}

// NewGenerateHandler creates a new generate handler.
func NewGenerateHandler(
	gen *service.GenerationService,
	batch *service.BatchService,
	history *service.HistoryService,
	library *service.LibraryService,
) *GenerateHandler {
	return &GenerateHandler{gen: gen, batch: batch, history: history, library: library}
}

// Generate handles POST /api/v1/generate.
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req service.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	userID := middleware.UserID(c)
	h.applySavedConfig(c, userID, &req)

	result, err := h.gen.Generate(ctx, &req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}

	// History is best-effort: a storage hiccup must not cost the user
	// captions that were already paid for.
	if err := h.history.SaveAll(ctx, userID, result); err != nil {
		logger.CtxError(ctx, "failed to save generation history: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"data":         result,
		"keywordsUsed": keywordsUsed(result),
		"total":        result.Total(),
	})
}

// GenerateBatch handles POST /api/v1/generate/batch.
func (h *GenerateHandler) GenerateBatch(c *gin.Context) {
	var req service.BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	userID := middleware.UserID(c)
	h.applySavedConfig(c, userID, &req.GenerateRequest)

	batchResult, err := h.batch.Run(ctx, &req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := h.history.SaveAll(ctx, userID, batchResult.Result); err != nil {
		logger.CtxError(ctx, "failed to save batch history: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"batchId":      batchResult.BatchID,
		"data":         batchResult.Result,
		"keywordsUsed": keywordsUsed(batchResult.Result),
		"total":        batchResult.Result.Total(),
		"failedUnits":  batchResult.FailedUnits,
	})
}

// keywordsUsed collects the distinct keywords across every caption in the
// result, in first-seen order.
func keywordsUsed(result *domain.GenerationResult) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, caption := range result.All() {
		for _, kw := range caption.KeywordsUsed {
			if seen[kw] {
				continue
			}
			seen[kw] = true
			out = append(out, kw)
		}
	}
	return out
}

// applySavedConfig loads the caller's saved catalog customization when the
// request does not carry one inline.
func (h *GenerateHandler) applySavedConfig(c *gin.Context, userID string, req *service.GenerateRequest) {
	if len(req.Config) > 0 || userID == "" {
		return
	}
	cfg, err := h.library.GetVariableConfig(c.Request.Context(), userID)
	if err != nil {
		logger.CtxWarn(c.Request.Context(), "failed to load variable config: %v", err)
		return
	}
	req.Config = cfg
}
