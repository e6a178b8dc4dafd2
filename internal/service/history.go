package service

import (
	"context"
	"time"

	"github.com/digipark/captionforge/internal/domain"
	"github.com/digipark/captionforge/internal/logger"
	"github.com/digipark/captionforge/internal/repository"
	"github.com/google/uuid"
)

// HistoryService persists generated captions and serves history queries.
type HistoryService struct {
	repo          *repository.HistoryRepository
	retentionDays int
}

// NewHistoryService creates a new HistoryService.
// Parameters:
//   - repo: history repository.
//   - retentionDays: cleanup window in days (0 uses 7).
//
// Returns:
//   - *HistoryService: initialized service.
func NewHistoryService(repo *repository.HistoryRepository, retentionDays int) *HistoryService {
	if retentionDays <= 0 {
		retentionDays = 7
	}
	return &HistoryService{repo: repo, retentionDays: retentionDays}
}

// SaveAll persists every caption of a generation result for a user. An
// empty user ID means an anonymous call; those are logged and not stored.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - userID: owning user ID.
//   - result: captions to persist.
//
// Returns:
//   - error: non-nil if the insert fails.
func (s *HistoryService) SaveAll(ctx context.Context, userID string, result *domain.GenerationResult) error {
	if result == nil || result.Total() == 0 {
		return nil
	}
	if userID == "" {
		logger.CtxWarn(ctx, "skipping history save: no user id on request")
		return nil
	}

	now := time.Now()
	rows := make([]domain.GenerationHistory, 0, result.Total())
	for _, c := range result.All() {
		rows = append(rows, domain.GenerationHistory{
			ID:            uuid.New().String(),
			UserID:        userID,
			Platform:      c.Platform,
			Caption:       c.Caption,
			Tags:          c.Tags,
			KeywordsUsed:  c.KeywordsUsed,
			VariablesUsed: c.VariablesUsed,
			Model:         c.Model,
			Creativity:    c.Creativity,
			Intensity:     c.Intensity,
			KeywordCount:  c.KeywordCount,
			CreatedAt:     now,
		})
	}
	return s.repo.CreateBatch(ctx, rows)
}

// List returns a user's history, newest first.
func (s *HistoryService) List(ctx context.Context, userID string, limit int) ([]domain.GenerationHistory, error) {
	return s.repo.ListByUser(ctx, userID, limit)
}

// Delete removes one history row owned by the user. Returns false when the
// row does not exist or belongs to someone else.
func (s *HistoryService) Delete(ctx context.Context, userID, id string) (bool, error) {
	n, err := s.repo.DeleteByID(ctx, userID, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Cleanup removes all history rows older than the retention window and
// returns how many were removed.
func (s *HistoryService) Cleanup(ctx context.Context) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)
	removed, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	logger.With(logger.Fields{logger.FieldCount: removed}).
		Info(ctx, "History cleanup removed rows older than %d days", s.retentionDays)
	return removed, nil
}
