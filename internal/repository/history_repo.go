package repository

import (
	"context"
	"time"

	"github.com/digipark/captionforge/internal/domain"
	"gorm.io/gorm"
)

// HistoryRepository handles generation history persistence.
type HistoryRepository struct {
	db *gorm.DB
}

// NewHistoryRepository creates a new HistoryRepository.
// Parameters:
//   - db: GORM database handle used for queries.
//
// Returns:
//   - *HistoryRepository: repository instance bound to db.
func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// CreateBatch inserts a set of history rows in one statement.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - rows: history rows to persist.
//
// Returns:
//   - error: non-nil if the insert fails.
func (r *HistoryRepository) CreateBatch(ctx context.Context, rows []domain.GenerationHistory) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

// ListByUser returns a user's history, newest first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - userID: owning user ID.
//   - limit: maximum rows to return (0 means no limit).
//
// Returns:
//   - []domain.GenerationHistory: matching rows.
//   - error: non-nil if the query fails.
func (r *HistoryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.GenerationHistory, error) {
	var rows []domain.GenerationHistory
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteByID removes one history row owned by the user. Scoping the delete
// by user_id keeps one user from deleting another's rows.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - userID: owning user ID.
//   - id: history row ID.
//
// Returns:
//   - int64: number of rows removed (0 when not found or not owned).
//   - error: non-nil if the delete fails.
func (r *HistoryRepository) DeleteByID(ctx context.Context, userID, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.GenerationHistory{})
	return result.RowsAffected, result.Error
}

// DeleteOlderThan removes all history rows created before the cutoff,
// regardless of owner.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - cutoff: rows strictly older than this are removed.
//
// Returns:
//   - int64: number of rows removed.
//   - error: non-nil if the delete fails.
func (r *HistoryRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&domain.GenerationHistory{})
	return result.RowsAffected, result.Error
}
