package repository

import (
	"context"
	"errors"

	"github.com/digipark/captionforge/internal/domain"
	"gorm.io/gorm"
)

// LibraryRepository handles user library persistence (keywords and preset
// configs).
type LibraryRepository struct {
	db *gorm.DB
}

// NewLibraryRepository creates a new LibraryRepository.
// Parameters:
//   - db: GORM database handle used for queries.
//
// Returns:
//   - *LibraryRepository: repository instance bound to db.
func NewLibraryRepository(db *gorm.DB) *LibraryRepository {
	return &LibraryRepository{db: db}
}

// Create inserts a new library entry.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - entry: entry to persist.
//
// Returns:
//   - error: non-nil if the insert fails.
func (r *LibraryRepository) Create(ctx context.Context, entry *domain.LibraryEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByLabel returns a user's entries of one type and label, newest first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - userID: owning user ID.
//   - entryType: keyword or preset.
//   - label: entry label to match.
//
// Returns:
//   - []domain.LibraryEntry: matching rows.
//   - error: non-nil if the query fails.
func (r *LibraryRepository) ListByLabel(ctx context.Context, userID string, entryType domain.EntryType, label string) ([]domain.LibraryEntry, error) {
	var rows []domain.LibraryEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND label = ?", userID, entryType, label).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByLabel returns the single entry addressed by (user, type, label), or
// nil when absent.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - userID: owning user ID.
//   - entryType: keyword or preset.
//   - label: entry label to match.
//
// Returns:
//   - *domain.LibraryEntry: entry if found, nil when absent.
//   - error: non-nil if the lookup fails.
func (r *LibraryRepository) GetByLabel(ctx context.Context, userID string, entryType domain.EntryType, label string) (*domain.LibraryEntry, error) {
	var entry domain.LibraryEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND label = ?", userID, entryType, label).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Save upserts a singleton entry addressed by (user, type, label): the
// existing row's content is replaced in place, otherwise the entry is
// inserted. Keyword rows share a label and must use Create instead.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - entry: entry carrying the new content.
//
// Returns:
//   - error: non-nil if the write fails.
func (r *LibraryRepository) Save(ctx context.Context, entry *domain.LibraryEntry) error {
	existing, err := r.GetByLabel(ctx, entry.UserID, entry.Type, entry.Label)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.Create(ctx, entry)
	}
	existing.Category = entry.Category
	existing.Content = entry.Content
	return r.db.WithContext(ctx).Save(existing).Error
}

// DeleteByID removes one entry owned by the user.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - userID: owning user ID.
//   - id: entry ID.
//
// Returns:
//   - int64: number of rows removed (0 when not found or not owned).
//   - error: non-nil if the delete fails.
func (r *LibraryRepository) DeleteByID(ctx context.Context, userID, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&domain.LibraryEntry{})
	return result.RowsAffected, result.Error
}
