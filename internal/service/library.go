package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/digipark/captionforge/internal/domain"
	"github.com/digipark/captionforge/internal/presets"
	"github.com/digipark/captionforge/internal/repository"
	"github.com/google/uuid"
)

// LibraryService manages a user's saved keywords and their
// variable-customization config.
type LibraryService struct {
	repo *repository.LibraryRepository
}

// NewLibraryService creates a new LibraryService.
func NewLibraryService(repo *repository.LibraryRepository) *LibraryService {
	return &LibraryService{repo: repo}
}

// Keyword is one saved keyword row.
type Keyword struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ListKeywords returns the user's saved keywords, newest first.
func (s *LibraryService) ListKeywords(ctx context.Context, userID string) ([]Keyword, error) {
	rows, err := s.repo.ListByLabel(ctx, userID, domain.EntryTypeKeyword, domain.LabelUserKeyword)
	if err != nil {
		return nil, err
	}
	out := make([]Keyword, 0, len(rows))
	for _, row := range rows {
		text, _ := row.Content["text"].(string)
		out = append(out, Keyword{
			ID:        row.ID,
			Text:      text,
			Category:  row.Category,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

// AddKeywords saves new keywords for the user, skipping blanks and
// duplicates of already-saved text.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - userID: owning user ID.
//   - category: optional grouping label.
//   - texts: keyword texts to save.
//
// Returns:
//   - []Keyword: rows actually created.
//   - error: non-nil if a write fails.
func (s *LibraryService) AddKeywords(ctx context.Context, userID, category string, texts []string) ([]Keyword, error) {
	existing, err := s.ListKeywords(ctx, userID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(existing))
	for _, k := range existing {
		seen[strings.ToLower(k.Text)] = true
	}

	created := make([]Keyword, 0, len(texts))
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" || seen[strings.ToLower(text)] {
			continue
		}
		seen[strings.ToLower(text)] = true

		entry := &domain.LibraryEntry{
			ID:        uuid.New().String(),
			UserID:    userID,
			Type:      domain.EntryTypeKeyword,
			Category:  category,
			Label:     domain.LabelUserKeyword,
			Content:   domain.JSONMap{"text": text},
			CreatedAt: time.Now(),
		}
		if err := s.repo.Create(ctx, entry); err != nil {
			return nil, err
		}
		created = append(created, Keyword{
			ID:        entry.ID,
			Text:      text,
			Category:  category,
			CreatedAt: entry.CreatedAt,
		})
	}
	return created, nil
}

// DeleteKeyword removes one saved keyword. Returns false when the row does
// not exist or belongs to someone else.
func (s *LibraryService) DeleteKeyword(ctx context.Context, userID, id string) (bool, error) {
	n, err := s.repo.DeleteByID(ctx, userID, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// GetVariableConfig returns the user's saved catalog customization, or an
// empty config when none is saved.
func (s *LibraryService) GetVariableConfig(ctx context.Context, userID string) (presets.VariableConfig, error) {
	entry, err := s.repo.GetByLabel(ctx, userID, domain.EntryTypePreset, domain.LabelVariableConfig)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return presets.VariableConfig{}, nil
	}

	// The config round-trips through the JSON column; re-marshal to get it
	// back into its typed shape.
	raw, err := json.Marshal(entry.Content)
	if err != nil {
		return nil, fmt.Errorf("corrupt variable config: %w", err)
	}
	var cfg presets.VariableConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("corrupt variable config: %w", err)
	}
	return cfg, nil
}

// SaveVariableConfig upserts the user's catalog customization in place.
func (s *LibraryService) SaveVariableConfig(ctx context.Context, userID string, cfg presets.VariableConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	var content domain.JSONMap
	if err := json.Unmarshal(raw, &content); err != nil {
		return err
	}

	return s.repo.Save(ctx, &domain.LibraryEntry{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      domain.EntryTypePreset,
		Label:     domain.LabelVariableConfig,
		Content:   content,
		CreatedAt: time.Now(),
	})
}
