package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Platform identifies the social network a caption targets.
// Values are PlatformTikTok, PlatformInstagram, and PlatformXiaohongshu.
type Platform string

const (
	PlatformTikTok      Platform = "tiktok"
	PlatformInstagram   Platform = "instagram"
	PlatformXiaohongshu Platform = "xiaohongshu"
)

// Platforms lists all targets in generation order.
var Platforms = []Platform{PlatformTikTok, PlatformInstagram, PlatformXiaohongshu}

// Valid reports whether p is one of the known platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformTikTok, PlatformInstagram, PlatformXiaohongshu:
		return true
	}
	return false
}

// StringArray is a custom type for storing string arrays as JSON in the database.
type StringArray []string

// Value implements the driver.Valuer interface for database serialization.
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for database deserialization.
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("failed to scan StringArray")
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, a)
}

// PlatformCounts holds the number of captions requested per platform.
type PlatformCounts struct {
	TikTok      int `json:"tiktok"`
	Instagram   int `json:"instagram"`
	Xiaohongshu int `json:"xiaohongshu"`
}

// For returns the count requested for a platform.
func (c PlatformCounts) For(p Platform) int {
	switch p {
	case PlatformTikTok:
		return c.TikTok
	case PlatformInstagram:
		return c.Instagram
	case PlatformXiaohongshu:
		return c.Xiaohongshu
	}
	return 0
}

// Total returns the number of units across all platforms.
func (c PlatformCounts) Total() int {
	return c.TikTok + c.Instagram + c.Xiaohongshu
}

// GeneratedCaption is one unit of generation output. It is immutable once
// returned by the dispatcher.
type GeneratedCaption struct {
	Platform      Platform          `json:"platform"`
	Caption       string            `json:"caption"`
	Tags          []string          `json:"tags"`
	KeywordsUsed  []string          `json:"keywordsUsed"`
	VariablesUsed VariableSelection `json:"variablesUsed"`
	Model         string            `json:"model"`
	Creativity    int               `json:"creativity"`
	Intensity     int               `json:"intensity"`
	KeywordCount  int               `json:"keywordCount"`
}

// GenerationResult buckets generated captions by platform. Each caption is
// single-platform; buckets never mix.
type GenerationResult struct {
	TikTok      []GeneratedCaption `json:"tiktok"`
	Instagram   []GeneratedCaption `json:"instagram"`
	Xiaohongshu []GeneratedCaption `json:"xiaohongshu"`
}

// Append adds a caption to its platform bucket.
func (r *GenerationResult) Append(c GeneratedCaption) {
	switch c.Platform {
	case PlatformTikTok:
		r.TikTok = append(r.TikTok, c)
	case PlatformInstagram:
		r.Instagram = append(r.Instagram, c)
	case PlatformXiaohongshu:
		r.Xiaohongshu = append(r.Xiaohongshu, c)
	}
}

// Merge concatenates another result's buckets onto this one.
func (r *GenerationResult) Merge(other *GenerationResult) {
	if other == nil {
		return
	}
	r.TikTok = append(r.TikTok, other.TikTok...)
	r.Instagram = append(r.Instagram, other.Instagram...)
	r.Xiaohongshu = append(r.Xiaohongshu, other.Xiaohongshu...)
}

// All returns every caption across the three buckets.
func (r *GenerationResult) All() []GeneratedCaption {
	out := make([]GeneratedCaption, 0, len(r.TikTok)+len(r.Instagram)+len(r.Xiaohongshu))
	out = append(out, r.TikTok...)
	out = append(out, r.Instagram...)
	out = append(out, r.Xiaohongshu...)
	return out
}

// Total returns the number of captions in the result.
func (r *GenerationResult) Total() int {
	return len(r.TikTok) + len(r.Instagram) + len(r.Xiaohongshu)
}

// GenerationHistory is a persisted caption row, scoped by owning user.
type GenerationHistory struct {
	ID            string            `gorm:"type:text;primaryKey" json:"id"`
	UserID        string            `gorm:"type:text;index:idx_history_user" json:"user_id"`
	Platform      Platform          `gorm:"type:text;not null" json:"platform"`
	Caption       string            `gorm:"type:text;not null" json:"caption"`
	Tags          StringArray       `gorm:"type:text" json:"tags"`
	KeywordsUsed  StringArray       `gorm:"type:text" json:"keywords_used"`
	VariablesUsed VariableSelection `gorm:"type:text" json:"variables_used"`
	Model         string            `gorm:"type:text" json:"model,omitempty"`
	Creativity    int               `json:"creativity,omitempty"`
	Intensity     int               `json:"intensity,omitempty"`
	KeywordCount  int               `json:"keyword_count,omitempty"`
	CreatedAt     time.Time         `gorm:"index:idx_history_created" json:"created_at"`
}

// TableName returns the database table name for GenerationHistory.
func (GenerationHistory) TableName() string {
	return "generation_history"
}
