package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// EntryType distinguishes keyword rows from serialized preset configs.
type EntryType string

const (
	EntryTypeKeyword EntryType = "keyword"
	EntryTypePreset  EntryType = "preset"
)

// Well-known entry labels.
const (
	LabelUserKeyword    = "user_keyword"
	LabelSystemPreset   = "system_preset"
	LabelVariableConfig = "variable_config"
)

// JSONMap is a free-form JSON payload column.
type JSONMap map[string]interface{}

// Value implements driver.Valuer for the JSON column form.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for the JSON column form.
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("failed to scan JSONMap")
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, m)
}

// LibraryEntry is a row of the user library: either a keyword or a
// serialized variable-customization config. Preset entries are addressed by
// (type, user, label) so the config can be upserted in place; keyword
// entries share a label and are plain inserts.
type LibraryEntry struct {
	ID        string    `gorm:"type:text;primaryKey" json:"id"`
	UserID    string    `gorm:"type:text;index:idx_library_owner" json:"user_id"`
	Type      EntryType `gorm:"type:text;not null;index:idx_library_owner" json:"type"`
	Category  string    `gorm:"type:text" json:"category,omitempty"`
	Label     string    `gorm:"type:text;not null;index:idx_library_owner" json:"label"`
	Content   JSONMap   `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the database table name for LibraryEntry.
func (LibraryEntry) TableName() string {
	return "library_entries"
}
