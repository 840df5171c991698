package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONB stores a raw JSON document in a jsonb column.
type JSONB json.RawMessage

// Value implements driver.Valuer
func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

// Scan implements sql.Scanner
func (j *JSONB) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*j = nil
		return nil
	case []byte:
		*j = append((*j)[:0], v...)
		return nil
	case string:
		*j = JSONB(v)
		return nil
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
}

// AppSettingModel is the persistence model for one keyed settings document.
type AppSettingModel struct {
	BaseModel
	SettingKey   string `gorm:"type:text;not null;uniqueIndex"`
	SettingValue JSONB  `gorm:"type:jsonb;not null"`
}

// TableName returns the table name for GORM
func (AppSettingModel) TableName() string {
	return "app_settings"
}
