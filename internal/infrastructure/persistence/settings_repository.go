package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/ssteiger/lieferschein-hitscher/internal/domain/settings"
	"github.com/ssteiger/lieferschein-hitscher/internal/domain/shared"
	"github.com/ssteiger/lieferschein-hitscher/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements settings.Repository using GORM
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GormSettingsRepository
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get returns the stored JSON document for a setting key
func (r *GormSettingsRepository) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var model models.AppSettingModel
	if err := r.db.WithContext(ctx).
		First(&model, "setting_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return json.RawMessage(model.SettingValue), nil
}

// GetAll returns every stored setting keyed by setting key
func (r *GormSettingsRepository) GetAll(ctx context.Context) (map[string]json.RawMessage, error) {
	var rows []models.AppSettingModel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make(map[string]json.RawMessage, len(rows))
	for _, row := range rows {
		result[row.SettingKey] = json.RawMessage(row.SettingValue)
	}
	return result, nil
}

// Upsert stores a setting value, inserting the row on first write
func (r *GormSettingsRepository) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	now := time.Now()
	model := models.AppSettingModel{
		SettingKey:   key,
		SettingValue: models.JSONB(value),
	}
	model.ID = uuid.New()
	model.CreatedAt = now
	model.UpdatedAt = now

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"setting_value": model.SettingValue,
				"updated_at":    now,
			}),
		}).
		Create(&model).Error
}

// Ensure GormSettingsRepository implements the interface
var _ settings.Repository = (*GormSettingsRepository)(nil)
