package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ssteiger/lieferschein-hitscher/internal/domain/deliverynote"
	"github.com/ssteiger/lieferschein-hitscher/internal/domain/shared"
	"github.com/ssteiger/lieferschein-hitscher/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormDeliveryNoteRepository implements DeliveryNoteRepository using GORM
type GormDeliveryNoteRepository struct {
	db *gorm.DB
}

// NewGormDeliveryNoteRepository creates a new GormDeliveryNoteRepository
func NewGormDeliveryNoteRepository(db *gorm.DB) *GormDeliveryNoteRepository {
	return &GormDeliveryNoteRepository{db: db}
}

// FindByID loads a delivery note with its items in sort order
func (r *GormDeliveryNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*deliverynote.DeliveryNote, error) {
	var model models.DeliveryNoteModel
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns delivery note summaries, newest first
func (r *GormDeliveryNoteRepository) FindAll(ctx context.Context, limit int) ([]deliverynote.DeliveryNoteSummary, error) {
	query := r.db.WithContext(ctx).
		Model(&models.DeliveryNoteModel{}).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []models.DeliveryNoteModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	summaries := make([]deliverynote.DeliveryNoteSummary, len(rows))
	for i, row := range rows {
		summaries[i] = deliverynote.DeliveryNoteSummary{
			ID:             row.ID,
			LieferscheinNr: row.LieferscheinNr,
			Bestellnummer:  row.Bestellnummer,
			DeliveryDate:   row.DeliveryDate,
			Notes:          row.Notes,
			CreatedAt:      row.CreatedAt,
			UpdatedAt:      row.UpdatedAt,
		}
	}
	return summaries, nil
}

// Create inserts a new delivery note with its items
func (r *GormDeliveryNoteRepository) Create(ctx context.Context, note *deliverynote.DeliveryNote) error {
	var model models.DeliveryNoteModel
	model.FromDomain(note)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(&model).Error; err != nil {
			return err
		}
		if len(model.Items) > 0 {
			if err := tx.Create(&model.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update persists the header fields and replaces the full item set in a
// single transaction. Items are deleted and reinserted; partial item
// updates do not exist in this model.
func (r *GormDeliveryNoteRepository) Update(ctx context.Context, note *deliverynote.DeliveryNote) error {
	var model models.DeliveryNoteModel
	model.FromDomain(note)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.DeliveryNoteModel{}).
			Where("id = ?", note.ID).
			Updates(map[string]interface{}{
				"lieferschein_nr": model.LieferscheinNr,
				"bestellnummer":   model.Bestellnummer,
				"delivery_date":   model.DeliveryDate,
				"notes":           model.Notes,
				"updated_at":      model.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}

		if err := tx.Where("delivery_note_id = ?", note.ID).
			Delete(&models.DeliveryNoteItemModel{}).Error; err != nil {
			return err
		}
		if len(model.Items) > 0 {
			if err := tx.Create(&model.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a delivery note and its items
func (r *GormDeliveryNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("delivery_note_id = ?", id).
			Delete(&models.DeliveryNoteItemModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.DeliveryNoteModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Ensure GormDeliveryNoteRepository implements the interface
var _ deliverynote.DeliveryNoteRepository = (*GormDeliveryNoteRepository)(nil)
