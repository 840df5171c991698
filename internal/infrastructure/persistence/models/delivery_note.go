package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/ssteiger/lieferschein-hitscher/internal/domain/deliverynote"
)

// DeliveryNoteModel is the persistence model for the DeliveryNote aggregate root.
type DeliveryNoteModel struct {
	BaseModel
	LieferscheinNr string                  `gorm:"type:text;not null"`
	Bestellnummer  string                  `gorm:"type:varchar(12);not null"`
	DeliveryDate   time.Time               `gorm:"type:date;not null"`
	Notes          string                  `gorm:"type:text;not null"`
	Items          []DeliveryNoteItemModel `gorm:"foreignKey:DeliveryNoteID;references:ID"`
}

// TableName returns the table name for GORM
func (DeliveryNoteModel) TableName() string {
	return "delivery_notes"
}

// ToDomain converts the persistence model to a domain DeliveryNote.
func (m *DeliveryNoteModel) ToDomain() *deliverynote.DeliveryNote {
	note := &deliverynote.DeliveryNote{
		BaseEntity:     m.BaseModel.ToDomain(),
		LieferscheinNr: m.LieferscheinNr,
		Bestellnummer:  m.Bestellnummer,
		DeliveryDate:   m.DeliveryDate,
		Notes:          m.Notes,
		Items:          make([]deliverynote.DeliveryNoteItem, len(m.Items)),
	}
	for i, item := range m.Items {
		note.Items[i] = item.ToDomain()
	}
	return note
}

// FromDomain populates the persistence model from a domain DeliveryNote.
// Item models get fresh IDs; the full item set is replaced on every save.
func (m *DeliveryNoteModel) FromDomain(note *deliverynote.DeliveryNote) {
	m.FromDomainBaseEntity(note.BaseEntity)
	m.LieferscheinNr = note.LieferscheinNr
	m.Bestellnummer = note.Bestellnummer
	m.DeliveryDate = note.DeliveryDate
	m.Notes = note.Notes
	m.Items = make([]DeliveryNoteItemModel, len(note.Items))
	for i, item := range note.Items {
		m.Items[i].FromDomain(note.ID, item)
	}
}

// DeliveryNoteItemModel is the persistence model for a delivery note line item.
type DeliveryNoteItemModel struct {
	ID             uuid.UUID     `gorm:"type:uuid;primary_key"`
	DeliveryNoteID uuid.UUID     `gorm:"type:uuid;not null;index"`
	ArticleName    string        `gorm:"type:text;not null"`
	Quantities     pq.Int64Array `gorm:"type:integer[];not null"`
	UnitPriceCents int64         `gorm:"not null"`
	SortOrder      int           `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DeliveryNoteItemModel) TableName() string {
	return "delivery_note_items"
}

// ToDomain converts the persistence model to a domain item value.
func (m *DeliveryNoteItemModel) ToDomain() deliverynote.DeliveryNoteItem {
	return deliverynote.DeliveryNoteItem{
		ArticleName:    m.ArticleName,
		Quantities:     deliverynote.NormalizeQuantities(m.Quantities),
		UnitPriceCents: m.UnitPriceCents,
		SortOrder:      m.SortOrder,
	}
}

// FromDomain populates the persistence model from a domain item value.
func (m *DeliveryNoteItemModel) FromDomain(noteID uuid.UUID, item deliverynote.DeliveryNoteItem) {
	m.ID = uuid.New()
	m.DeliveryNoteID = noteID
	m.ArticleName = item.ArticleName
	m.Quantities = pq.Int64Array(deliverynote.NormalizeQuantities(item.Quantities))
	m.UnitPriceCents = item.UnitPriceCents
	m.SortOrder = item.SortOrder
}
