package deliverynote

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DeliveryNoteSummary is a list-view projection without line items.
type DeliveryNoteSummary struct {
	ID             uuid.UUID
	LieferscheinNr string
	Bestellnummer  string
	DeliveryDate   time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DeliveryNoteRepository defines the interface for delivery note persistence
type DeliveryNoteRepository interface {
	// FindByID loads a note with its items ordered by sort order
	FindByID(ctx context.Context, id uuid.UUID) (*DeliveryNote, error)

	// FindAll returns summaries ordered by creation time, newest first.
	// A non-positive limit means no limit.
	FindAll(ctx context.Context, limit int) ([]DeliveryNoteSummary, error)

	// Create inserts a new note with its items
	Create(ctx context.Context, note *DeliveryNote) error

	// Update persists header fields and replaces the full item set
	// atomically. Returns shared.ErrNotFound for an unknown ID.
	Update(ctx context.Context, note *DeliveryNote) error

	// Delete removes a note and its items. Returns shared.ErrNotFound
	// when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
