package deliverynote

import (
	"context"

	"github.com/google/uuid"
	"github.com/ssteiger/lieferschein-hitscher/internal/domain/deliverynote"
)

// DeliveryNoteService handles delivery note business operations
type DeliveryNoteService struct {
	noteRepo deliverynote.DeliveryNoteRepository
}

// NewDeliveryNoteService creates a new DeliveryNoteService
func NewDeliveryNoteService(noteRepo deliverynote.DeliveryNoteRepository) *DeliveryNoteService {
	return &DeliveryNoteService{
		noteRepo: noteRepo,
	}
}

// Create creates a new delivery note
func (s *DeliveryNoteService) Create(ctx context.Context, req CreateDeliveryNoteRequest) (*DeliveryNoteResponse, error) {
	deliveryDate, err := parseDeliveryDate(req.DeliveryDate)
	if err != nil {
		return nil, err
	}

	note, err := deliverynote.NewDeliveryNote(
		req.LieferscheinNr,
		req.Bestellnummer,
		deliveryDate,
		req.Notes,
		toDomainItems(req.Items),
	)
	if err != nil {
		return nil, err
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	response := ToDeliveryNoteResponse(note)
	return &response, nil
}

// GetByID retrieves a delivery note with its items in sort order
func (s *DeliveryNoteService) GetByID(ctx context.Context, id uuid.UUID) (*DeliveryNoteResponse, error) {
	note, err := s.noteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToDeliveryNoteResponse(note)
	return &response, nil
}

// List retrieves delivery note summaries, newest first
func (s *DeliveryNoteService) List(ctx context.Context, filter ListFilter) ([]DeliveryNoteSummaryResponse, error) {
	summaries, err := s.noteRepo.FindAll(ctx, filter.Limit)
	if err != nil {
		return nil, err
	}

	responses := make([]DeliveryNoteSummaryResponse, len(summaries))
	for i, summary := range summaries {
		responses[i] = ToDeliveryNoteSummaryResponse(summary)
	}
	return responses, nil
}

// Update replaces the header fields and the full item set of an existing
// note. Unknown ids are an error; updates never create records.
func (s *DeliveryNoteService) Update(ctx context.Context, id uuid.UUID, req UpdateDeliveryNoteRequest) (*DeliveryNoteResponse, error) {
	deliveryDate, err := parseDeliveryDate(req.DeliveryDate)
	if err != nil {
		return nil, err
	}

	note, err := s.noteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := note.UpdateDetails(req.LieferscheinNr, req.Bestellnummer, deliveryDate, req.Notes); err != nil {
		return nil, err
	}
	if err := note.ReplaceItems(toDomainItems(req.Items)); err != nil {
		return nil, err
	}

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}

	response := ToDeliveryNoteResponse(note)
	return &response, nil
}

// Delete removes a delivery note and its items
func (s *DeliveryNoteService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.noteRepo.Delete(ctx, id)
}
