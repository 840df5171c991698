package deliverynote

import (
	"time"

	"github.com/google/uuid"
	"github.com/ssteiger/lieferschein-hitscher/internal/domain/deliverynote"
	"github.com/ssteiger/lieferschein-hitscher/internal/domain/shared"
)

// dateLayout is the wire format for delivery dates
const dateLayout = "2006-01-02"

// ==================== Request DTOs ====================

// DeliveryNoteItemInput represents a line item in create/update requests.
// UnitPrice arrives as the German form input string ("1,50"); malformed
// values parse to zero cents.
type DeliveryNoteItemInput struct {
	ArticleName string  `json:"article_name"`
	Quantities  []int64 `json:"quantities"`
	UnitPrice   string  `json:"unit_price"`
}

// CreateDeliveryNoteRequest represents a request to create a delivery note
type CreateDeliveryNoteRequest struct {
	LieferscheinNr string                  `json:"lieferschein_nr" binding:"max=50"`
	Bestellnummer  string                  `json:"bestellnummer" binding:"max=50"`
	DeliveryDate   string                  `json:"delivery_date" binding:"required"`
	Notes          string                  `json:"notes" binding:"max=2000"`
	Items          []DeliveryNoteItemInput `json:"items"`
}

// UpdateDeliveryNoteRequest represents a request to update a delivery note.
// The item list always replaces the stored set in full.
type UpdateDeliveryNoteRequest struct {
	LieferscheinNr string                  `json:"lieferschein_nr" binding:"max=50"`
	Bestellnummer  string                  `json:"bestellnummer" binding:"max=50"`
	DeliveryDate   string                  `json:"delivery_date" binding:"required"`
	Notes          string                  `json:"notes" binding:"max=2000"`
	Items          []DeliveryNoteItemInput `json:"items"`
}

// ListFilter represents filter options for the delivery note list
type ListFilter struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// ==================== Response DTOs ====================

// DeliveryNoteItemResponse represents a line item in API responses
type DeliveryNoteItemResponse struct {
	ArticleName      string  `json:"article_name"`
	Quantities       []int64 `json:"quantities"`
	UnitPriceCents   int64   `json:"unit_price_cents"`
	UnitPrice        string  `json:"unit_price"`
	UnitPriceDisplay string  `json:"unit_price_display"`
	SortOrder        int     `json:"sort_order"`
}

// DeliveryNoteResponse represents a full delivery note in API responses
type DeliveryNoteResponse struct {
	ID                uuid.UUID                  `json:"id"`
	LieferscheinNr    string                     `json:"lieferschein_nr"`
	Bestellnummer     string                     `json:"bestellnummer"`
	OrderNumberChunks []string                   `json:"order_number_chunks"`
	DeliveryDate      string                     `json:"delivery_date"`
	Notes             string                     `json:"notes"`
	Items             []DeliveryNoteItemResponse `json:"items"`
	CreatedAt         time.Time                  `json:"created_at"`
	UpdatedAt         time.Time                  `json:"updated_at"`
}

// DeliveryNoteSummaryResponse represents a delivery note in list responses
type DeliveryNoteSummaryResponse struct {
	ID             uuid.UUID `json:"id"`
	LieferscheinNr string    `json:"lieferschein_nr"`
	Bestellnummer  string    `json:"bestellnummer"`
	DeliveryDate   string    `json:"delivery_date"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ==================== Conversions ====================

// parseDeliveryDate parses the wire date, accepting RFC3339 timestamps as
// a fallback for clients that send full timestamps.
func parseDeliveryDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, shared.NewDomainError("INVALID_INPUT", "Delivery date must be a YYYY-MM-DD date")
}

// toDomainItems converts item inputs to domain values, parsing the price
// strings with the coercing cent parser.
func toDomainItems(inputs []DeliveryNoteItemInput) []deliverynote.DeliveryNoteItem {
	items := make([]deliverynote.DeliveryNoteItem, len(inputs))
	for i, input := range inputs {
		items[i] = deliverynote.DeliveryNoteItem{
			ArticleName:    input.ArticleName,
			Quantities:     input.Quantities,
			UnitPriceCents: deliverynote.ParseCentsFromInput(input.UnitPrice),
		}
	}
	return items
}

// ToDeliveryNoteResponse converts a domain delivery note to a response DTO
func ToDeliveryNoteResponse(note *deliverynote.DeliveryNote) DeliveryNoteResponse {
	items := make([]DeliveryNoteItemResponse, len(note.Items))
	for i, item := range note.Items {
		items[i] = DeliveryNoteItemResponse{
			ArticleName:      item.ArticleName,
			Quantities:       item.Quantities,
			UnitPriceCents:   item.UnitPriceCents,
			UnitPrice:        deliverynote.FormatCentsForInput(item.UnitPriceCents),
			UnitPriceDisplay: deliverynote.FormatCentsForDisplay(item.UnitPriceCents),
			SortOrder:        item.SortOrder,
		}
	}

	return DeliveryNoteResponse{
		ID:                note.ID,
		LieferscheinNr:    note.LieferscheinNr,
		Bestellnummer:     note.Bestellnummer,
		OrderNumberChunks: note.OrderNumberChunks(),
		DeliveryDate:      note.DeliveryDate.Format(dateLayout),
		Notes:             note.Notes,
		Items:             items,
		CreatedAt:         note.CreatedAt,
		UpdatedAt:         note.UpdatedAt,
	}
}

// ToDeliveryNoteSummaryResponse converts a repository summary to a list DTO
func ToDeliveryNoteSummaryResponse(summary deliverynote.DeliveryNoteSummary) DeliveryNoteSummaryResponse {
	return DeliveryNoteSummaryResponse{
		ID:             summary.ID,
		LieferscheinNr: summary.LieferscheinNr,
		Bestellnummer:  summary.Bestellnummer,
		DeliveryDate:   summary.DeliveryDate.Format(dateLayout),
		Notes:          summary.Notes,
		CreatedAt:      summary.CreatedAt,
		UpdatedAt:      summary.UpdatedAt,
	}
}
