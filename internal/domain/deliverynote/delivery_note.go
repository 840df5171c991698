package deliverynote

import (
	"strings"
	"time"

	"github.com/ssteiger/lieferschein-hitscher/internal/domain/shared"
)

// QuantitySlots is the fixed number of quantity columns per line item.
// Slot k corresponds to Bestellnummer chunk k; slots whose chunk is empty
// stay zero and render blank.
const QuantitySlots = 6

// DeliveryNoteItem is a line item owned by a DeliveryNote. Items are value
// objects; the full set is replaced on every save.
type DeliveryNoteItem struct {
	ArticleName    string
	Quantities     []int64
	UnitPriceCents int64
	SortOrder      int
}

// IsEmpty reports whether the item carries no data worth persisting.
// Such items are silently dropped on save regardless of article name.
func (i DeliveryNoteItem) IsEmpty() bool {
	for _, q := range i.Quantities {
		if q > 0 {
			return false
		}
	}
	return i.UnitPriceCents == 0
}

// NormalizeQuantities pads or truncates a quantity slice to the fixed slot
// count and clamps negative values to zero.
func NormalizeQuantities(quantities []int64) []int64 {
	normalized := make([]int64, QuantitySlots)
	for i := 0; i < QuantitySlots && i < len(quantities); i++ {
		if quantities[i] > 0 {
			normalized[i] = quantities[i]
		}
	}
	return normalized
}

// DeliveryNote is the aggregate root for a Lieferschein. It owns its line
// items; they are never addressed outside the aggregate.
type DeliveryNote struct {
	shared.BaseEntity
	LieferscheinNr string
	Bestellnummer  string
	DeliveryDate   time.Time
	Notes          string
	Items          []DeliveryNoteItem
}

// NewDeliveryNote creates a delivery note, normalizing the Bestellnummer and
// applying the item rules (empty items dropped, dense sort order assigned).
func NewDeliveryNote(lieferscheinNr, bestellnummer string, deliveryDate time.Time, notes string, items []DeliveryNoteItem) (*DeliveryNote, error) {
	note := &DeliveryNote{
		BaseEntity: shared.NewBaseEntity(),
	}
	if err := note.UpdateDetails(lieferscheinNr, bestellnummer, deliveryDate, notes); err != nil {
		return nil, err
	}
	if err := note.ReplaceItems(items); err != nil {
		return nil, err
	}
	return note, nil
}

// UpdateDetails sets the header fields. The Bestellnummer is coerced to
// digits-only, at most twelve characters; the delivery date is mandatory.
func (n *DeliveryNote) UpdateDetails(lieferscheinNr, bestellnummer string, deliveryDate time.Time, notes string) error {
	if deliveryDate.IsZero() {
		return shared.NewDomainError("INVALID_INPUT", "Delivery date is required")
	}
	n.LieferscheinNr = strings.TrimSpace(lieferscheinNr)
	n.Bestellnummer = NormalizeOrderNumber(bestellnummer)
	n.DeliveryDate = deliveryDate
	n.Notes = strings.TrimSpace(notes)
	n.UpdatedAt = time.Now()
	return nil
}

// ReplaceItems swaps the full item set. Quantities are normalized to the
// fixed slot count, items with no quantities and no price are dropped, and
// the survivors get a dense zero-based sort order in the order given.
// An empty result is valid; a note may have no items.
func (n *DeliveryNote) ReplaceItems(items []DeliveryNoteItem) error {
	kept := make([]DeliveryNoteItem, 0, len(items))
	for _, item := range items {
		item.ArticleName = strings.TrimSpace(item.ArticleName)
		item.Quantities = NormalizeQuantities(item.Quantities)
		if item.UnitPriceCents < 0 {
			item.UnitPriceCents = 0
		}
		if item.IsEmpty() {
			continue
		}
		if item.ArticleName == "" {
			return shared.NewDomainError("INVALID_INPUT", "Article name is required for items with quantities or a price")
		}
		item.SortOrder = len(kept)
		kept = append(kept, item)
	}
	n.Items = kept
	n.UpdatedAt = time.Now()
	return nil
}

// OrderNumberChunks returns the six two-digit segments of the Bestellnummer
// used as quantity column headers.
func (n *DeliveryNote) OrderNumberChunks() []string {
	return SplitOrderNumber(n.Bestellnummer)
}
