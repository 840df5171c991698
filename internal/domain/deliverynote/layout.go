package deliverynote

import "fmt"

// MinTableRows is the minimum number of visible rows in the item table.
// Short notes are padded with blank rows so the printed grid keeps its
// familiar full-page shape.
const MinTableRows = 15

// dateLayout is the German display format (DD.MM.YYYY).
const dateLayout = "02.01.2006"

// SupplierParty holds the supplier address block data, sourced from the
// settings store.
type SupplierParty struct {
	Name         string
	Street       string
	City         string
	Pflanzenpass string
}

// RecipientParty holds the recipient address block data, sourced from the
// settings store.
type RecipientParty struct {
	Company string
	Street  string
	City    string
	// LogoDataURL is an inlined data URL shown next to the address,
	// empty when no logo is configured or the asset could not be fetched.
	LogoDataURL string
}

// AddressBlock is a bordered box with a bold centered heading and address
// lines beneath it.
type AddressBlock struct {
	Heading string
	Lines   []string
	// FooterLine renders in small print below the address (the
	// Pflanzenpass number on the supplier block).
	FooterLine string
	// LogoDataURL renders right-aligned next to the lines when set.
	LogoDataURL string
}

// TableRow is one body row of the item table. Quantities and UnitPrice are
// pre-formatted strings; zero values render as empty cells, never as "0".
type TableRow struct {
	ArticleName string
	Quantities  []string
	UnitPrice   string
}

// ItemTable is the item grid with its two fixed header rows.
type ItemTable struct {
	// ChunkHeaders are the six Bestellnummer segments heading the
	// quantity columns. Empty segments render as empty header cells.
	ChunkHeaders []string
	Rows         []TableRow
	// PaddingRows is the number of blank rows appended after Rows to
	// reach the minimum visible row count.
	PaddingRows int
}

// DocumentLayout is the complete render-ready model of one delivery note
// document. Both the HTML and the PDF renderer consume this value and
// nothing else; neither derives layout facts from the aggregate directly.
type DocumentLayout struct {
	Recipient AddressBlock
	Supplier  AddressBlock

	// LieferscheinNr is empty when no number was assigned; the renderers
	// show an underlined blank in that case.
	LieferscheinNr string
	// DateLabel is the fixed "Hamburg, den" prefix of the date box.
	DateLabel string
	// DateText is the delivery date as DD.MM.YYYY.
	DateText string

	Table ItemTable

	// NotesLine is an optional free-text line below the table, empty when
	// the note carries no notes.
	NotesLine string

	// FileName is the suggested download name for the PDF rendition.
	FileName string
}

// BuildLayout derives the render-ready document model from a delivery note
// and the configured address blocks. It is a pure function; all formatting
// decisions for both render targets live here.
func BuildLayout(note *DeliveryNote, supplier SupplierParty, recipient RecipientParty) DocumentLayout {
	dateText := note.DeliveryDate.Format(dateLayout)

	rows := make([]TableRow, 0, len(note.Items))
	for _, item := range note.Items {
		quantities := make([]string, QuantitySlots)
		for i, q := range NormalizeQuantities(item.Quantities) {
			if q > 0 {
				quantities[i] = fmt.Sprintf("%d", q)
			}
		}
		rows = append(rows, TableRow{
			ArticleName: item.ArticleName,
			Quantities:  quantities,
			UnitPrice:   FormatCentsForInput(item.UnitPriceCents),
		})
	}

	padding := 0
	if len(rows) < MinTableRows {
		padding = MinTableRows - len(rows)
	}

	fileName := "Lieferschein-" + dateText + ".pdf"
	if note.LieferscheinNr != "" {
		fileName = "Lieferschein-" + note.LieferscheinNr + ".pdf"
	}

	return DocumentLayout{
		Recipient: AddressBlock{
			Heading:     "Warenempfänger:",
			Lines:       []string{recipient.Company, recipient.Street, recipient.City},
			LogoDataURL: recipient.LogoDataURL,
		},
		Supplier: AddressBlock{
			Heading:    "Lieferant:",
			Lines:      []string{supplier.Name, supplier.Street, supplier.City},
			FooterLine: "Pflanzenpass: " + supplier.Pflanzenpass,
		},
		LieferscheinNr: note.LieferscheinNr,
		DateLabel:      "Hamburg, den",
		DateText:       dateText,
		Table: ItemTable{
			ChunkHeaders: note.OrderNumberChunks(),
			Rows:         rows,
			PaddingRows:  padding,
		},
		NotesLine: note.Notes,
		FileName:  fileName,
	}
}
