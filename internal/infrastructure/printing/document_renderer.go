package printing

import (
	_ "embed"

	"github.com/ssteiger/lieferschein-hitscher/internal/domain/deliverynote"
)

//go:embed templates/delivery_note.html
var deliveryNoteTemplate string

// DocumentRenderer turns a delivery note document layout into standalone
// HTML. The same HTML feeds both the browser preview response and the PDF
// renderer, so layout decisions never diverge between the two targets.
type DocumentRenderer struct {
	engine *TemplateEngine
}

// NewDocumentRenderer creates a document renderer with its own template engine
func NewDocumentRenderer() *DocumentRenderer {
	return &DocumentRenderer{engine: NewTemplateEngine()}
}

// RenderHTML renders the layout to a complete HTML document
func (r *DocumentRenderer) RenderHTML(layout deliverynote.DocumentLayout) (string, error) {
	return r.engine.RenderString("delivery_note", deliveryNoteTemplate, layout)
}
