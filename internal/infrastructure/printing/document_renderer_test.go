package printing

import (
	"strings"
	"testing"
	"time"

	"github.com/ssteiger/lieferschein-hitscher/internal/domain/deliverynote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderTestLayout(t *testing.T, note *deliverynote.DeliveryNote) string {
	t.Helper()

	supplier := deliverynote.SupplierParty{
		Name:         "Ralf Hitscher",
		Street:       "Süderquerweg 484",
		City:         "21037 Hamburg",
		Pflanzenpass: "DE-HH1-110071",
	}
	recipient := deliverynote.RecipientParty{
		Company: "Loest Blumengrosshandel e.K.",
		Street:  "Kirchwerder Marschbahndamm 300",
		City:    "21037 Hamburg",
	}

	layout := deliverynote.BuildLayout(note, supplier, recipient)
	html, err := NewDocumentRenderer().RenderHTML(layout)
	require.NoError(t, err)
	return html
}

func TestDocumentRenderer_RenderHTML(t *testing.T) {
	deliveryDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("renders address blocks and passport line", func(t *testing.T) {
		note, err := deliverynote.NewDeliveryNote("2026-001", "356585", deliveryDate, "", nil)
		require.NoError(t, err)

		html := renderTestLayout(t, note)

		assert.Contains(t, html, "Warenempfänger:")
		assert.Contains(t, html, "Lieferant:")
		assert.Contains(t, html, "Loest Blumengrosshandel e.K.")
		assert.Contains(t, html, "Ralf Hitscher")
		assert.Contains(t, html, "Pflanzenpass: DE-HH1-110071")
		assert.Contains(t, html, "Hamburg, den")
		assert.Contains(t, html, "01.03.2026")
	})

	t.Run("renders order number chunks in header", func(t *testing.T) {
		note, err := deliverynote.NewDeliveryNote("2026-001", "356585", deliveryDate, "", nil)
		require.NoError(t, err)

		html := renderTestLayout(t, note)

		assert.Contains(t, html, `<th class="chunk">35</th>`)
		assert.Contains(t, html, `<th class="chunk">65</th>`)
		assert.Contains(t, html, `<th class="chunk">85</th>`)
		assert.Contains(t, html, `<th class="chunk"></th>`)
		assert.Contains(t, html, "Artikel und Topfgröße")
		assert.Contains(t, html, "Stück / VPE")
		assert.Contains(t, html, "Einzelpreis<br>in €")
	})

	t.Run("renders item row with blank zero cells", func(t *testing.T) {
		note, err := deliverynote.NewDeliveryNote("2026-001", "356585", deliveryDate, "", []deliverynote.DeliveryNoteItem{
			{ArticleName: "Viola F1 WP T9", Quantities: []int64{5, 0, 0, 0, 0, 0}, UnitPriceCents: 150},
		})
		require.NoError(t, err)

		html := renderTestLayout(t, note)

		assert.Contains(t, html, "Viola F1 WP T9")
		assert.Contains(t, html, `<td class="qty">5</td>`)
		assert.Contains(t, html, `<td class="price">1,50</td>`)
		assert.NotContains(t, html, `<td class="qty">0</td>`)
	})

	t.Run("pads table to minimum row count", func(t *testing.T) {
		note, err := deliverynote.NewDeliveryNote("2026-001", "356585", deliveryDate, "", []deliverynote.DeliveryNoteItem{
			{ArticleName: "Viola F1 WP T9", Quantities: []int64{5, 0, 0, 0, 0, 0}, UnitPriceCents: 150},
		})
		require.NoError(t, err)

		html := renderTestLayout(t, note)

		assert.Equal(t, 14, strings.Count(html, `<tr class="pad">`))
	})

	t.Run("empty number renders as blank value cell", func(t *testing.T) {
		note, err := deliverynote.NewDeliveryNote("", "", deliveryDate, "", nil)
		require.NoError(t, err)

		html := renderTestLayout(t, note)

		assert.Contains(t, html, "Lieferschein Nr.:")
		assert.Contains(t, html, `<span class="value"></span>`)
	})

	t.Run("notes line renders only when present", func(t *testing.T) {
		withNotes, err := deliverynote.NewDeliveryNote("2026-001", "", deliveryDate, "Anlieferung bis 7 Uhr", nil)
		require.NoError(t, err)
		withoutNotes, err := deliverynote.NewDeliveryNote("2026-001", "", deliveryDate, "", nil)
		require.NoError(t, err)

		assert.Contains(t, renderTestLayout(t, withNotes), "Anlieferung bis 7 Uhr")
		assert.NotContains(t, renderTestLayout(t, withoutNotes), "notes-line")
	})

	t.Run("inlined logo renders in recipient box", func(t *testing.T) {
		note, err := deliverynote.NewDeliveryNote("2026-001", "", deliveryDate, "", nil)
		require.NoError(t, err)

		layout := deliverynote.BuildLayout(note, deliverynote.SupplierParty{}, deliverynote.RecipientParty{
			Company:     "Loest Blumengrosshandel e.K.",
			LogoDataURL: "data:image/jpeg;base64,abc123",
		})
		html, err := NewDocumentRenderer().RenderHTML(layout)
		require.NoError(t, err)

		assert.Contains(t, html, `src="data:image/jpeg;base64,abc123"`)
	})
}
