package deliverynote

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/ssteiger/lieferschein-hitscher/internal/application/settings"
	"github.com/ssteiger/lieferschein-hitscher/internal/domain/deliverynote"
	"github.com/ssteiger/lieferschein-hitscher/internal/infrastructure/printing"
	"go.uber.org/zap"
)

// DocumentResult is a rendered printable HTML document
type DocumentResult struct {
	HTML     string
	FileName string
}

// PDFResult is a rendered PDF download
type PDFResult struct {
	Data      []byte
	FileName  string
	PageCount int
}

// DocumentService renders delivery notes into printable HTML and PDF.
// Both targets flow through the same DocumentLayout value, so the print
// view and the download can never disagree about the page.
type DocumentService struct {
	noteRepo deliverynote.DeliveryNoteRepository
	settings *settings.SettingsService
	markup   *printing.DocumentRenderer
	pdf      printing.PDFRenderer
	inliner  *printing.AssetInliner
	logger   *zap.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	noteRepo deliverynote.DeliveryNoteRepository,
	settingsService *settings.SettingsService,
	markup *printing.DocumentRenderer,
	pdf printing.PDFRenderer,
	inliner *printing.AssetInliner,
	logger *zap.Logger,
) *DocumentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentService{
		noteRepo: noteRepo,
		settings: settingsService,
		markup:   markup,
		pdf:      pdf,
		inliner:  inliner,
		logger:   logger,
	}
}

// buildLayout loads the note and address settings and derives the layout
func (s *DocumentService) buildLayout(ctx context.Context, id uuid.UUID) (deliverynote.DocumentLayout, error) {
	var layout deliverynote.DocumentLayout

	note, err := s.noteRepo.FindByID(ctx, id)
	if err != nil {
		return layout, err
	}

	supplierInfo, err := s.settings.GetSupplierInfo(ctx)
	if err != nil {
		return layout, err
	}
	recipientInfo, err := s.settings.GetRecipientInfo(ctx)
	if err != nil {
		return layout, err
	}

	logoDataURL, err := s.inliner.InlineImage(ctx, recipientInfo.LogoURL)
	if err != nil {
		s.logger.Error("logo asset fetch failed",
			zap.String("logo_url", recipientInfo.LogoURL),
			zap.Error(err))
		return layout, err
	}

	supplier := deliverynote.SupplierParty{
		Name:         supplierInfo.Name,
		Street:       supplierInfo.Street,
		City:         supplierInfo.City,
		Pflanzenpass: supplierInfo.Pflanzenpass,
	}
	recipient := deliverynote.RecipientParty{
		Company:     recipientInfo.Company,
		Street:      recipientInfo.Street,
		City:        recipientInfo.City,
		LogoDataURL: logoDataURL,
	}

	return deliverynote.BuildLayout(note, supplier, recipient), nil
}

// RenderDocument renders the printable HTML view of a delivery note
func (s *DocumentService) RenderDocument(ctx context.Context, id uuid.UUID) (*DocumentResult, error) {
	layout, err := s.buildLayout(ctx, id)
	if err != nil {
		return nil, err
	}

	html, err := s.markup.RenderHTML(layout)
	if err != nil {
		return nil, err
	}

	return &DocumentResult{
		HTML:     html,
		FileName: layout.FileName,
	}, nil
}

// RenderPDF renders the A4 PDF download of a delivery note
func (s *DocumentService) RenderPDF(ctx context.Context, id uuid.UUID) (*PDFResult, error) {
	layout, err := s.buildLayout(ctx, id)
	if err != nil {
		return nil, err
	}

	html, err := s.markup.RenderHTML(layout)
	if err != nil {
		return nil, err
	}

	result, err := s.pdf.Render(ctx, &printing.RenderRequest{
		HTML:        html,
		PaperSize:   printing.PaperSizeA4,
		Orientation: printing.OrientationPortrait,
		Margins:     printing.UniformMargins(10),
		Title:       strings.TrimSuffix(layout.FileName, ".pdf"),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("delivery note PDF rendered",
		zap.String("delivery_note_id", id.String()),
		zap.String("file_name", layout.FileName),
		zap.Int("pages", result.PageCount),
		zap.Duration("duration", result.RenderDuration))

	return &PDFResult{
		Data:      result.PDFData,
		FileName:  layout.FileName,
		PageCount: result.PageCount,
	}, nil
}
