package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	noteapp "github.com/ssteiger/lieferschein-hitscher/internal/application/deliverynote"
	settingsapp "github.com/ssteiger/lieferschein-hitscher/internal/application/settings"
	"github.com/ssteiger/lieferschein-hitscher/internal/domain/deliverynote"
	"github.com/ssteiger/lieferschein-hitscher/internal/domain/shared"
	"github.com/ssteiger/lieferschein-hitscher/internal/infrastructure/printing"
	"github.com/ssteiger/lieferschein-hitscher/internal/interfaces/http/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDeliveryNoteRepository is a mock implementation of deliverynote.DeliveryNoteRepository
type MockDeliveryNoteRepository struct {
	mock.Mock
}

func (m *MockDeliveryNoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*deliverynote.DeliveryNote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*deliverynote.DeliveryNote), args.Error(1)
}

func (m *MockDeliveryNoteRepository) FindAll(ctx context.Context, limit int) ([]deliverynote.DeliveryNoteSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]deliverynote.DeliveryNoteSummary), args.Error(1)
}

func (m *MockDeliveryNoteRepository) Create(ctx context.Context, note *deliverynote.DeliveryNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockDeliveryNoteRepository) Update(ctx context.Context, note *deliverynote.DeliveryNote) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockDeliveryNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSettingsRepository is a mock implementation of settings.Repository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context, key string) (json.RawMessage, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockSettingsRepository) GetAll(ctx context.Context) (map[string]json.RawMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]json.RawMessage), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// MockPDFRenderer is a mock implementation of printing.PDFRenderer
type MockPDFRenderer struct {
	mock.Mock
}

func (m *MockPDFRenderer) Render(ctx context.Context, req *printing.RenderRequest) (*printing.RenderResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*printing.RenderResult), args.Error(1)
}

func (m *MockPDFRenderer) Close() error {
	args := m.Called()
	return args.Error(0)
}

func noopAuth() gin.HandlerFunc {
	return func(c *gin.Context) { c.Next() }
}

func setupDeliveryNoteRouter(t *testing.T) (*gin.Engine, *MockDeliveryNoteRepository, *MockSettingsRepository, *MockPDFRenderer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mockNotes := new(MockDeliveryNoteRepository)
	mockSettings := new(MockSettingsRepository)
	mockPDF := new(MockPDFRenderer)

	noteService := noteapp.NewDeliveryNoteService(mockNotes)
	documentService := noteapp.NewDocumentService(
		mockNotes,
		settingsapp.NewSettingsService(mockSettings),
		printing.NewDocumentRenderer(),
		mockPDF,
		printing.NewAssetInliner(),
		nil,
	)

	engine := gin.New()
	r := router.NewRouter(engine)
	r.Register(DeliveryNoteRoutes(NewDeliveryNoteHandler(noteService, documentService), noopAuth()))
	r.Setup()

	return engine, mockNotes, mockSettings, mockPDF
}

func storedHandlerTestNote(t *testing.T) *deliverynote.DeliveryNote {
	t.Helper()
	note, err := deliverynote.NewDeliveryNote("2026-001", "356585",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "",
		[]deliverynote.DeliveryNoteItem{
			{ArticleName: "Viola F1 WP T9", Quantities: []int64{5, 0, 0, 0, 0, 0}, UnitPriceCents: 150},
		})
	require.NoError(t, err)
	return note
}

func expectDefaultSettings(mockSettings *MockSettingsRepository) {
	mockSettings.On("Get", mock.Anything, "supplier_info").Return(nil, shared.ErrNotFound)
	mockSettings.On("Get", mock.Anything, "recipient_info").Return(nil, shared.ErrNotFound)
}

func TestDeliveryNoteHandler_Create(t *testing.T) {
	t.Run("creates a note and returns 201", func(t *testing.T) {
		engine, mockNotes, _, _ := setupDeliveryNoteRouter(t)
		mockNotes.On("Create", mock.Anything, mock.AnythingOfType("*deliverynote.DeliveryNote")).Return(nil)

		body := `{
			"lieferschein_nr": "2026-001",
			"bestellnummer": "356585",
			"delivery_date": "2026-03-01",
			"items": [
				{"article_name": "Viola F1 WP T9", "quantities": [5,0,0,0,0,0], "unit_price": "1,50"}
			]
		}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/delivery-notes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp struct {
			Success bool                         `json:"success"`
			Data    noteapp.DeliveryNoteResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "2026-001", resp.Data.LieferscheinNr)
		assert.Equal(t, []string{"35", "65", "85", "", "", ""}, resp.Data.OrderNumberChunks)
		require.Len(t, resp.Data.Items, 1)
		assert.Equal(t, int64(150), resp.Data.Items[0].UnitPriceCents)
		mockNotes.AssertExpectations(t)
	})

	t.Run("rejects a body that is not JSON", func(t *testing.T) {
		engine, mockNotes, _, _ := setupDeliveryNoteRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/delivery-notes", bytes.NewBufferString("kein json"))
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_INVALID_JSON")
		mockNotes.AssertNotCalled(t, "Create")
	})

	t.Run("rejects a malformed delivery date", func(t *testing.T) {
		engine, mockNotes, _, _ := setupDeliveryNoteRouter(t)

		body := `{"delivery_date": "morgen"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/delivery-notes", bytes.NewBufferString(body))
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_INVALID_INPUT")
		mockNotes.AssertNotCalled(t, "Create")
	})
}

func TestDeliveryNoteHandler_GetByID(t *testing.T) {
	t.Run("returns the note", func(t *testing.T) {
		engine, mockNotes, _, _ := setupDeliveryNoteRouter(t)
		note := storedHandlerTestNote(t)
		mockNotes.On("FindByID", mock.Anything, note.ID).Return(note, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/delivery-notes/"+note.ID.String(), nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Viola F1 WP T9")
	})

	t.Run("returns 404 for unknown ids", func(t *testing.T) {
		engine, mockNotes, _, _ := setupDeliveryNoteRouter(t)
		id := uuid.New()
		mockNotes.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/delivery-notes/"+id.String(), nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_NOT_FOUND")
	})

	t.Run("rejects a non-uuid id", func(t *testing.T) {
		engine, _, _, _ := setupDeliveryNoteRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/delivery-notes/nicht-uuid", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_VALIDATION")
	})
}

func TestDeliveryNoteHandler_List(t *testing.T) {
	engine, mockNotes, _, _ := setupDeliveryNoteRouter(t)
	summaries := []deliverynote.DeliveryNoteSummary{
		{ID: uuid.New(), LieferscheinNr: "2026-002", DeliveryDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), LieferscheinNr: "2026-001", DeliveryDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
	mockNotes.On("FindAll", mock.Anything, 10).Return(summaries, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/delivery-notes?limit=10", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2026-002")
	assert.Contains(t, w.Body.String(), "2026-001")
}

func TestDeliveryNoteHandler_Update(t *testing.T) {
	t.Run("replaces header and items", func(t *testing.T) {
		engine, mockNotes, _, _ := setupDeliveryNoteRouter(t)
		note := storedHandlerTestNote(t)
		mockNotes.On("FindByID", mock.Anything, note.ID).Return(note, nil)
		mockNotes.On("Update", mock.Anything, note).Return(nil)

		body := `{
			"lieferschein_nr": "2026-001b",
			"bestellnummer": "99",
			"delivery_date": "2026-03-05",
			"items": []
		}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/delivery-notes/"+note.ID.String(), bytes.NewBufferString(body))
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "2026-001b")
		mockNotes.AssertExpectations(t)
	})

	t.Run("returns 404 without creating for unknown ids", func(t *testing.T) {
		engine, mockNotes, _, _ := setupDeliveryNoteRouter(t)
		id := uuid.New()
		mockNotes.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)

		body := `{"delivery_date": "2026-03-05", "items": []}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/delivery-notes/"+id.String(), bytes.NewBufferString(body))
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockNotes.AssertNotCalled(t, "Update")
		mockNotes.AssertNotCalled(t, "Create")
	})
}

func TestDeliveryNoteHandler_Delete(t *testing.T) {
	engine, mockNotes, _, _ := setupDeliveryNoteRouter(t)
	id := uuid.New()
	mockNotes.On("Delete", mock.Anything, id).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/delivery-notes/"+id.String(), nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockNotes.AssertExpectations(t)
}

func TestDeliveryNoteHandler_GetDocument(t *testing.T) {
	engine, mockNotes, mockSettings, _ := setupDeliveryNoteRouter(t)
	note := storedHandlerTestNote(t)
	mockNotes.On("FindByID", mock.Anything, note.ID).Return(note, nil)
	expectDefaultSettings(mockSettings)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/delivery-notes/"+note.ID.String()+"/document", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "Ralf Hitscher")
	assert.Contains(t, w.Body.String(), "Pflanzenpass: DE-HH1-110071")
}

func TestDeliveryNoteHandler_GetPDF(t *testing.T) {
	t.Run("streams the PDF as a download", func(t *testing.T) {
		engine, mockNotes, mockSettings, mockPDF := setupDeliveryNoteRouter(t)
		note := storedHandlerTestNote(t)
		mockNotes.On("FindByID", mock.Anything, note.ID).Return(note, nil)
		expectDefaultSettings(mockSettings)
		mockPDF.On("Render", mock.Anything, mock.Anything).
			Return(&printing.RenderResult{PDFData: []byte("%PDF-1.4"), PageCount: 1}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/delivery-notes/"+note.ID.String()+"/pdf", nil)
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="Lieferschein-2026-001.pdf"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "%PDF-1.4", w.Body.String())
	})

	t.Run("maps renderer failures to a render error", func(t *testing.T) {
		engine, mockNotes, mockSettings, mockPDF := setupDeliveryNoteRouter(t)
		note := storedHandlerTestNote(t)
		mockNotes.On("FindByID", mock.Anything, note.ID).Return(note, nil)
		expectDefaultSettings(mockSettings)
		mockPDF.On("Render", mock.Anything, mock.Anything).
			Return(nil, printing.NewRenderError(printing.ErrCodeRenderTimeout, "PDF rendering timed out", nil))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/delivery-notes/"+note.ID.String()+"/pdf", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_RENDER_FAILED")
	})
}
