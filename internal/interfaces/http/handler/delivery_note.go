package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	noteapp "github.com/ssteiger/lieferschein-hitscher/internal/application/deliverynote"
	"github.com/ssteiger/lieferschein-hitscher/internal/interfaces/http/dto"
	"github.com/ssteiger/lieferschein-hitscher/internal/interfaces/http/router"
)

// DeliveryNoteHandler handles delivery note API endpoints
type DeliveryNoteHandler struct {
	BaseHandler
	noteService     *noteapp.DeliveryNoteService
	documentService *noteapp.DocumentService
}

// NewDeliveryNoteHandler creates a new DeliveryNoteHandler
func NewDeliveryNoteHandler(noteService *noteapp.DeliveryNoteService, documentService *noteapp.DocumentService) *DeliveryNoteHandler {
	return &DeliveryNoteHandler{
		noteService:     noteService,
		documentService: documentService,
	}
}

// Create handles POST /delivery-notes
func (h *DeliveryNoteHandler) Create(c *gin.Context) {
	var req noteapp.CreateDeliveryNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ErrorWithCode(c, dto.ErrCodeInvalidJSON, dto.BindingErrorMessage(err))
		return
	}

	resp, err := h.noteService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List handles GET /delivery-notes
func (h *DeliveryNoteHandler) List(c *gin.Context) {
	var filter noteapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.ErrorWithCode(c, dto.ErrCodeValidation, dto.BindingErrorMessage(err))
		return
	}

	resp, err := h.noteService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetByID handles GET /delivery-notes/:id
func (h *DeliveryNoteHandler) GetByID(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	resp, err := h.noteService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update handles PUT /delivery-notes/:id
func (h *DeliveryNoteHandler) Update(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	var req noteapp.UpdateDeliveryNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ErrorWithCode(c, dto.ErrCodeInvalidJSON, dto.BindingErrorMessage(err))
		return
	}

	resp, err := h.noteService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /delivery-notes/:id
func (h *DeliveryNoteHandler) Delete(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	if err := h.noteService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// GetDocument handles GET /delivery-notes/:id/document and returns the
// printable HTML page for the note.
func (h *DeliveryNoteHandler) GetDocument(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	result, err := h.documentService.RenderDocument(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(result.HTML))
}

// GetPDF handles GET /delivery-notes/:id/pdf and streams the rendered PDF
// as a download.
func (h *DeliveryNoteHandler) GetPDF(c *gin.Context) {
	id, ok := h.bindID(c)
	if !ok {
		return
	}

	result, err := h.documentService.RenderPDF(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, "application/pdf", result.Data)
}

func (h *BaseHandler) bindID(c *gin.Context) (uuid.UUID, bool) {
	var req dto.IDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		h.ErrorWithCode(c, dto.ErrCodeValidation, "Invalid id format")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		h.ErrorWithCode(c, dto.ErrCodeValidation, "Invalid id format")
		return uuid.Nil, false
	}
	return id, true
}

// DeliveryNoteRoutes creates the route group for delivery note endpoints
func DeliveryNoteRoutes(handler *DeliveryNoteHandler, authMiddleware gin.HandlerFunc) *router.DomainGroup {
	group := router.NewDomainGroup("delivery-notes", "/delivery-notes")
	group.Use(authMiddleware)

	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.GetByID)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)

	// Rendered output
	group.GET("/:id/document", handler.GetDocument)
	group.GET("/:id/pdf", handler.GetPDF)

	return group
}
