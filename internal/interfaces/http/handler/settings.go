package handler

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	settingsapp "github.com/ssteiger/lieferschein-hitscher/internal/application/settings"
	"github.com/ssteiger/lieferschein-hitscher/internal/interfaces/http/dto"
	"github.com/ssteiger/lieferschein-hitscher/internal/interfaces/http/router"
)

// SettingsHandler handles application settings endpoints
type SettingsHandler struct {
	BaseHandler
	settingsService *settingsapp.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService *settingsapp.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
	}
}

// GetAll handles GET /settings
func (h *SettingsHandler) GetAll(c *gin.Context) {
	all, err := h.settingsService.GetAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, all)
}

// Get handles GET /settings/:key
func (h *SettingsHandler) Get(c *gin.Context) {
	value, err := h.settingsService.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, value)
}

// Put handles PUT /settings/:key. The body is the raw JSON document for
// the key; its shape is validated against the key before storing.
func (h *SettingsHandler) Put(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		h.ErrorWithCode(c, dto.ErrCodeInvalidJSON, "Request body must be a JSON document")
		return
	}

	key := c.Param("key")
	if err := h.settingsService.Put(c.Request.Context(), key, json.RawMessage(body)); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"key": key})
}

// SettingsRoutes creates the route group for settings endpoints
func SettingsRoutes(handler *SettingsHandler, authMiddleware gin.HandlerFunc) *router.DomainGroup {
	group := router.NewDomainGroup("settings", "/settings")
	group.Use(authMiddleware)

	group.GET("", handler.GetAll)
	group.GET("/:key", handler.Get)
	group.PUT("/:key", handler.Put)

	return group
}
