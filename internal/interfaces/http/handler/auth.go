package handler

import (
	"github.com/gin-gonic/gin"
	authapp "github.com/ssteiger/lieferschein-hitscher/internal/application/auth"
	"github.com/ssteiger/lieferschein-hitscher/internal/infrastructure/auth"
	"github.com/ssteiger/lieferschein-hitscher/internal/interfaces/http/dto"
	"github.com/ssteiger/lieferschein-hitscher/internal/interfaces/http/router"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *authapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *authapp.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=1,max=200"`
}

// RefreshRequest represents the token refresh request body
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenPairResponse represents an issued token pair
type TokenPairResponse struct {
	AccessToken           string `json:"access_token"`
	RefreshToken          string `json:"refresh_token"`
	AccessTokenExpiresAt  int64  `json:"access_token_expires_at"`
	RefreshTokenExpiresAt int64  `json:"refresh_token_expires_at"`
	TokenType             string `json:"token_type"`
}

func toTokenPairResponse(pair *auth.TokenPair) TokenPairResponse {
	return TokenPairResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt.Unix(),
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt.Unix(),
		TokenType:             pair.TokenType,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ErrorWithCode(c, dto.ErrCodeInvalidJSON, dto.BindingErrorMessage(err))
		return
	}

	pair, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		h.Unauthorized(c, "Invalid credentials")
		return
	}

	h.Success(c, toTokenPairResponse(pair))
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ErrorWithCode(c, dto.ErrCodeInvalidJSON, dto.BindingErrorMessage(err))
		return
	}

	pair, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		h.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	h.Success(c, toTokenPairResponse(pair))
}

// AuthRoutes creates the route group for authentication endpoints
func AuthRoutes(handler *AuthHandler) *router.DomainGroup {
	group := router.NewDomainGroup("auth", "/auth")

	group.POST("/login", handler.Login)
	group.POST("/refresh", handler.Refresh)

	return group
}
