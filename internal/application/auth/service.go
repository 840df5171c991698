package auth

import (
	"github.com/ssteiger/lieferschein-hitscher/internal/domain/shared"
	"github.com/ssteiger/lieferschein-hitscher/internal/infrastructure/auth"
	"github.com/ssteiger/lieferschein-hitscher/internal/infrastructure/config"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService verifies the single configured account and issues tokens.
// There is no user table; the credentials live in configuration.
type AuthService struct {
	cfg    config.AuthConfig
	jwt    *auth.JWTService
	logger *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(cfg config.AuthConfig, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		cfg:    cfg,
		jwt:    jwtService,
		logger: logger,
	}
}

// Login verifies the credentials against the configured account and
// returns a token pair. Wrong username and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (*auth.TokenPair, error) {
	if username != s.cfg.Username {
		s.logger.Warn("login attempt with unknown username", zap.String("username", username))
		return nil, shared.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("login attempt with wrong password", zap.String("username", username))
		return nil, shared.ErrUnauthorized
	}

	pair, err := s.jwt.GenerateTokenPair(username)
	if err != nil {
		return nil, err
	}

	s.logger.Info("login succeeded", zap.String("username", username))
	return pair, nil
}

// Refresh exchanges a valid refresh token for a fresh token pair
func (s *AuthService) Refresh(refreshToken string) (*auth.TokenPair, error) {
	pair, err := s.jwt.RefreshTokenPair(refreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	return pair, nil
}
