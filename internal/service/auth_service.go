package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"quiz-zone/internal/config"
	"quiz-zone/internal/domain"
	"quiz-zone/internal/dto"
	"quiz-zone/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminRole    = "admin"
	adminSubject = "admin"
)

var ErrInvalidSessionToken = errors.New("invalid session token")

// AuthService issues and checks admin session tokens.
type AuthService interface {
	// Login checks the password and returns a signed session token.
	Login(ctx context.Context, password string) (string, error)
	ValidateSession(ctx context.Context, token string) (*dto.AdminClaims, error)
	SessionTTL() time.Duration
}

type authServiceImpl struct {
	cfg config.AdminConfig
	now domain.Clock
}

// NewAuthService requires a session secret and either a password or a bcrypt hash.
func NewAuthService(cfg config.AdminConfig, now domain.Clock) (AuthService, error) {
	if cfg.SessionSecret == "" {
		return nil, errors.New("admin session secret is not configured")
	}
	if cfg.Password == "" && cfg.PasswordHash == "" {
		return nil, errors.New("admin password is not configured")
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 7 * 24 * time.Hour
	}
	if now == nil {
		now = time.Now
	}
	return &authServiceImpl{cfg: cfg, now: now}, nil
}

func (s *authServiceImpl) SessionTTL() time.Duration {
	return s.cfg.SessionTTL
}

func (s *authServiceImpl) Login(ctx context.Context, password string) (string, error) {
	if !s.checkPassword(password) {
		logger.Get().Warn("Admin login rejected")
		return "", domain.NewUnauthorizedError("Invalid password")
	}

	now := s.now()
	claims := dto.AdminClaims{
		Role: adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.SessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   adminSubject,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.SessionSecret))
	if err != nil {
		return "", domain.NewInternalError("Failed to sign session token", err)
	}
	return signed, nil
}

func (s *authServiceImpl) checkPassword(password string) bool {
	if s.cfg.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.cfg.PasswordHash), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Password)) == 1
}

func (s *authServiceImpl) ValidateSession(ctx context.Context, tokenString string) (*dto.AdminClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidSessionToken
	}
	token, err := jwt.ParseWithClaims(tokenString, &dto.AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SessionSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Get().Info("Admin session expired")
		} else {
			logger.Get().Warn("Admin session validation failed", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}

	claims, ok := token.Claims.(*dto.AdminClaims)
	if !ok || !token.Valid || claims.Role != adminRole {
		return nil, ErrInvalidSessionToken
	}
	return claims, nil
}
