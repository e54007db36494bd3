package auth

import (
	"fmt"
	"time"

	"ml-league-backend/internal/database/models"
	apperrors "ml-league-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "ml-league-backend"

// Service issues and validates signed bearer tokens. The signing secret and
// token lifetime come from the injected Config and never change at runtime.
type Service struct {
	config *Config
}

// Claims represents the JWT token claims. Subject carries the user handle.
type Claims struct {
	IsAdmin bool `json:"is_admin"`
	jwt.RegisteredClaims
}

// NewService creates a new token service
func NewService(config *Config) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	return &Service{config: config}, nil
}

// TTL returns the configured token lifetime
func (s *Service) TTL() time.Duration {
	return time.Duration(s.config.TokenTTLMinutes) * time.Minute
}

// IssueToken creates a signed HS256 token for the user
func (s *Service) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   user.Handle,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateToken verifies the signature and expiry of a token and returns its
// claims. The signature check is unconditional and precedes any claim use;
// structurally malformed, mis-signed, and expired tokens all fail with
// ErrInvalidToken.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
