package service

import (
	"errors"
	"fmt"
	"strings"

	"ml-league-backend/internal/auth"
	"ml-league-backend/internal/database/models"
	apperrors "ml-league-backend/internal/errors"
	"ml-league-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService handles signup, login, and identity resolution
type AuthService struct {
	users     repository.UserRepositoryInterface
	tokens    *auth.Service
	validator *validator.Validate
}

// NewAuthService creates a new auth service
func NewAuthService(users repository.UserRepositoryInterface, tokens *auth.Service, validator *validator.Validate) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		validator: validator,
	}
}

// SignupRequest represents the data needed to register a user
type SignupRequest struct {
	Handle   string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

// LoginRequest represents the data needed to log in
type LoginRequest struct {
	Handle   string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a freshly issued bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	IsAdmin     bool   `json:"is_admin"`
}

// IdentityResponse represents the authenticated identity
type IdentityResponse struct {
	Handle  string     `json:"username"`
	IsAdmin bool       `json:"is_admin"`
	TeamID  *uuid.UUID `json:"team_id,omitempty"`
}

// Signup registers a new user and returns a bearer token for it
func (s *AuthService) Signup(req *SignupRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	handle := strings.TrimSpace(req.Handle)

	// Check if the handle is already taken
	if existing, err := s.users.GetByHandle(handle); err == nil && existing != nil {
		return nil, apperrors.ErrHandleTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Handle:       handle,
		PasswordHash: hash,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issueToken(user)
}

// Login verifies credentials and returns a bearer token. Unknown handles and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(req *LoginRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.users.GetByHandle(strings.TrimSpace(req.Handle))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// Me returns the identity view of an already resolved user
func (s *AuthService) Me(user *models.User) *IdentityResponse {
	return &IdentityResponse{
		Handle:  user.Handle,
		IsAdmin: user.IsAdmin,
		TeamID:  user.TeamID,
	}
}

func (s *AuthService) issueToken(user *models.User) (*TokenResponse, error) {
	token, err := s.tokens.IssueToken(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		IsAdmin:     user.IsAdmin,
	}, nil
}
