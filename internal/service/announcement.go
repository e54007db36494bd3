package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ml-league-backend/internal/database/models"
	apperrors "ml-league-backend/internal/errors"
	"ml-league-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnouncementService handles administrator announcements
type AnnouncementService struct {
	announcements repository.AnnouncementRepositoryInterface
	validator     *validator.Validate
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(announcements repository.AnnouncementRepositoryInterface, validator *validator.Validate) *AnnouncementService {
	return &AnnouncementService{
		announcements: announcements,
		validator:     validator,
	}
}

// CreateAnnouncementRequest represents the data needed to post an announcement
type CreateAnnouncementRequest struct {
	Title string `json:"title" validate:"required,max=120"`
	Body  string `json:"body" validate:"required,max=2000"`
}

// AnnouncementResponse represents the response data for an announcement
type AnnouncementResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// List returns all announcements, newest first
func (s *AnnouncementService) List() ([]AnnouncementResponse, error) {
	announcements, err := s.announcements.GetAll()
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}

	responses := make([]AnnouncementResponse, 0, len(announcements))
	for i := range announcements {
		responses = append(responses, *toAnnouncementResponse(&announcements[i]))
	}
	return responses, nil
}

// Create posts a new announcement on behalf of an administrator
func (s *AnnouncementService) Create(creator *models.User, req *CreateAnnouncementRequest) (*AnnouncementResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	announcement := &models.Announcement{
		Title:     strings.TrimSpace(req.Title),
		Body:      strings.TrimSpace(req.Body),
		CreatedBy: &creator.ID,
	}
	if err := s.announcements.Create(announcement); err != nil {
		return nil, fmt.Errorf("create announcement: %w", err)
	}

	return toAnnouncementResponse(announcement), nil
}

// Delete removes an announcement
func (s *AnnouncementService) Delete(id uuid.UUID) error {
	if err := s.announcements.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAnnouncementNotFound
		}
		return fmt.Errorf("delete announcement: %w", err)
	}
	return nil
}

func toAnnouncementResponse(a *models.Announcement) *AnnouncementResponse {
	return &AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Body:      a.Body,
		CreatedAt: a.CreatedAt,
	}
}
