package service

import (
	"errors"
	"fmt"
	"time"

	"ml-league-backend/internal/database/models"
	apperrors "ml-league-backend/internal/errors"
	"ml-league-backend/internal/logger"
	"ml-league-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionService handles score submissions
type SubmissionService struct {
	submissions repository.SubmissionRepositoryInterface
	teams       repository.TeamRepositoryInterface
	validator   *validator.Validate
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(submissions repository.SubmissionRepositoryInterface, teams repository.TeamRepositoryInterface, validator *validator.Validate) *SubmissionService {
	return &SubmissionService{
		submissions: submissions,
		teams:       teams,
		validator:   validator,
	}
}

// SubmissionRequest represents a score submission. The score is
// caller-supplied and deliberately not range checked.
type SubmissionRequest struct {
	Score float64 `json:"score"`
	Week  *string `json:"week" validate:"omitempty,max=32"`
}

// SubmissionResponse represents the response data for a submission
type SubmissionResponse struct {
	ID          uuid.UUID `json:"id"`
	TeamID      uuid.UUID `json:"team_id"`
	Score       float64   `json:"score"`
	Week        *string   `json:"week,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Submit records a score for the caller's team and bumps the team's
// denormalized aggregates. Banned teams are rejected before any write.
func (s *SubmissionService) Submit(owner *models.User, req *SubmissionRequest) (*SubmissionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if owner.TeamID == nil {
		return nil, apperrors.ErrNoTeamYet
	}

	team, err := s.teams.GetByID(*owner.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoTeamYet
		}
		return nil, fmt.Errorf("get team: %w", err)
	}

	if team.Banned {
		return nil, apperrors.ErrTeamBanned
	}

	submission := &models.Submission{
		TeamID: team.ID,
		Score:  req.Score,
		Week:   req.Week,
	}
	if err := s.submissions.CreateWithAggregates(submission); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"team":  team.Name,
		"score": submission.Score,
	}).Info("recorded submission")

	return &SubmissionResponse{
		ID:          submission.ID,
		TeamID:      submission.TeamID,
		Score:       submission.Score,
		Week:        submission.Week,
		SubmittedAt: submission.CreatedAt,
	}, nil
}
