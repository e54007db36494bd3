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

// TeamService handles business logic for teams, including the public listing
// and the leaderboard projection
type TeamService struct {
	teams     repository.TeamRepositoryInterface
	users     repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(teams repository.TeamRepositoryInterface, users repository.UserRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		teams:     teams,
		users:     users,
		validator: validator,
	}
}

// CreateTeamRequest represents the data needed to create a team
type CreateTeamRequest struct {
	Name    string `json:"name" validate:"required,max=80"`
	Member1 string `json:"member1" validate:"required,max=80"`
	Member2 string `json:"member2" validate:"required,max=80"`
	Member3 string `json:"member3" validate:"required,max=80"`
}

// UpdateTeamRequest represents a partial team update; nil fields are left
// unchanged on the stored record
type UpdateTeamRequest struct {
	Name    *string `json:"name" validate:"omitempty,max=80"`
	Member1 *string `json:"member1" validate:"omitempty,max=80"`
	Member2 *string `json:"member2" validate:"omitempty,max=80"`
	Member3 *string `json:"member3" validate:"omitempty,max=80"`
}

// TeamResponse represents the response data for a team
type TeamResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Member1         string    `json:"member1"`
	Member2         string    `json:"member2"`
	Member3         string    `json:"member3"`
	Banned          bool      `json:"banned"`
	SubmissionCount int       `json:"submission_count"`
	TotalScore      float64   `json:"total_score"`
	CreatedAt       time.Time `json:"created_at"`
}

// LeaderboardEntry is a single row of the public leaderboard
type LeaderboardEntry struct {
	TeamID          uuid.UUID `json:"team_id"`
	TeamName        string    `json:"team_name"`
	SubmissionCount int       `json:"submission_count"`
	TotalScore      float64   `json:"total_score"`
}

// Create creates a team owned by the given user. A user owns at most one
// team, and team names are globally unique.
func (s *TeamService) Create(owner *models.User, req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if owner.TeamID != nil {
		return nil, apperrors.ErrAlreadyOwnsTeam
	}

	name := strings.TrimSpace(req.Name)
	if existing, err := s.teams.GetByName(name); err == nil && existing != nil {
		return nil, apperrors.ErrTeamNameTaken
	}

	team := &models.Team{
		Name:        name,
		Member1:     strings.TrimSpace(req.Member1),
		Member2:     strings.TrimSpace(req.Member2),
		Member3:     strings.TrimSpace(req.Member3),
		OwnerUserID: &owner.ID,
	}
	if err := s.teams.Create(team); err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}

	// Set the back reference exactly once
	owner.TeamID = &team.ID
	if err := s.users.Update(owner); err != nil {
		return nil, fmt.Errorf("update owner: %w", err)
	}

	return toTeamResponse(team), nil
}

// GetMine returns the team owned by the given user
func (s *TeamService) GetMine(owner *models.User) (*TeamResponse, error) {
	team, err := s.getOwnedTeam(owner)
	if err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

// UpdateMine applies a partial update to the team owned by the given user.
// Banned teams cannot be updated.
func (s *TeamService) UpdateMine(owner *models.User, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team, err := s.getOwnedTeam(owner)
	if err != nil {
		return nil, err
	}

	if team.Banned {
		return nil, apperrors.ErrTeamBanned
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != team.Name {
			if existing, err := s.teams.GetByName(name); err == nil && existing != nil {
				return nil, apperrors.ErrTeamNameTaken
			}
			team.Name = name
		}
	}
	if req.Member1 != nil {
		team.Member1 = strings.TrimSpace(*req.Member1)
	}
	if req.Member2 != nil {
		team.Member2 = strings.TrimSpace(*req.Member2)
	}
	if req.Member3 != nil {
		team.Member3 = strings.TrimSpace(*req.Member3)
	}

	if err := s.teams.Update(team); err != nil {
		return nil, fmt.Errorf("update team: %w", err)
	}

	return toTeamResponse(team), nil
}

// ListPublic returns all unbanned teams, newest first
func (s *TeamService) ListPublic() ([]TeamResponse, error) {
	teams, err := s.teams.ListPublic()
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	responses := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		responses = append(responses, *toTeamResponse(&teams[i]))
	}
	return responses, nil
}

// Leaderboard returns unbanned teams ordered by total score descending
func (s *TeamService) Leaderboard() ([]LeaderboardEntry, error) {
	teams, err := s.teams.ListByTotalScore()
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	entries := make([]LeaderboardEntry, 0, len(teams))
	for i := range teams {
		entries = append(entries, LeaderboardEntry{
			TeamID:          teams[i].ID,
			TeamName:        teams[i].Name,
			SubmissionCount: teams[i].SubmissionCount,
			TotalScore:      teams[i].TotalScore,
		})
	}
	return entries, nil
}

// SetBanned flips the banned flag of a team
func (s *TeamService) SetBanned(id uuid.UUID, banned bool) error {
	if err := s.teams.SetBanned(id, banned); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("set banned: %w", err)
	}
	return nil
}

// Delete removes a team and frees its owner to create another one
func (s *TeamService) Delete(id uuid.UUID) error {
	team, err := s.teams.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("get team: %w", err)
	}

	if err := s.teams.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("delete team: %w", err)
	}

	if team.OwnerUserID != nil {
		owner, err := s.users.GetByID(*team.OwnerUserID)
		if err == nil && owner.TeamID != nil && *owner.TeamID == id {
			owner.TeamID = nil
			if err := s.users.Update(owner); err != nil {
				return fmt.Errorf("clear owner team: %w", err)
			}
		}
	}

	return nil
}

func (s *TeamService) getOwnedTeam(owner *models.User) (*models.Team, error) {
	if owner.TeamID == nil {
		return nil, apperrors.ErrTeamNotFound
	}

	team, err := s.teams.GetByID(*owner.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return team, nil
}

func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:              team.ID,
		Name:            team.Name,
		Member1:         team.Member1,
		Member2:         team.Member2,
		Member3:         team.Member3,
		Banned:          team.Banned,
		SubmissionCount: team.SubmissionCount,
		TotalScore:      team.TotalScore,
		CreatedAt:       team.CreatedAt,
	}
}
