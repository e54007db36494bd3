package service

import (
	"ml-league-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuthServiceInterface defines the interface for the auth service
type AuthServiceInterface interface {
	Signup(req *SignupRequest) (*TokenResponse, error)
	Login(req *LoginRequest) (*TokenResponse, error)
	Me(user *models.User) *IdentityResponse
}

// TeamServiceInterface defines the interface for the team service
type TeamServiceInterface interface {
	Create(owner *models.User, req *CreateTeamRequest) (*TeamResponse, error)
	GetMine(owner *models.User) (*TeamResponse, error)
	UpdateMine(owner *models.User, req *UpdateTeamRequest) (*TeamResponse, error)
	ListPublic() ([]TeamResponse, error)
	Leaderboard() ([]LeaderboardEntry, error)
	SetBanned(id uuid.UUID, banned bool) error
	Delete(id uuid.UUID) error
}

// SubmissionServiceInterface defines the interface for the submission service
type SubmissionServiceInterface interface {
	Submit(owner *models.User, req *SubmissionRequest) (*SubmissionResponse, error)
}

// AnnouncementServiceInterface defines the interface for the announcement service
type AnnouncementServiceInterface interface {
	List() ([]AnnouncementResponse, error)
	Create(creator *models.User, req *CreateAnnouncementRequest) (*AnnouncementResponse, error)
	Delete(id uuid.UUID) error
}
