package repository

import (
	"ml-league-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByHandle(handle string) (*models.User, error)
	Update(user *models.User) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	ListPublic() ([]models.Team, error)
	ListByTotalScore() ([]models.Team, error)
	Update(team *models.Team) error
	SetBanned(id uuid.UUID, banned bool) error
	Delete(id uuid.UUID) error
}

// SubmissionRepositoryInterface defines the interface for submission repository operations
type SubmissionRepositoryInterface interface {
	CreateWithAggregates(submission *models.Submission) error
	GetByTeamID(teamID uuid.UUID) ([]models.Submission, error)
}

// AnnouncementRepositoryInterface defines the interface for announcement repository operations
type AnnouncementRepositoryInterface interface {
	Create(announcement *models.Announcement) error
	GetByID(id uuid.UUID) (*models.Announcement, error)
	GetAll() ([]models.Announcement, error)
	Delete(id uuid.UUID) error
}
