package testutils

import (
	"time"

	"ml-league-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The stored hash matches no
// real password; use auth.HashPassword in tests that need to log in.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Handle:       "user-" + id.String()[:8],
		PasswordHash: "$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinv",
		IsAdmin:      false,
	}
}

// WithHandle sets a custom handle
func (f *UserFactory) WithHandle(handle string) *models.User {
	user := f.Create()
	user.Handle = handle
	return user
}

// Admin creates a test administrator
func (f *UserFactory) Admin() *models.User {
	user := f.Create()
	user.IsAdmin = true
	return user
}

// WithTeam associates the user with a team
func (f *UserFactory) WithTeam(teamID uuid.UUID) *models.User {
	user := f.Create()
	user.TeamID = &teamID
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	id := uuid.New()
	return &models.Team{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:    "team-" + id.String()[:8],
		Member1: "Alice Example",
		Member2: "Bob Example",
		Member3: "Carol Example",
	}
}

// WithName sets a custom team name
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// WithOwner sets the owning user
func (f *TeamFactory) WithOwner(ownerID uuid.UUID) *models.Team {
	team := f.Create()
	team.OwnerUserID = &ownerID
	return team
}

// Banned creates a banned team
func (f *TeamFactory) Banned() *models.Team {
	team := f.Create()
	team.Banned = true
	return team
}

// SubmissionFactory provides methods to create test Submission data
type SubmissionFactory struct{}

// NewSubmissionFactory creates a new SubmissionFactory
func NewSubmissionFactory() *SubmissionFactory {
	return &SubmissionFactory{}
}

// Create creates a test Submission for the given team
func (f *SubmissionFactory) Create(teamID uuid.UUID) *models.Submission {
	week := "2025-W35"
	return &models.Submission{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID: teamID,
		Score:  12.5,
		Week:   &week,
	}
}

// AnnouncementFactory provides methods to create test Announcement data
type AnnouncementFactory struct{}

// NewAnnouncementFactory creates a new AnnouncementFactory
func NewAnnouncementFactory() *AnnouncementFactory {
	return &AnnouncementFactory{}
}

// Create creates a test Announcement
func (f *AnnouncementFactory) Create() *models.Announcement {
	return &models.Announcement{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title: "Test Announcement",
		Body:  "Something important happened.",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Team         *TeamFactory
	Submission   *SubmissionFactory
	Announcement *AnnouncementFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Team:         NewTeamFactory(),
		Submission:   NewSubmissionFactory(),
		Announcement: NewAnnouncementFactory(),
	}
}
