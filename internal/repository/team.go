package repository

import (
	"ml-league-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// ListPublic retrieves all unbanned teams, newest first
func (r *TeamRepository) ListPublic() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("banned = ?", false).Order("created_at DESC").Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// ListByTotalScore retrieves all unbanned teams ordered by total score descending
func (r *TeamRepository) ListByTotalScore() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("banned = ?", false).Order("total_score DESC").Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// SetBanned sets the banned flag of a team
func (r *TeamRepository) SetBanned(id uuid.UUID, banned bool) error {
	result := r.db.Model(&models.Team{}).Where("id = ?", id).Update("banned", banned)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a team; its submissions cascade at the database level
func (r *TeamRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Team{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
