package repository

import (
	"ml-league-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubmissionRepository handles database operations for submissions
type SubmissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// CreateWithAggregates inserts a submission and bumps the owning team's
// denormalized aggregates in a single transaction. The increments run as SQL
// expressions so concurrent submissions to the same team serialize on the
// team row instead of overwriting each other with stale in-memory values.
func (r *SubmissionRepository) CreateWithAggregates(submission *models.Submission) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(submission).Error; err != nil {
			return err
		}

		result := tx.Model(&models.Team{}).
			Where("id = ?", submission.TeamID).
			UpdateColumns(map[string]interface{}{
				"submission_count": gorm.Expr("submission_count + 1"),
				"total_score":      gorm.Expr("total_score + ?", submission.Score),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// GetByTeamID retrieves all submissions for a team, newest first
func (r *SubmissionRepository) GetByTeamID(teamID uuid.UUID) ([]models.Submission, error) {
	var submissions []models.Submission
	err := r.db.Where("team_id = ?", teamID).Order("created_at DESC").Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}
