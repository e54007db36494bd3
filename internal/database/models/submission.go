package models

import (
	"github.com/google/uuid"
)

// Submission records a single score entry for a team. Submissions are
// immutable once created; there is no update or delete operation.
type Submission struct {
	BaseModel
	TeamID uuid.UUID `json:"team_id" gorm:"type:uuid;not null;index" validate:"required"`
	Score  float64   `json:"score" gorm:"not null"`
	Week   *string   `json:"week,omitempty" gorm:"size:32"` // optional label like "2025-W35"
}

// TableName returns the table name for Submission
func (Submission) TableName() string {
	return "submissions"
}
