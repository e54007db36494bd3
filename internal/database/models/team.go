package models

import (
	"github.com/google/uuid"
)

// Team represents a three-member league team. SubmissionCount and TotalScore
// are denormalized aggregates maintained at submission time, not recomputed
// from submission history.
type Team struct {
	BaseModel
	Name            string     `json:"name" gorm:"uniqueIndex;not null;size:80" validate:"required,min=1,max=80"`
	Member1         string     `json:"member1" gorm:"not null;size:80" validate:"required,max=80"`
	Member2         string     `json:"member2" gorm:"not null;size:80" validate:"required,max=80"`
	Member3         string     `json:"member3" gorm:"not null;size:80" validate:"required,max=80"`
	Banned          bool       `json:"banned" gorm:"not null;default:false"`
	SubmissionCount int        `json:"submission_count" gorm:"not null;default:0"`
	TotalScore      float64    `json:"total_score" gorm:"not null;default:0"`
	OwnerUserID     *uuid.UUID `json:"owner_user_id,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Submissions []Submission `json:"submissions,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
