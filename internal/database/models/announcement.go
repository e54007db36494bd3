package models

import (
	"github.com/google/uuid"
)

// Announcement is an administrator-posted notice shown to all participants.
type Announcement struct {
	BaseModel
	Title     string     `json:"title" gorm:"not null;size:120" validate:"required,max=120"`
	Body      string     `json:"body" gorm:"not null;size:2000" validate:"required,max=2000"`
	CreatedBy *uuid.UUID `json:"created_by,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for Announcement
func (Announcement) TableName() string {
	return "announcements"
}
