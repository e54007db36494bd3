package models

import (
	"github.com/google/uuid"
)

// User represents a registered participant account. The administrator flag is
// only ever set by the startup seed, never through the API.
type User struct {
	BaseModel
	Handle       string     `json:"handle" gorm:"uniqueIndex;not null;size:64" validate:"required,min=3,max=64"`
	PasswordHash string     `json:"-" gorm:"not null;size:255"`
	IsAdmin      bool       `json:"is_admin" gorm:"not null;default:false"`
	TeamID       *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
