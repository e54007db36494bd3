package repository

import (
	"ml-league-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new announcement repository
func NewAnnouncementRepository(db *gorm.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create creates a new announcement
func (r *AnnouncementRepository) Create(announcement *models.Announcement) error {
	return r.db.Create(announcement).Error
}

// GetByID retrieves an announcement by ID
func (r *AnnouncementRepository) GetByID(id uuid.UUID) (*models.Announcement, error) {
	var announcement models.Announcement
	err := r.db.First(&announcement, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

// GetAll retrieves all announcements, newest first
func (r *AnnouncementRepository) GetAll() ([]models.Announcement, error) {
	var announcements []models.Announcement
	err := r.db.Order("created_at DESC").Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

// Delete deletes an announcement
func (r *AnnouncementRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Announcement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
