package handlers

import (
	"errors"
	"net/http"

	"ml-league-backend/internal/auth"
	apperrors "ml-league-backend/internal/errors"
	"ml-league-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnnouncementHandler handles HTTP requests for announcements
type AnnouncementHandler struct {
	announcementService service.AnnouncementServiceInterface
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService service.AnnouncementServiceInterface) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementService: announcementService,
	}
}

// List handles GET /announcements
// @Summary List announcements
// @Description List all announcements, newest first
// @Tags announcements
// @Produce json
// @Success 200 {array} service.AnnouncementResponse "Announcements"
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	announcements, err := h.announcementService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, announcements)
}

// Create handles POST /announcements
// @Summary Post an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param announcement body service.CreateAnnouncementRequest true "Announcement data"
// @Success 200 {object} service.AnnouncementResponse "Created announcement"
// @Failure 403 {object} ErrorResponse "Admin privilege required"
// @Security BearerAuth
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	announcement, err := h.announcementService.Create(user, &req)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, announcement)
}

// Delete handles DELETE /announcements/:id
// @Summary Delete an announcement
// @Tags announcements
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 403 {object} ErrorResponse "Admin privilege required"
// @Failure 404 {object} ErrorResponse "Announcement not found"
// @Security BearerAuth
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid announcement ID"})
		return
	}

	if err := h.announcementService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrAnnouncementNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
