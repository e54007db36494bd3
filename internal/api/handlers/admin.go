package handlers

import (
	"errors"
	"net/http"

	apperrors "ml-league-backend/internal/errors"
	"ml-league-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler handles administrator operations on teams
type AdminHandler struct {
	teamService service.TeamServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(teamService service.TeamServiceInterface) *AdminHandler {
	return &AdminHandler{
		teamService: teamService,
	}
}

// BanTeam handles POST /admin/teams/:id/ban
// @Summary Ban a team
// @Tags admin
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} map[string]interface{} "Status"
// @Failure 403 {object} ErrorResponse "Admin privilege required"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /admin/teams/{id}/ban [post]
func (h *AdminHandler) BanTeam(c *gin.Context) {
	h.setBanned(c, true, "banned")
}

// UnbanTeam handles POST /admin/teams/:id/unban
// @Summary Unban a team
// @Tags admin
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} map[string]interface{} "Status"
// @Failure 403 {object} ErrorResponse "Admin privilege required"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /admin/teams/{id}/unban [post]
func (h *AdminHandler) UnbanTeam(c *gin.Context) {
	h.setBanned(c, false, "unbanned")
}

// DeleteTeam handles DELETE /admin/teams/:id
// @Summary Delete a team
// @Description Delete a team and its submissions; the owner may create a new team afterwards
// @Tags admin
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} map[string]interface{} "Status"
// @Failure 403 {object} ErrorResponse "Admin privilege required"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /admin/teams/{id} [delete]
func (h *AdminHandler) DeleteTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	if err := h.teamService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "status": "deleted"})
}

func (h *AdminHandler) setBanned(c *gin.Context, banned bool, status string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	if err := h.teamService.SetBanned(id, banned); err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "status": status})
}
