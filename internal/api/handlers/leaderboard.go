package handlers

import (
	"net/http"

	"ml-league-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeaderboardHandler handles the public leaderboard endpoint
type LeaderboardHandler struct {
	teamService service.TeamServiceInterface
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(teamService service.TeamServiceInterface) *LeaderboardHandler {
	return &LeaderboardHandler{
		teamService: teamService,
	}
}

// Leaderboard handles GET /leaderboard
// @Summary Leaderboard
// @Description List unbanned teams ordered by total score descending
// @Tags leaderboard
// @Produce json
// @Success 200 {array} service.LeaderboardEntry "Leaderboard rows"
// @Router /leaderboard [get]
func (h *LeaderboardHandler) Leaderboard(c *gin.Context) {
	entries, err := h.teamService.Leaderboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
