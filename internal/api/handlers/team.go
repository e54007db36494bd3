package handlers

import (
	"errors"
	"net/http"

	"ml-league-backend/internal/auth"
	apperrors "ml-league-backend/internal/errors"
	"ml-league-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams/create
// @Summary Create a team
// @Description Create a three-member team owned by the authenticated user
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 200 {object} service.TeamResponse "Created team"
// @Failure 400 {object} ErrorResponse "Already owns a team or name taken"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /teams/create [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Create(user, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNameTaken) || isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetMyTeam handles GET /teams/me
// @Summary Get own team
// @Tags teams
// @Produce json
// @Success 200 {object} service.TeamResponse "Team"
// @Failure 404 {object} ErrorResponse "No team yet"
// @Security BearerAuth
// @Router /teams/me [get]
func (h *TeamHandler) GetMyTeam(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	team, err := h.teamService.GetMine(user)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no team yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateMyTeam handles PUT /teams/me
// @Summary Update own team
// @Description Partially update the caller's team; omitted fields are left unchanged
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} service.TeamResponse "Updated team"
// @Failure 403 {object} ErrorResponse "Team is banned"
// @Failure 404 {object} ErrorResponse "No team yet"
// @Security BearerAuth
// @Router /teams/me [put]
func (h *TeamHandler) UpdateMyTeam(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.UpdateMine(user, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no team yet"})
			return
		}
		if errors.Is(err, apperrors.ErrTeamBanned) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrTeamNameTaken) || isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, team)
}

// ListPublicTeams handles GET /teams/public
// @Summary List public teams
// @Description List all unbanned teams, newest first
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamResponse "Teams"
// @Router /teams/public [get]
func (h *TeamHandler) ListPublicTeams(c *gin.Context) {
	teams, err := h.teamService.ListPublic()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, teams)
}
