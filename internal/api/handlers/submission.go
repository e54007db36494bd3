package handlers

import (
	"errors"
	"net/http"

	"ml-league-backend/internal/auth"
	apperrors "ml-league-backend/internal/errors"
	"ml-league-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler handles HTTP requests for score submissions
type SubmissionHandler struct {
	submissionService service.SubmissionServiceInterface
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService service.SubmissionServiceInterface) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

// Submit handles POST /submissions
// @Summary Submit a score
// @Description Record a score for the caller's team and update its aggregates
// @Tags submissions
// @Accept json
// @Produce json
// @Param submission body service.SubmissionRequest true "Score data"
// @Success 200 {object} service.SubmissionResponse "Recorded submission"
// @Failure 400 {object} ErrorResponse "No team yet"
// @Failure 403 {object} ErrorResponse "Team is banned"
// @Security BearerAuth
// @Router /submissions [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.SubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	submission, err := h.submissionService.Submit(user, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamBanned) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, submission)
}
