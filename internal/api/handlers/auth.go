package handlers

import (
	"errors"
	"net/http"

	"ml-league-backend/internal/auth"
	apperrors "ml-league-backend/internal/errors"
	"ml-league-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for signup, login, and identity
type AuthHandler struct {
	authService service.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup handles POST /auth/signup
// @Summary Register a new user
// @Description Register a user with a unique handle and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body service.SignupRequest true "Signup data"
// @Success 200 {object} service.TokenResponse "Token for the new user"
// @Failure 400 {object} ErrorResponse "Handle already taken or invalid input"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.Signup(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrHandleTaken) || isValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, token)
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Exchange credentials for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body service.LoginRequest true "Credentials"
// @Success 200 {object} service.TokenResponse "Token"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, token)
}

// Me handles GET /auth/me
// @Summary Current identity
// @Description Return the identity resolved from the bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} service.IdentityResponse "Identity"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	c.JSON(http.StatusOK, h.authService.Me(user))
}
