package auth

import (
	"net/http"
	"strings"

	"ml-league-backend/internal/database/models"

	"github.com/gin-gonic/gin"
)

const (
	contextUserKey   = "auth_user"
	contextClaimsKey = "auth_claims"
)

// UserResolver looks up the user record behind a token subject. Resolving
// against the store on every request guards against stale claims for a
// deleted or renamed user.
type UserResolver interface {
	GetByHandle(handle string) (*models.User, error)
}

// Middleware provides bearer-token authentication middleware
type Middleware struct {
	service *Service
	users   UserResolver
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service, users UserResolver) *Middleware {
	return &Middleware{service: service, users: users}
}

// RequireAuth validates the bearer token, resolves the subject to a stored
// user, and sets the identity on the request context. Any failure aborts
// with 401.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Validate token
		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		// Resolve the subject against the store
		user, err := m.users.GetByHandle(claims.Subject)
		if err != nil || user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			c.Abort()
			return
		}

		c.Set(contextUserKey, user)
		c.Set(contextClaimsKey, claims)

		c.Next()
	}
}

// RequireAdmin rejects requests whose resolved identity lacks the
// administrator flag. It must run after RequireAuth.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin privilege required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser extracts the resolved user from context
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	return user, ok
}

// CurrentClaims extracts the validated token claims from context
func CurrentClaims(c *gin.Context) (*Claims, bool) {
	value, exists := c.Get(contextClaimsKey)
	if !exists {
		return nil, false
	}

	claims, ok := value.(*Claims)
	return claims, ok
}
