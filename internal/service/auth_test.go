package service_test

import (
	"testing"

	"ml-league-backend/internal/auth"
	"ml-league-backend/internal/database/models"
	apperrors "ml-league-backend/internal/errors"
	"ml-league-backend/internal/mocks"
	"ml-league-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	tokens       *auth.Service
	authService  *service.AuthService
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	tokens, err := auth.NewService(&auth.Config{
		JWTSecret:       "auth-service-test-secret",
		TokenTTLMinutes: 60,
	})
	suite.Require().NoError(err)
	suite.tokens = tokens

	suite.authService = service.NewAuthService(suite.mockUserRepo, tokens, validator.New())
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSignup tests user registration
func (suite *AuthServiceTestSuite) TestSignup() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockUserRepo.EXPECT().
			GetByHandle("alice").
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)
		suite.mockUserRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(user *models.User) error {
				suite.Equal("alice", user.Handle)
				suite.NotEqual("password123", user.PasswordHash)
				suite.False(user.IsAdmin)
				return nil
			}).
			Times(1)

		response, err := suite.authService.Signup(&service.SignupRequest{
			Handle:   "alice",
			Password: "password123",
		})

		suite.NoError(err)
		suite.NotEmpty(response.AccessToken)
		suite.Equal("bearer", response.TokenType)
		suite.False(response.IsAdmin)

		// The issued token must resolve back to the new user
		claims, err := suite.tokens.ValidateToken(response.AccessToken)
		suite.NoError(err)
		suite.Equal("alice", claims.Subject)
	})

	suite.T().Run("Handle Taken", func(t *testing.T) {
		suite.mockUserRepo.EXPECT().
			GetByHandle("alice").
			Return(&models.User{Handle: "alice"}, nil).
			Times(1)

		_, err := suite.authService.Signup(&service.SignupRequest{
			Handle:   "alice",
			Password: "password123",
		})

		suite.ErrorIs(err, apperrors.ErrHandleTaken)
	})

	suite.T().Run("Handle Too Short", func(t *testing.T) {
		_, err := suite.authService.Signup(&service.SignupRequest{
			Handle:   "ab",
			Password: "password123",
		})

		suite.Error(err)
		suite.Contains(err.Error(), "validation failed")
	})

	suite.T().Run("Password Too Short", func(t *testing.T) {
		_, err := suite.authService.Signup(&service.SignupRequest{
			Handle:   "alice",
			Password: "short",
		})

		suite.Error(err)
		suite.Contains(err.Error(), "validation failed")
	})
}

// TestLogin tests credential verification
func (suite *AuthServiceTestSuite) TestLogin() {
	hash, err := auth.HashPassword("password123")
	suite.Require().NoError(err)

	suite.T().Run("Success", func(t *testing.T) {
		suite.mockUserRepo.EXPECT().
			GetByHandle("alice").
			Return(&models.User{Handle: "alice", PasswordHash: hash}, nil).
			Times(1)

		response, err := suite.authService.Login(&service.LoginRequest{
			Handle:   "alice",
			Password: "password123",
		})

		suite.NoError(err)
		suite.NotEmpty(response.AccessToken)
		suite.Equal("bearer", response.TokenType)
	})

	suite.T().Run("Admin Flag In Response", func(t *testing.T) {
		suite.mockUserRepo.EXPECT().
			GetByHandle("root").
			Return(&models.User{Handle: "root", PasswordHash: hash, IsAdmin: true}, nil).
			Times(1)

		response, err := suite.authService.Login(&service.LoginRequest{
			Handle:   "root",
			Password: "password123",
		})

		suite.NoError(err)
		suite.True(response.IsAdmin)
	})

	suite.T().Run("Unknown Handle", func(t *testing.T) {
		suite.mockUserRepo.EXPECT().
			GetByHandle("ghost").
			Return(nil, gorm.ErrRecordNotFound).
			Times(1)

		_, err := suite.authService.Login(&service.LoginRequest{
			Handle:   "ghost",
			Password: "password123",
		})

		suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})

	suite.T().Run("Wrong Password", func(t *testing.T) {
		suite.mockUserRepo.EXPECT().
			GetByHandle("alice").
			Return(&models.User{Handle: "alice", PasswordHash: hash}, nil).
			Times(1)

		_, err := suite.authService.Login(&service.LoginRequest{
			Handle:   "alice",
			Password: "wrong-password",
		})

		suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	})

	suite.T().Run("Missing Fields", func(t *testing.T) {
		_, err := suite.authService.Login(&service.LoginRequest{})

		suite.Error(err)
		suite.Contains(err.Error(), "validation failed")
	})
}

// TestMe tests the identity projection
func (suite *AuthServiceTestSuite) TestMe() {
	teamID := uuid.New()
	user := &models.User{Handle: "alice", IsAdmin: false, TeamID: &teamID}

	identity := suite.authService.Me(user)

	suite.Equal("alice", identity.Handle)
	suite.False(identity.IsAdmin)
	suite.Equal(&teamID, identity.TeamID)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
