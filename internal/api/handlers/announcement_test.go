package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"ml-league-backend/internal/api/handlers"
	"ml-league-backend/internal/database/models"
	apperrors "ml-league-backend/internal/errors"
	"ml-league-backend/internal/mocks"
	"ml-league-backend/internal/service"
	"ml-league-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AnnouncementHandlerTestSuite defines the test suite for AnnouncementHandler
type AnnouncementHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAnnouncementServiceInterface
	handler     *handlers.AnnouncementHandler
	httpSuite   *testutils.HTTPTestSuite
	admin       *models.User
}

// SetupTest sets up the test suite
func (suite *AnnouncementHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAnnouncementServiceInterface(suite.ctrl)
	suite.handler = handlers.NewAnnouncementHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.admin = &models.User{Handle: "root", IsAdmin: true}

	suite.httpSuite.Router.GET("/announcements", suite.handler.List)
	suite.httpSuite.Router.POST("/announcements", injectUser(suite.admin), suite.handler.Create)
	suite.httpSuite.Router.DELETE("/announcements/:id", injectUser(suite.admin), suite.handler.Delete)
}

// TearDownTest cleans up after each test
func (suite *AnnouncementHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestList tests the List handler
func (suite *AnnouncementHandlerTestSuite) TestList() {
	expected := []service.AnnouncementResponse{
		{ID: uuid.New(), Title: "Round 3 open", Body: "Submit by Friday.", CreatedAt: time.Now()},
	}
	suite.mockService.EXPECT().List().Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/announcements", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.AnnouncementResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
	assert.Equal(suite.T(), "Round 3 open", response[0].Title)
}

// TestCreate tests the Create handler
func (suite *AnnouncementHandlerTestSuite) TestCreate() {
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"title": "Round 3 open",
			"body":  "Submit by Friday.",
		}

		expected := &service.AnnouncementResponse{
			ID:    uuid.New(),
			Title: "Round 3 open",
			Body:  "Submit by Friday.",
		}
		suite.mockService.EXPECT().
			Create(suite.admin, gomock.Any()).
			Return(expected, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/announcements", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.AnnouncementResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expected.ID, response.ID)
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequestWithHeaders("POST", "/announcements", nil,
			map[string]string{"Content-Type": "application/json"})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestDelete tests the Delete handler
func (suite *AnnouncementHandlerTestSuite) TestDelete() {
	suite.T().Run("Success", func(t *testing.T) {
		id := uuid.New()

		suite.mockService.EXPECT().Delete(id).Return(nil).Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/announcements/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		id := uuid.New()

		suite.mockService.EXPECT().Delete(id).Return(apperrors.ErrAnnouncementNotFound).Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/announcements/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "not found")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("DELETE", "/announcements/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid announcement ID")
	})
}

// TestAnnouncementHandlerTestSuite runs the test suite
func TestAnnouncementHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AnnouncementHandlerTestSuite))
}
