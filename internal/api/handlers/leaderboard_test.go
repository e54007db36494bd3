package handlers_test

import (
	"net/http"
	"testing"

	"ml-league-backend/internal/api/handlers"
	"ml-league-backend/internal/mocks"
	"ml-league-backend/internal/service"
	"ml-league-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLeaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockTeamServiceInterface(ctrl)
	handler := handlers.NewLeaderboardHandler(mockService)

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/leaderboard", handler.Leaderboard)

	t.Run("rows come back in service order", func(t *testing.T) {
		entries := []service.LeaderboardEntry{
			{TeamID: uuid.New(), TeamName: "First", SubmissionCount: 5, TotalScore: 400.5},
			{TeamID: uuid.New(), TeamName: "Second", SubmissionCount: 2, TotalScore: 120},
		}
		mockService.EXPECT().Leaderboard().Return(entries, nil).Times(1)

		recorder := httpSuite.MakeRequest("GET", "/leaderboard", nil)

		require.Equal(t, http.StatusOK, recorder.Code)

		var response []service.LeaderboardEntry
		testutils.ParseJSONResponse(t, recorder, &response)
		require.Len(t, response, 2)
		assert.Equal(t, "First", response[0].TeamName)
		assert.Equal(t, 400.5, response[0].TotalScore)
	})

	t.Run("empty leaderboard is an empty array", func(t *testing.T) {
		mockService.EXPECT().Leaderboard().Return([]service.LeaderboardEntry{}, nil).Times(1)

		recorder := httpSuite.MakeRequest("GET", "/leaderboard", nil)

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())
	})
}
