//go:build integration
// +build integration

package repository

import (
	"testing"

	"ml-league-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := suite.factories.Team.Create()

	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)
	suite.Zero(team.SubmissionCount)
	suite.Zero(team.TotalScore)
	suite.False(team.Banned)
}

// TestCreateDuplicateName tests the unique name constraint
func (suite *TeamRepositoryTestSuite) TestCreateDuplicateName() {
	team1 := suite.factories.Team.WithName("duplicate-team")
	suite.NoError(suite.repo.Create(team1))

	team2 := suite.factories.Team.WithName("duplicate-team")
	err := suite.repo.Create(team2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByName tests name lookup
func (suite *TeamRepositoryTestSuite) TestGetByName() {
	team := suite.factories.Team.WithName("lookup-team")
	suite.NoError(suite.repo.Create(team))

	found, err := suite.repo.GetByName("lookup-team")
	suite.NoError(err)
	suite.Equal(team.ID, found.ID)

	_, err = suite.repo.GetByName("missing-team")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestListPublic tests that banned teams are hidden from the public listing
func (suite *TeamRepositoryTestSuite) TestListPublic() {
	visible := suite.factories.Team.WithName("visible-team")
	suite.NoError(suite.repo.Create(visible))

	banned := suite.factories.Team.Banned()
	suite.NoError(suite.repo.Create(banned))

	teams, err := suite.repo.ListPublic()
	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal("visible-team", teams[0].Name)
}

// TestListByTotalScore tests leaderboard ordering
func (suite *TeamRepositoryTestSuite) TestListByTotalScore() {
	low := suite.factories.Team.WithName("low-score")
	low.TotalScore = 10
	suite.NoError(suite.repo.Create(low))

	high := suite.factories.Team.WithName("high-score")
	high.TotalScore = 99.5
	suite.NoError(suite.repo.Create(high))

	banned := suite.factories.Team.Banned()
	banned.TotalScore = 1000
	suite.NoError(suite.repo.Create(banned))

	teams, err := suite.repo.ListByTotalScore()
	suite.NoError(err)
	suite.Len(teams, 2)
	suite.Equal("high-score", teams[0].Name)
	suite.Equal("low-score", teams[1].Name)
}

// TestSetBanned tests the ban flag toggle
func (suite *TeamRepositoryTestSuite) TestSetBanned() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	suite.NoError(suite.repo.SetBanned(team.ID, true))

	found, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.True(found.Banned)

	suite.NoError(suite.repo.SetBanned(team.ID, false))

	found, err = suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.False(found.Banned)

	err = suite.repo.SetBanned(uuid.New(), true)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDelete tests deletion and submission cascade
func (suite *TeamRepositoryTestSuite) TestDelete() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	submissionRepo := NewSubmissionRepository(suite.baseTestSuite.DB)
	submission := suite.factories.Submission.Create(team.ID)
	suite.NoError(submissionRepo.CreateWithAggregates(submission))

	suite.NoError(suite.repo.Delete(team.ID))

	_, err := suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// Submissions cascade with the team
	submissions, err := submissionRepo.GetByTeamID(team.ID)
	suite.NoError(err)
	suite.Empty(submissions)

	err = suite.repo.Delete(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
