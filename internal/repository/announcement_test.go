//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"ml-league-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AnnouncementRepositoryTestSuite tests the AnnouncementRepository
type AnnouncementRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AnnouncementRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AnnouncementRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAnnouncementRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AnnouncementRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AnnouncementRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AnnouncementRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByID tests the create and lookup roundtrip
func (suite *AnnouncementRepositoryTestSuite) TestCreateAndGetByID() {
	announcement := suite.factories.Announcement.Create()

	suite.NoError(suite.repo.Create(announcement))

	found, err := suite.repo.GetByID(announcement.ID)
	suite.NoError(err)
	suite.Equal(announcement.Title, found.Title)
	suite.Equal(announcement.Body, found.Body)

	_, err = suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAll tests newest-first ordering
func (suite *AnnouncementRepositoryTestSuite) TestGetAll() {
	older := suite.factories.Announcement.Create()
	older.Title = "older"
	older.CreatedAt = time.Now().Add(-time.Hour)
	suite.NoError(suite.repo.Create(older))

	newer := suite.factories.Announcement.Create()
	newer.Title = "newer"
	suite.NoError(suite.repo.Create(newer))

	announcements, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Len(announcements, 2)
	suite.Equal("newer", announcements[0].Title)
	suite.Equal("older", announcements[1].Title)
}

// TestDelete tests deletion
func (suite *AnnouncementRepositoryTestSuite) TestDelete() {
	announcement := suite.factories.Announcement.Create()
	suite.NoError(suite.repo.Create(announcement))

	suite.NoError(suite.repo.Delete(announcement.ID))

	_, err := suite.repo.GetByID(announcement.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	err = suite.repo.Delete(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestAnnouncementRepositoryTestSuite runs the test suite
func TestAnnouncementRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AnnouncementRepositoryTestSuite))
}
