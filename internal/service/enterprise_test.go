package service_test

import (
	"strings"
	"testing"

	"bilemo-backend/internal/database/models"
	apperrors "bilemo-backend/internal/errors"
	"bilemo-backend/internal/mocks"
	"bilemo-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// EnterpriseServiceTestSuite defines the test suite for EnterpriseService
type EnterpriseServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRepo          *mocks.MockEnterpriseRepositoryInterface
	enterpriseService *service.EnterpriseService
	validator         *validator.Validate
}

// SetupTest sets up the test suite
func (suite *EnterpriseServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockEnterpriseRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.enterpriseService = service.NewEnterpriseService(suite.mockRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *EnterpriseServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreate tests creating an enterprise
func (suite *EnterpriseServiceTestSuite) TestCreate() {
	req := &service.CreateEnterpriseRequest{Name: "acme"}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(enterprise *models.Enterprise) error {
			suite.Equal("acme", enterprise.Name)
			suite.NotEqual(uuid.Nil, enterprise.UUID)
			enterprise.ID = 1
			return nil
		})

	resp, err := suite.enterpriseService.Create(req)

	suite.NoError(err)
	suite.NotNil(resp)
	suite.Equal(uint(1), resp.ID)
	suite.Equal("acme", resp.Name)
	suite.NotEmpty(resp.UUID)
}

// TestCreateMissingName tests that a missing name fails validation
func (suite *EnterpriseServiceTestSuite) TestCreateMissingName() {
	req := &service.CreateEnterpriseRequest{}

	resp, err := suite.enterpriseService.Create(req)

	suite.Error(err)
	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "name is required")
}

// TestCreateNameTooLong tests that an overlong name fails with a length message
func (suite *EnterpriseServiceTestSuite) TestCreateNameTooLong() {
	req := &service.CreateEnterpriseRequest{Name: strings.Repeat("a", 256)}

	resp, err := suite.enterpriseService.Create(req)

	suite.Error(err)
	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "at most 255")
	suite.NotContains(err.Error(), "name is required")
}

// TestList tests listing all enterprises
func (suite *EnterpriseServiceTestSuite) TestList() {
	enterprises := []models.Enterprise{
		{ID: 1, UUID: uuid.New(), Name: "acme"},
		{ID: 2, UUID: uuid.New(), Name: "globex"},
	}

	suite.mockRepo.EXPECT().GetAll().Return(enterprises, nil)

	resp, err := suite.enterpriseService.List()

	suite.NoError(err)
	suite.Len(resp, 2)
	suite.Equal("acme", resp[0].Name)
	suite.Equal("globex", resp[1].Name)
	suite.Equal(enterprises[0].UUID.String(), resp[0].UUID)
}

// TestListEmpty tests that listing with no enterprises returns an empty slice
func (suite *EnterpriseServiceTestSuite) TestListEmpty() {
	suite.mockRepo.EXPECT().GetAll().Return([]models.Enterprise{}, nil)

	resp, err := suite.enterpriseService.List()

	suite.NoError(err)
	suite.NotNil(resp)
	suite.Empty(resp)
}

// TestGetByUUID tests retrieving an enterprise by UUID
func (suite *EnterpriseServiceTestSuite) TestGetByUUID() {
	uid := uuid.New()
	enterprise := &models.Enterprise{ID: 1, UUID: uid, Name: "acme"}

	suite.mockRepo.EXPECT().GetByUUID(uid).Return(enterprise, nil)

	resp, err := suite.enterpriseService.GetByUUID(uid)

	suite.NoError(err)
	suite.NotNil(resp)
	suite.Equal(uid.String(), resp.UUID)
	suite.Equal("acme", resp.Name)
}

// TestGetByUUIDNotFound tests that an unknown UUID maps to a not found error
func (suite *EnterpriseServiceTestSuite) TestGetByUUIDNotFound() {
	uid := uuid.New()

	suite.mockRepo.EXPECT().GetByUUID(uid).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.enterpriseService.GetByUUID(uid)

	suite.Error(err)
	suite.Nil(resp)
	suite.True(apperrors.IsNotFound(err))
	suite.ErrorIs(err, apperrors.ErrEnterpriseNotFound)
}

// TestUpdate tests a partial update of an enterprise
func (suite *EnterpriseServiceTestSuite) TestUpdate() {
	uid := uuid.New()
	enterprise := &models.Enterprise{ID: 1, UUID: uid, Name: "old name"}
	newName := "new name"

	suite.mockRepo.EXPECT().GetByUUID(uid).Return(enterprise, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(e *models.Enterprise) error {
			suite.Equal("new name", e.Name)
			suite.Equal(uid, e.UUID)
			return nil
		})

	resp, err := suite.enterpriseService.Update(uid, &service.UpdateEnterpriseRequest{Name: &newName})

	suite.NoError(err)
	suite.Equal("new name", resp.Name)
	suite.Equal(uid.String(), resp.UUID)
}

// TestUpdateEmptyPayload tests that an update without fields changes nothing
func (suite *EnterpriseServiceTestSuite) TestUpdateEmptyPayload() {
	uid := uuid.New()
	enterprise := &models.Enterprise{ID: 1, UUID: uid, Name: "unchanged"}

	suite.mockRepo.EXPECT().GetByUUID(uid).Return(enterprise, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(e *models.Enterprise) error {
			suite.Equal("unchanged", e.Name)
			return nil
		})

	resp, err := suite.enterpriseService.Update(uid, &service.UpdateEnterpriseRequest{})

	suite.NoError(err)
	suite.Equal("unchanged", resp.Name)
}

// TestUpdateNotFound tests updating an unknown enterprise
func (suite *EnterpriseServiceTestSuite) TestUpdateNotFound() {
	uid := uuid.New()
	name := "whatever"

	suite.mockRepo.EXPECT().GetByUUID(uid).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.enterpriseService.Update(uid, &service.UpdateEnterpriseRequest{Name: &name})

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrEnterpriseNotFound)
}

// TestDelete tests deleting an enterprise
func (suite *EnterpriseServiceTestSuite) TestDelete() {
	uid := uuid.New()
	enterprise := &models.Enterprise{ID: 7, UUID: uid, Name: "doomed"}

	suite.mockRepo.EXPECT().GetByUUID(uid).Return(enterprise, nil)
	suite.mockRepo.EXPECT().Delete(uint(7)).Return(nil)

	err := suite.enterpriseService.Delete(uid)

	suite.NoError(err)
}

// TestDeleteNotFound tests deleting an unknown enterprise
func (suite *EnterpriseServiceTestSuite) TestDeleteNotFound() {
	uid := uuid.New()

	suite.mockRepo.EXPECT().GetByUUID(uid).Return(nil, gorm.ErrRecordNotFound)

	err := suite.enterpriseService.Delete(uid)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrEnterpriseNotFound)
}

// Run the test suite
func TestEnterpriseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EnterpriseServiceTestSuite))
}
