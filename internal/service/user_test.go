package service_test

import (
	"testing"
	"time"

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

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockUserRepositoryInterface
	mockEnterpriseRepo *mocks.MockEnterpriseRepositoryInterface
	mockHasher         *mocks.MockPasswordHasher
	userService        *service.UserService
	validator          *validator.Validate
	enterprise         *models.Enterprise
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockEnterpriseRepo = mocks.NewMockEnterpriseRepositoryInterface(suite.ctrl)
	suite.mockHasher = mocks.NewMockPasswordHasher(suite.ctrl)
	suite.validator = validator.New()
	suite.userService = service.NewUserService(suite.mockRepo, suite.mockEnterpriseRepo, suite.mockHasher, suite.validator)

	suite.enterprise = &models.Enterprise{ID: 1, UUID: uuid.New(), Name: "acme"}
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListByEnterprise tests listing users of an enterprise
func (suite *UserServiceTestSuite) TestListByEnterprise() {
	users := []models.User{
		{ID: 1, FirstName: "John", Email: "john@test.com", EnterpriseID: 1},
		{ID: 2, FirstName: "Jane", Email: "jane@test.com", EnterpriseID: 1},
	}

	suite.mockEnterpriseRepo.EXPECT().GetByUUID(suite.enterprise.UUID).Return(suite.enterprise, nil)
	suite.mockRepo.EXPECT().GetAllByEnterpriseID(uint(1)).Return(users, nil)

	resp, err := suite.userService.ListByEnterprise(suite.enterprise.UUID)

	suite.NoError(err)
	suite.Len(resp, 2)
	suite.Equal("john@test.com", resp[0].Email)
	suite.Equal("jane@test.com", resp[1].Email)
}

// TestListByEnterpriseEmpty tests that an enterprise without users yields an empty slice
func (suite *UserServiceTestSuite) TestListByEnterpriseEmpty() {
	suite.mockEnterpriseRepo.EXPECT().GetByUUID(suite.enterprise.UUID).Return(suite.enterprise, nil)
	suite.mockRepo.EXPECT().GetAllByEnterpriseID(uint(1)).Return([]models.User{}, nil)

	resp, err := suite.userService.ListByEnterprise(suite.enterprise.UUID)

	suite.NoError(err)
	suite.NotNil(resp)
	suite.Empty(resp)
}

// TestListByEnterpriseUnknownTenant tests listing against an unknown enterprise
func (suite *UserServiceTestSuite) TestListByEnterpriseUnknownTenant() {
	uid := uuid.New()

	suite.mockEnterpriseRepo.EXPECT().GetByUUID(uid).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.userService.ListByEnterprise(uid)

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrEnterpriseNotFound)
}

// TestGet tests retrieving one user within the enterprise
func (suite *UserServiceTestSuite) TestGet() {
	user := &models.User{ID: 5, FirstName: "John", Email: "john@test.com", EnterpriseID: 1}

	suite.mockEnterpriseRepo.EXPECT().GetByUUID(suite.enterprise.UUID).Return(suite.enterprise, nil)
	suite.mockRepo.EXPECT().GetByEnterpriseAndID(uint(1), uint(5)).Return(user, nil)

	resp, err := suite.userService.Get(suite.enterprise.UUID, 5)

	suite.NoError(err)
	suite.Equal(uint(5), resp.ID)
	suite.Equal("john@test.com", resp.Email)
}

// TestGetNotFound tests retrieving a user that does not belong to the enterprise
func (suite *UserServiceTestSuite) TestGetNotFound() {
	suite.mockEnterpriseRepo.EXPECT().GetByUUID(suite.enterprise.UUID).Return(suite.enterprise, nil)
	suite.mockRepo.EXPECT().GetByEnterpriseAndID(uint(1), uint(42)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.userService.Get(suite.enterprise.UUID, 42)

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestCreate tests creating a user with defaults applied
func (suite *UserServiceTestSuite) TestCreate() {
	req := &service.CreateUserRequest{
		FirstName:      "John",
		LastName:       "Doe",
		Email:          "john@test.com",
		Password:       "secret",
		EnterpriseUUID: suite.enterprise.UUID.String(),
	}

	suite.mockEnterpriseRepo.EXPECT().GetByUUID(suite.enterprise.UUID).Return(suite.enterprise, nil)
	suite.mockRepo.EXPECT().GetByEmail("john@test.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockHasher.EXPECT().Hash("secret").Return("$2a$10$hash", nil)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			suite.Equal("John", user.FirstName)
			suite.Equal(uint(1), user.EnterpriseID)
			suite.Equal("$2a$10$hash", user.Password)
			suite.True(user.Available)
			suite.Equal(models.RoleList{models.RoleUser}, user.Roles)
			suite.WithinDuration(time.Now().UTC(), user.DateOfBirth, 5*time.Second)
			user.ID = 10
			return nil
		})

	resp, err := suite.userService.Create(req)

	suite.NoError(err)
	suite.Equal(uint(10), resp.ID)
	suite.Equal("john@test.com", resp.Email)
	suite.True(resp.Available)
}

// TestCreateWithoutPassword tests that the password is optional
func (suite *UserServiceTestSuite) TestCreateWithoutPassword() {
	req := &service.CreateUserRequest{
		FirstName:      "John",
		Email:          "john@test.com",
		EnterpriseUUID: suite.enterprise.UUID.String(),
	}

	suite.mockEnterpriseRepo.EXPECT().GetByUUID(suite.enterprise.UUID).Return(suite.enterprise, nil)
	suite.mockRepo.EXPECT().GetByEmail("john@test.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			suite.Empty(user.Password)
			return nil
		})

	_, err := suite.userService.Create(req)

	suite.NoError(err)
}

// TestCreateMissingFields tests that missing required fields fail validation
func (suite *UserServiceTestSuite) TestCreateMissingFields() {
	req := &service.CreateUserRequest{LastName: "Doe"}

	resp, err := suite.userService.Create(req)

	suite.Error(err)
	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

// TestCreateUnknownEnterprise tests creating a user under an unknown enterprise
func (suite *UserServiceTestSuite) TestCreateUnknownEnterprise() {
	uid := uuid.New()
	req := &service.CreateUserRequest{
		FirstName:      "John",
		Email:          "john@test.com",
		EnterpriseUUID: uid.String(),
	}

	suite.mockEnterpriseRepo.EXPECT().GetByUUID(uid).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.userService.Create(req)

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrEnterpriseNotFound)
}

// TestCreateDuplicateEmail tests that a duplicate email is rejected
func (suite *UserServiceTestSuite) TestCreateDuplicateEmail() {
	req := &service.CreateUserRequest{
		FirstName:      "John",
		Email:          "taken@test.com",
		EnterpriseUUID: suite.enterprise.UUID.String(),
	}
	existing := &models.User{ID: 3, Email: "taken@test.com"}

	suite.mockEnterpriseRepo.EXPECT().GetByUUID(suite.enterprise.UUID).Return(suite.enterprise, nil)
	suite.mockRepo.EXPECT().GetByEmail("taken@test.com").Return(existing, nil)

	resp, err := suite.userService.Create(req)

	suite.Error(err)
	suite.Nil(resp)
	suite.True(apperrors.IsAlreadyExists(err))
	suite.ErrorIs(err, apperrors.ErrUserExists)
}

// TestUpdate tests a partial update keeping absent fields intact
func (suite *UserServiceTestSuite) TestUpdate() {
	user := &models.User{
		ID:           5,
		FirstName:    "John",
		LastName:     "Doe",
		Email:        "john@test.com",
		Available:    true,
		EnterpriseID: 1,
	}
	newFirst := "Johnny"

	suite.mockEnterpriseRepo.EXPECT().GetByUUID(suite.enterprise.UUID).Return(suite.enterprise, nil)
	suite.mockRepo.EXPECT().GetByEnterpriseAndID(uint(1), uint(5)).Return(user, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(u *models.User) error {
			suite.Equal("Johnny", u.FirstName)
			suite.Equal("Doe", u.LastName)
			suite.Equal("john@test.com", u.Email)
			suite.Equal(uint(1), u.EnterpriseID)
			return nil
		})

	resp, err := suite.userService.Update(suite.enterprise.UUID, 5, &service.UpdateUserRequest{FirstName: &newFirst})

	suite.NoError(err)
	suite.Equal("Johnny", resp.FirstName)
	suite.Equal("Doe", resp.LastName)
}

// TestUpdateEmptyPayload tests that an update without fields is idempotent
func (suite *UserServiceTestSuite) TestUpdateEmptyPayload() {
	user := &models.User{ID: 5, FirstName: "John", Email: "john@test.com", Available: true, EnterpriseID: 1}

	suite.mockEnterpriseRepo.EXPECT().GetByUUID(suite.enterprise.UUID).Return(suite.enterprise, nil)
	suite.mockRepo.EXPECT().GetByEnterpriseAndID(uint(1), uint(5)).Return(user, nil)
	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(u *models.User) error {
			suite.Equal("John", u.FirstName)
			suite.True(u.Available)
			return nil
		})

	resp, err := suite.userService.Update(suite.enterprise.UUID, 5, &service.UpdateUserRequest{})

	suite.NoError(err)
	suite.Equal("John", resp.FirstName)
}

// TestUpdateNotFound tests updating a user missing from the enterprise
func (suite *UserServiceTestSuite) TestUpdateNotFound() {
	newFirst := "Johnny"

	suite.mockEnterpriseRepo.EXPECT().GetByUUID(suite.enterprise.UUID).Return(suite.enterprise, nil)
	suite.mockRepo.EXPECT().GetByEnterpriseAndID(uint(1), uint(42)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.userService.Update(suite.enterprise.UUID, 42, &service.UpdateUserRequest{FirstName: &newFirst})

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestDelete tests deleting a user
func (suite *UserServiceTestSuite) TestDelete() {
	user := &models.User{ID: 5, EnterpriseID: 1}

	suite.mockEnterpriseRepo.EXPECT().GetByUUID(suite.enterprise.UUID).Return(suite.enterprise, nil)
	suite.mockRepo.EXPECT().GetByEnterpriseAndID(uint(1), uint(5)).Return(user, nil)
	suite.mockRepo.EXPECT().Delete(uint(5)).Return(nil)

	err := suite.userService.Delete(suite.enterprise.UUID, 5)

	suite.NoError(err)
}

// TestDeleteNotFound tests deleting a user missing from the enterprise
func (suite *UserServiceTestSuite) TestDeleteNotFound() {
	suite.mockEnterpriseRepo.EXPECT().GetByUUID(suite.enterprise.UUID).Return(suite.enterprise, nil)
	suite.mockRepo.EXPECT().GetByEnterpriseAndID(uint(1), uint(42)).Return(nil, gorm.ErrRecordNotFound)

	err := suite.userService.Delete(suite.enterprise.UUID, 42)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// Run the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
