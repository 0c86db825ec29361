package handlers

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "bilemo-backend/internal/errors"
	"bilemo-backend/internal/mocks"
	"bilemo-backend/internal/service"
	"bilemo-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserService *mocks.MockUserServiceInterface
	handler         *UserHandler
	httpSuite       *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)

	suite.handler = NewUserHandler(suite.mockUserService)

	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes the same way routes.SetupRoutes does
	suite.httpSuite.Router.GET("/users/:uuid", suite.handler.ListUsers)
	suite.httpSuite.Router.POST("/users", suite.handler.CreateUser)
	suite.httpSuite.Router.GET("/user/:uuid/:userId", suite.handler.GetUser)
	suite.httpSuite.Router.PUT("/user/:uuid/:userId", suite.handler.UpdateUser)
	suite.httpSuite.Router.DELETE("/user/:uuid/:userId", suite.handler.DeleteUser)
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListUsers tests listing users of an enterprise
func (suite *UserHandlerTestSuite) TestListUsers() {
	uid := uuid.New()
	expected := []service.UserResponse{
		{ID: 1, Email: "john@test.com", FirstName: "John"},
		{ID: 2, Email: "jane@test.com", FirstName: "Jane"},
	}

	suite.mockUserService.EXPECT().
		ListByEnterprise(uid).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/users/"+uid.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.UserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
	assert.Equal(suite.T(), "john@test.com", response[0].Email)
}

// TestListUsersEmpty tests that an enterprise without users returns an empty array
func (suite *UserHandlerTestSuite) TestListUsersEmpty() {
	uid := uuid.New()

	suite.mockUserService.EXPECT().
		ListByEnterprise(uid).
		Return([]service.UserResponse{}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/users/"+uid.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), "[]", recorder.Body.String())
}

// TestListUsersUnknownEnterprise tests listing users of an unknown enterprise
func (suite *UserHandlerTestSuite) TestListUsersUnknownEnterprise() {
	uid := uuid.New()

	suite.mockUserService.EXPECT().
		ListByEnterprise(uid).
		Return(nil, apperrors.ErrEnterpriseNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/users/"+uid.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "enterprise not found")
}

// TestListUsersInvalidUUID tests listing with a malformed enterprise UUID
func (suite *UserHandlerTestSuite) TestListUsersInvalidUUID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/users/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid enterprise UUID")
}

// TestGetUser tests retrieving one user
func (suite *UserHandlerTestSuite) TestGetUser() {
	uid := uuid.New()
	expected := &service.UserResponse{ID: 5, Email: "john@test.com", FirstName: "John", Available: true}

	suite.mockUserService.EXPECT().
		Get(uid, uint(5)).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/user/%s/5", uid), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.UserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), uint(5), response.ID)
	assert.True(suite.T(), response.Available)
}

// TestGetUserNotFound tests retrieving a user missing from the enterprise
func (suite *UserHandlerTestSuite) TestGetUserNotFound() {
	uid := uuid.New()

	suite.mockUserService.EXPECT().
		Get(uid, uint(42)).
		Return(nil, apperrors.ErrUserNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/user/%s/42", uid), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// TestGetUserInvalidID tests retrieving a user with a non-numeric id
func (suite *UserHandlerTestSuite) TestGetUserInvalidID() {
	uid := uuid.New()

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/user/%s/abc", uid), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid user ID")
}

// TestCreateUser tests creating a user
func (suite *UserHandlerTestSuite) TestCreateUser() {
	uid := uuid.New()
	requestBody := map[string]interface{}{
		"firstname": "John",
		"lastname":  "Doe",
		"email":     "john@test.com",
		"password":  "secret",
		"uuid":      uid.String(),
	}

	expected := &service.UserResponse{
		ID:          10,
		Email:       "john@test.com",
		FirstName:   "John",
		LastName:    "Doe",
		DateOfBirth: "2023-01-01T00:00:00Z",
		Available:   true,
	}

	suite.mockUserService.EXPECT().
		Create(gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/users", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.UserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), uint(10), response.ID)
	assert.Equal(suite.T(), "john@test.com", response.Email)
}

// TestCreateUserMissingFields tests that missing required fields yield a 400
func (suite *UserHandlerTestSuite) TestCreateUserMissingFields() {
	requestBody := map[string]interface{}{
		"lastname": "Doe",
	}

	suite.mockUserService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.NewValidationError("", "missing required fields")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/users", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Missing required fields.")
}

// TestCreateUserUnknownEnterprise tests creating a user under an unknown enterprise
func (suite *UserHandlerTestSuite) TestCreateUserUnknownEnterprise() {
	requestBody := map[string]interface{}{
		"firstname": "John",
		"email":     "john@test.com",
		"uuid":      uuid.New().String(),
	}

	suite.mockUserService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrEnterpriseNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/users", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "enterprise not found")
}

// TestCreateUserDuplicateEmail tests that a duplicate email yields a 409
func (suite *UserHandlerTestSuite) TestCreateUserDuplicateEmail() {
	requestBody := map[string]interface{}{
		"firstname": "John",
		"email":     "taken@test.com",
		"uuid":      uuid.New().String(),
	}

	suite.mockUserService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.ErrUserExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/users", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "user already exists with this email")
}

// TestUpdateUser tests a partial update of a user
func (suite *UserHandlerTestSuite) TestUpdateUser() {
	uid := uuid.New()
	requestBody := map[string]interface{}{
		"firstname": "Johnny",
	}

	expected := &service.UserResponse{
		ID:        5,
		Email:     "john@test.com",
		FirstName: "Johnny",
		LastName:  "Doe",
		Available: true,
	}

	suite.mockUserService.EXPECT().
		Update(uid, uint(5), gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/user/%s/5", uid), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.UserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "Johnny", response.FirstName)
	assert.Equal(suite.T(), "Doe", response.LastName)
}

// TestUpdateUserNotFound tests updating a user missing from the enterprise
func (suite *UserHandlerTestSuite) TestUpdateUserNotFound() {
	uid := uuid.New()
	requestBody := map[string]interface{}{
		"firstname": "Johnny",
	}

	suite.mockUserService.EXPECT().
		Update(uid, uint(42), gomock.Any()).
		Return(nil, apperrors.ErrUserNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", fmt.Sprintf("/user/%s/42", uid), requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// TestDeleteUser tests deleting a user
func (suite *UserHandlerTestSuite) TestDeleteUser() {
	uid := uuid.New()

	suite.mockUserService.EXPECT().
		Delete(uid, uint(5)).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/user/%s/5", uid), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Empty(suite.T(), recorder.Body.String())
}

// TestDeleteUserNotFound tests deleting a user missing from the enterprise
func (suite *UserHandlerTestSuite) TestDeleteUserNotFound() {
	uid := uuid.New()

	suite.mockUserService.EXPECT().
		Delete(uid, uint(42)).
		Return(apperrors.ErrUserNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", fmt.Sprintf("/user/%s/42", uid), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// Run the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
