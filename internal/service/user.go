package service

import (
	"errors"
	"fmt"
	"time"

	"bilemo-backend/internal/database/models"
	apperrors "bilemo-backend/internal/errors"
	"bilemo-backend/internal/repository"
	"bilemo-backend/internal/security"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles business logic for users. Every operation is scoped
// to the owning enterprise, resolved by its public UUID first.
type UserService struct {
	repo           repository.UserRepositoryInterface
	enterpriseRepo repository.EnterpriseRepositoryInterface
	hasher         security.PasswordHasher
	validator      *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(
	repo repository.UserRepositoryInterface,
	enterpriseRepo repository.EnterpriseRepositoryInterface,
	hasher security.PasswordHasher,
	validator *validator.Validate,
) *UserService {
	return &UserService{
		repo:           repo,
		enterpriseRepo: enterpriseRepo,
		hasher:         hasher,
		validator:      validator,
	}
}

// CreateUserRequest represents the request to create a user.
// The uuid field names the owning enterprise.
type CreateUserRequest struct {
	FirstName      string `json:"firstname" validate:"required,max=100"`
	LastName       string `json:"lastname,omitempty" validate:"omitempty,max=100"`
	Email          string `json:"email" validate:"required,email,max=255"`
	Password       string `json:"password,omitempty"`
	EnterpriseUUID string `json:"uuid" validate:"required,uuid4"`
	Available      *bool  `json:"available,omitempty"`
}

// UpdateUserRequest represents a partial update of a user.
// Only fields present in the payload are overwritten.
type UpdateUserRequest struct {
	FirstName *string `json:"firstname,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"lastname,omitempty" validate:"omitempty,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Available *bool   `json:"available,omitempty"`
}

// UserResponse is the projection returned for every user operation.
// The password hash is never part of it.
type UserResponse struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	DateOfBirth string `json:"date_of_birth"`
	Available   bool   `json:"available"`
}

// ListByEnterprise returns all users owned by the enterprise. A tenant
// with no users yields an empty slice, not an error.
func (s *UserService) ListByEnterprise(enterpriseUUID uuid.UUID) ([]UserResponse, error) {
	enterprise, err := s.resolveEnterprise(enterpriseUUID)
	if err != nil {
		return nil, err
	}

	users, err := s.repo.GetAllByEnterpriseID(enterprise.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *s.toResponse(&users[i]))
	}
	return responses, nil
}

// Get retrieves one user by id within the enterprise
func (s *UserService) Get(enterpriseUUID uuid.UUID, userID uint) (*UserResponse, error) {
	user, err := s.resolveUser(enterpriseUUID, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(user), nil
}

// Create creates a user under the enterprise named by req.EnterpriseUUID.
// The role defaults to ROLE_USER, the date of birth is stamped to now and
// the password, when supplied, is hashed before storage.
func (s *UserService) Create(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "missing required fields")
	}

	enterpriseUUID, err := uuid.Parse(req.EnterpriseUUID)
	if err != nil {
		return nil, apperrors.NewValidationError("uuid", "invalid enterprise uuid")
	}

	enterprise, err := s.resolveEnterprise(enterpriseUUID)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user by email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		DateOfBirth:  time.Now().UTC(),
		Available:    available,
		Roles:        models.RoleList{models.RoleUser},
		EnterpriseID: enterprise.ID,
	}

	if req.Password != "" {
		hashed, err := s.hasher.Hash(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}

	if err := s.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.toResponse(user), nil
}

// Update applies a partial update to a user within the enterprise. Fields
// absent from the payload keep their prior values; the owning enterprise
// is immutable.
func (s *UserService) Update(enterpriseUUID uuid.UUID, userID uint, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	user, err := s.resolveUser(enterpriseUUID, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Available != nil {
		user.Available = *req.Available
	}

	if err := s.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return s.toResponse(user), nil
}

// Delete permanently removes a user within the enterprise
func (s *UserService) Delete(enterpriseUUID uuid.UUID, userID uint) error {
	user, err := s.resolveUser(enterpriseUUID, userID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(user.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}

func (s *UserService) resolveEnterprise(enterpriseUUID uuid.UUID) (*models.Enterprise, error) {
	enterprise, err := s.enterpriseRepo.GetByUUID(enterpriseUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnterpriseNotFound
		}
		return nil, fmt.Errorf("failed to get enterprise: %w", err)
	}
	return enterprise, nil
}

func (s *UserService) resolveUser(enterpriseUUID uuid.UUID, userID uint) (*models.User, error) {
	enterprise, err := s.resolveEnterprise(enterpriseUUID)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEnterpriseAndID(enterprise.ID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *UserService) toResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		DateOfBirth: user.DateOfBirth.Format(time.RFC3339),
		Available:   user.Available,
	}
}
