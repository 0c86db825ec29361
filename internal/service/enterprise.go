package service

import (
	"errors"
	"fmt"
	"time"

	"bilemo-backend/internal/database/models"
	apperrors "bilemo-backend/internal/errors"
	"bilemo-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnterpriseService handles business logic for enterprises
type EnterpriseService struct {
	repo      repository.EnterpriseRepositoryInterface
	validator *validator.Validate
}

// NewEnterpriseService creates a new enterprise service
func NewEnterpriseService(repo repository.EnterpriseRepositoryInterface, validator *validator.Validate) *EnterpriseService {
	return &EnterpriseService{
		repo:      repo,
		validator: validator,
	}
}

// CreateEnterpriseRequest represents the request to create an enterprise
type CreateEnterpriseRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// UpdateEnterpriseRequest represents a partial update of an enterprise.
// Only fields present in the payload are overwritten.
type UpdateEnterpriseRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,max=255"`
}

// EnterpriseResponse represents the response for enterprise operations
type EnterpriseResponse struct {
	ID        uint   `json:"id"`
	UUID      string `json:"uuid"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// Create creates a new enterprise with a fresh v4 UUID
func (s *EnterpriseService) Create(req *CreateEnterpriseRequest) (*EnterpriseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			for _, fieldErr := range fieldErrors {
				switch fieldErr.Tag() {
				case "required":
					return nil, apperrors.NewValidationError("name", "name is required")
				case "max":
					return nil, apperrors.NewValidationError("name", "name must be at most 255 characters")
				}
			}
		}
		return nil, apperrors.NewValidationError("name", err.Error())
	}

	enterprise := &models.Enterprise{
		Name: req.Name,
		UUID: uuid.New(),
	}

	if err := s.repo.Create(enterprise); err != nil {
		return nil, fmt.Errorf("failed to create enterprise: %w", err)
	}

	return s.toResponse(enterprise), nil
}

// List returns all enterprises
func (s *EnterpriseService) List() ([]EnterpriseResponse, error) {
	enterprises, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list enterprises: %w", err)
	}

	responses := make([]EnterpriseResponse, 0, len(enterprises))
	for i := range enterprises {
		responses = append(responses, *s.toResponse(&enterprises[i]))
	}
	return responses, nil
}

// GetByUUID retrieves an enterprise by its public UUID
func (s *EnterpriseService) GetByUUID(uid uuid.UUID) (*EnterpriseResponse, error) {
	enterprise, err := s.repo.GetByUUID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnterpriseNotFound
		}
		return nil, fmt.Errorf("failed to get enterprise: %w", err)
	}

	return s.toResponse(enterprise), nil
}

// Update applies a partial update to an enterprise. The UUID is never
// reassigned.
func (s *EnterpriseService) Update(uid uuid.UUID, req *UpdateEnterpriseRequest) (*EnterpriseResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	enterprise, err := s.repo.GetByUUID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnterpriseNotFound
		}
		return nil, fmt.Errorf("failed to get enterprise: %w", err)
	}

	if req.Name != nil {
		enterprise.Name = *req.Name
	}

	if err := s.repo.Update(enterprise); err != nil {
		return nil, fmt.Errorf("failed to update enterprise: %w", err)
	}

	return s.toResponse(enterprise), nil
}

// Delete removes an enterprise. Owned users and products are
// cascade-deleted at the schema level.
func (s *EnterpriseService) Delete(uid uuid.UUID) error {
	enterprise, err := s.repo.GetByUUID(uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrEnterpriseNotFound
		}
		return fmt.Errorf("failed to get enterprise: %w", err)
	}

	if err := s.repo.Delete(enterprise.ID); err != nil {
		return fmt.Errorf("failed to delete enterprise: %w", err)
	}

	return nil
}

func (s *EnterpriseService) toResponse(enterprise *models.Enterprise) *EnterpriseResponse {
	return &EnterpriseResponse{
		ID:        enterprise.ID,
		UUID:      enterprise.UUID.String(),
		Name:      enterprise.Name,
		CreatedAt: enterprise.CreatedAt.Format(time.RFC3339),
	}
}
