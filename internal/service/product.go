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

// ProductService handles business logic for products, scoped to the
// owning enterprise the same way the user service is.
type ProductService struct {
	repo           repository.ProductRepositoryInterface
	enterpriseRepo repository.EnterpriseRepositoryInterface
	validator      *validator.Validate
}

// NewProductService creates a new product service
func NewProductService(
	repo repository.ProductRepositoryInterface,
	enterpriseRepo repository.EnterpriseRepositoryInterface,
	validator *validator.Validate,
) *ProductService {
	return &ProductService{
		repo:           repo,
		enterpriseRepo: enterpriseRepo,
		validator:      validator,
	}
}

// CreateProductRequest represents the request to create a product.
// The uuid field names the owning enterprise; price is optional.
type CreateProductRequest struct {
	Name           string   `json:"name" validate:"required,max=255"`
	Description    string   `json:"description,omitempty"`
	Price          *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Available      *bool    `json:"available,omitempty"`
	EnterpriseUUID string   `json:"uuid" validate:"required,uuid4"`
}

// UpdateProductRequest represents a partial update of a product.
// Only fields present in the payload are overwritten.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Available   *bool    `json:"available,omitempty"`
}

// ProductResponse is the projection returned for every product operation
type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
	Available   bool    `json:"available"`
}

// ListByEnterprise returns all products owned by the enterprise. A tenant
// with no products yields an empty slice, not an error.
func (s *ProductService) ListByEnterprise(enterpriseUUID uuid.UUID) ([]ProductResponse, error) {
	enterprise, err := s.resolveEnterprise(enterpriseUUID)
	if err != nil {
		return nil, err
	}

	products, err := s.repo.GetAllByEnterpriseID(enterprise.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, *s.toResponse(&products[i]))
	}
	return responses, nil
}

// Get retrieves one product by id within the enterprise
func (s *ProductService) Get(enterpriseUUID uuid.UUID, productID uint) (*ProductResponse, error) {
	product, err := s.resolveProduct(enterpriseUUID, productID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(product), nil
}

// Create validates and persists a new product under the enterprise named
// by req.EnterpriseUUID. Availability defaults to true; creation and
// update timestamps are stamped to now.
func (s *ProductService) Create(req *CreateProductRequest) (*ProductResponse, error) {
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

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	product := &models.Product{
		Name:         req.Name,
		Description:  req.Description,
		Available:    available,
		EnterpriseID: enterprise.ID,
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	if err := s.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return s.toResponse(product), nil
}

// Update applies a partial update to a product within the enterprise.
// GORM restamps UpdatedAt on save; CreatedAt never changes.
func (s *ProductService) Update(enterpriseUUID uuid.UUID, productID uint, req *UpdateProductRequest) (*ProductResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	product, err := s.resolveProduct(enterpriseUUID, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Available != nil {
		product.Available = *req.Available
	}

	if err := s.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return s.toResponse(product), nil
}

// Delete permanently removes a product within the enterprise, failing
// NotFound when it does not exist.
func (s *ProductService) Delete(enterpriseUUID uuid.UUID, productID uint) error {
	product, err := s.resolveProduct(enterpriseUUID, productID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(product.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

func (s *ProductService) resolveEnterprise(enterpriseUUID uuid.UUID) (*models.Enterprise, error) {
	enterprise, err := s.enterpriseRepo.GetByUUID(enterpriseUUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEnterpriseNotFound
		}
		return nil, fmt.Errorf("failed to get enterprise: %w", err)
	}
	return enterprise, nil
}

func (s *ProductService) resolveProduct(enterpriseUUID uuid.UUID, productID uint) (*models.Product, error) {
	enterprise, err := s.resolveEnterprise(enterpriseUUID)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.GetByEnterpriseAndID(enterprise.ID, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

func (s *ProductService) toResponse(product *models.Product) *ProductResponse {
	return &ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		CreatedAt:   product.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   product.UpdatedAt.Format(time.RFC3339),
		Available:   product.Available,
	}
}
