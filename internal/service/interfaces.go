package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EnterpriseServiceInterface defines the interface for enterprise service operations
type EnterpriseServiceInterface interface {
	Create(req *CreateEnterpriseRequest) (*EnterpriseResponse, error)
	List() ([]EnterpriseResponse, error)
	GetByUUID(uid uuid.UUID) (*EnterpriseResponse, error)
	Update(uid uuid.UUID, req *UpdateEnterpriseRequest) (*EnterpriseResponse, error)
	Delete(uid uuid.UUID) error
}

// UserServiceInterface defines the interface for user service operations
type UserServiceInterface interface {
	ListByEnterprise(enterpriseUUID uuid.UUID) ([]UserResponse, error)
	Get(enterpriseUUID uuid.UUID, userID uint) (*UserResponse, error)
	Create(req *CreateUserRequest) (*UserResponse, error)
	Update(enterpriseUUID uuid.UUID, userID uint, req *UpdateUserRequest) (*UserResponse, error)
	Delete(enterpriseUUID uuid.UUID, userID uint) error
}

// ProductServiceInterface defines the interface for product service operations
type ProductServiceInterface interface {
	ListByEnterprise(enterpriseUUID uuid.UUID) ([]ProductResponse, error)
	Get(enterpriseUUID uuid.UUID, productID uint) (*ProductResponse, error)
	Create(req *CreateProductRequest) (*ProductResponse, error)
	Update(enterpriseUUID uuid.UUID, productID uint, req *UpdateProductRequest) (*ProductResponse, error)
	Delete(enterpriseUUID uuid.UUID, productID uint) error
}
