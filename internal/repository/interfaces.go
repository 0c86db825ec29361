package repository

import (
	"bilemo-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EnterpriseRepositoryInterface defines the interface for enterprise repository operations
type EnterpriseRepositoryInterface interface {
	Create(enterprise *models.Enterprise) error
	GetByUUID(uid uuid.UUID) (*models.Enterprise, error)
	GetAll() ([]models.Enterprise, error)
	Update(enterprise *models.Enterprise) error
	Delete(id uint) error
	GetWithUsers(uid uuid.UUID) (*models.Enterprise, error)
	GetWithProducts(uid uuid.UUID) (*models.Enterprise, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByEnterpriseAndID(enterpriseID uint, id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAllByEnterpriseID(enterpriseID uint) ([]models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
}

// ProductRepositoryInterface defines the interface for product repository operations
type ProductRepositoryInterface interface {
	Create(product *models.Product) error
	GetByEnterpriseAndID(enterpriseID uint, id uint) (*models.Product, error)
	GetAllByEnterpriseID(enterpriseID uint) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
}
