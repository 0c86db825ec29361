package repository

import (
	"bilemo-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnterpriseRepository handles database operations for enterprises
type EnterpriseRepository struct {
	db *gorm.DB
}

// NewEnterpriseRepository creates a new enterprise repository
func NewEnterpriseRepository(db *gorm.DB) *EnterpriseRepository {
	return &EnterpriseRepository{db: db}
}

// Create creates a new enterprise inside a transaction
func (r *EnterpriseRepository) Create(enterprise *models.Enterprise) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(enterprise).Error
	})
}

// GetByUUID retrieves an enterprise by its public UUID
func (r *EnterpriseRepository) GetByUUID(uid uuid.UUID) (*models.Enterprise, error) {
	var enterprise models.Enterprise
	err := r.db.First(&enterprise, "uuid = ?", uid).Error
	if err != nil {
		return nil, err
	}
	return &enterprise, nil
}

// GetAll retrieves all enterprises ordered by id
func (r *EnterpriseRepository) GetAll() ([]models.Enterprise, error) {
	var enterprises []models.Enterprise
	err := r.db.Order("id").Find(&enterprises).Error
	if err != nil {
		return nil, err
	}
	return enterprises, nil
}

// Update updates an enterprise inside a transaction
func (r *EnterpriseRepository) Update(enterprise *models.Enterprise) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(enterprise).Error
	})
}

// Delete deletes an enterprise. Owned users and products go with it
// through the ON DELETE CASCADE constraints.
func (r *EnterpriseRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.Enterprise{}, "id = ?", id).Error
	})
}

// GetWithUsers retrieves an enterprise with its users preloaded
func (r *EnterpriseRepository) GetWithUsers(uid uuid.UUID) (*models.Enterprise, error) {
	var enterprise models.Enterprise
	err := r.db.Preload("Users").First(&enterprise, "uuid = ?", uid).Error
	if err != nil {
		return nil, err
	}
	return &enterprise, nil
}

// GetWithProducts retrieves an enterprise with its products preloaded
func (r *EnterpriseRepository) GetWithProducts(uid uuid.UUID) (*models.Enterprise, error) {
	var enterprise models.Enterprise
	err := r.db.Preload("Products").First(&enterprise, "uuid = ?", uid).Error
	if err != nil {
		return nil, err
	}
	return &enterprise, nil
}
