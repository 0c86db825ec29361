package repository

import (
	"bilemo-backend/internal/database/models"

	"gorm.io/gorm"
)

// ProductRepository handles database operations for products
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product inside a transaction
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(product).Error
	})
}

// GetByEnterpriseAndID retrieves a product by its id scoped to the owning enterprise
func (r *ProductRepository) GetByEnterpriseAndID(enterpriseID uint, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, "id = ? AND enterprise_id = ?", id, enterpriseID).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetAllByEnterpriseID retrieves all products owned by an enterprise
func (r *ProductRepository) GetAllByEnterpriseID(enterpriseID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Where("enterprise_id = ?", enterpriseID).Order("id").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Update updates a product inside a transaction
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(product).Error
	})
}

// Delete permanently deletes a product
func (r *ProductRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	})
}
