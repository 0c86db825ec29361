package repository

import (
	"bilemo-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user inside a transaction
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
}

// GetByEnterpriseAndID retrieves a user by its id scoped to the owning enterprise
func (r *UserRepository) GetByEnterpriseAndID(enterpriseID uint, id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ? AND enterprise_id = ?", id, enterpriseID).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetAllByEnterpriseID retrieves all users owned by an enterprise
func (r *UserRepository) GetAllByEnterpriseID(enterpriseID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("enterprise_id = ?", enterpriseID).Order("id").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update updates a user inside a transaction
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Save(user).Error
	})
}

// Delete permanently deletes a user
func (r *UserRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.User{}, "id = ?", id).Error
	})
}
