package testutils

import (
	"fmt"
	"time"

	"bilemo-backend/internal/database/models"

	"github.com/google/uuid"
)

// EnterpriseFactory provides methods to create test Enterprise data
type EnterpriseFactory struct{}

// NewEnterpriseFactory creates a new EnterpriseFactory
func NewEnterpriseFactory() *EnterpriseFactory {
	return &EnterpriseFactory{}
}

// Create creates a test Enterprise with default values
func (f *EnterpriseFactory) Create() *models.Enterprise {
	return &models.Enterprise{
		UUID:      uuid.New(),
		Name:      "Test Enterprise",
		CreatedAt: time.Now(),
	}
}

// WithName sets a custom name for the enterprise
func (f *EnterpriseFactory) WithName(name string) *models.Enterprise {
	enterprise := f.Create()
	enterprise.Name = name
	return enterprise
}

// WithUUID sets a fixed public UUID for the enterprise
func (f *EnterpriseFactory) WithUUID(uid uuid.UUID) *models.Enterprise {
	enterprise := f.Create()
	enterprise.UUID = uid
	return enterprise
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values.
// Email is derived from a fresh UUID so repeated calls never collide
// on the unique email index.
func (f *UserFactory) Create() *models.User {
	return &models.User{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       fmt.Sprintf("john.doe+%s@test.com", uuid.New().String()[:8]),
		DateOfBirth: time.Now().UTC(),
		Available:   true,
		Roles:       models.RoleList{models.RoleUser},
	}
}

// WithEnterprise sets the owning enterprise for the user
func (f *UserFactory) WithEnterprise(enterpriseID uint) *models.User {
	user := f.Create()
	user.EnterpriseID = enterpriseID
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithName sets custom first and last names for the user
func (f *UserFactory) WithName(firstName, lastName string) *models.User {
	user := f.Create()
	user.FirstName = firstName
	user.LastName = lastName
	return user
}

// ProductFactory provides methods to create test Product data
type ProductFactory struct{}

// NewProductFactory creates a new ProductFactory
func NewProductFactory() *ProductFactory {
	return &ProductFactory{}
}

// Create creates a test Product with default values
func (f *ProductFactory) Create() *models.Product {
	return &models.Product{
		Name:        "Test Phone",
		Description: "A test product for testing purposes",
		Price:       499.99,
		Available:   true,
	}
}

// WithEnterprise sets the owning enterprise for the product
func (f *ProductFactory) WithEnterprise(enterpriseID uint) *models.Product {
	product := f.Create()
	product.EnterpriseID = enterpriseID
	return product
}

// WithName sets a custom name for the product
func (f *ProductFactory) WithName(name string) *models.Product {
	product := f.Create()
	product.Name = name
	return product
}

// WithPrice sets a custom price for the product
func (f *ProductFactory) WithPrice(price float64) *models.Product {
	product := f.Create()
	product.Price = price
	return product
}

// FactorySet provides access to all factories
type FactorySet struct {
	Enterprise *EnterpriseFactory
	User       *UserFactory
	Product    *ProductFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Enterprise: NewEnterpriseFactory(),
		User:       NewUserFactory(),
		Product:    NewProductFactory(),
	}
}
