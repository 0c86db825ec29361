package models

import (
	"time"
)

// Product represents a catalog item owned by exactly one Enterprise.
// CreatedAt and UpdatedAt are tracked independently; GORM restamps
// UpdatedAt on every save.
type Product struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	Name         string      `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Description  string      `json:"description" gorm:"type:text"`
	Price        float64     `json:"price" gorm:"not null;default:0" validate:"gte=0"`
	Available    bool        `json:"available" gorm:"not null;default:true"`
	EnterpriseID uint        `json:"enterprise_id" gorm:"index;not null"`
	Enterprise   *Enterprise `json:"-" gorm:"foreignKey:EnterpriseID"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// TableName returns the table name for Product
func (Product) TableName() string {
	return "products"
}
