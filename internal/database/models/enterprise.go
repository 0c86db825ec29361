package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Enterprise represents the tenant root entity. Every User and Product
// belongs to exactly one enterprise. The UUID is the public lookup key;
// the numeric id stays internal.
type Enterprise struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UUID      uuid.UUID `json:"uuid" gorm:"type:uuid;uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Users    []User    `json:"users,omitempty" gorm:"foreignKey:EnterpriseID;constraint:OnDelete:CASCADE"`
	Products []Product `json:"products,omitempty" gorm:"foreignKey:EnterpriseID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate assigns the public UUID if not already set
func (e *Enterprise) BeforeCreate(tx *gorm.DB) error {
	if e.UUID == uuid.Nil {
		e.UUID = uuid.New()
	}
	return nil
}

// TableName returns the table name for Enterprise
func (Enterprise) TableName() string {
	return "enterprises"
}
