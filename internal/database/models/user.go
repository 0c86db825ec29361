package models

import (
	"time"
)

// RoleUser is the role granted to every user at creation.
const RoleUser = "ROLE_USER"

// RoleList is stored as a jsonb column via the GORM JSON serializer.
type RoleList []string

// User represents an end user owned by exactly one Enterprise.
// The password column holds a bcrypt hash and is never serialized.
type User struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	FirstName    string      `json:"firstname" gorm:"column:firstname;not null;size:100" validate:"required,max=100"`
	LastName     string      `json:"lastname" gorm:"column:lastname;size:100" validate:"max=100"`
	Email        string      `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Password     string      `json:"-" gorm:"size:255"`
	DateOfBirth  time.Time   `json:"date_of_birth"`
	Available    bool        `json:"available" gorm:"not null;default:true"`
	Roles        RoleList    `json:"roles" gorm:"type:jsonb;serializer:json"`
	EnterpriseID uint        `json:"enterprise_id" gorm:"index;not null"`
	Enterprise   *Enterprise `json:"-" gorm:"foreignKey:EnterpriseID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
