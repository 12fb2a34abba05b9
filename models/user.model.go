package models

import (
	"gorm.io/gorm"
)

// Global roles
const (
	RoleMember = "MEMBER"
	RoleAdmin  = "ADMIN"
	RoleSuper  = "SUPER"
)

// User represents a platform account
type User struct {
	gorm.Model
	Name       string `json:"name" gorm:"not null"`
	Email      string `json:"email" gorm:"uniqueIndex;not null"`
	Password   string `json:"-" gorm:"not null"`
	GlobalRole string `json:"global_role" gorm:"default:'MEMBER'"` // MEMBER, ADMIN, SUPER
	IsDeleted  bool   `gorm:"default:false"`
}
