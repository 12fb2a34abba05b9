package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is a named meeting role a club offers (e.g. Timekeeper, Evaluator)
type Role struct {
	gorm.Model
	ClubID      uint   `json:"club_id" gorm:"index;not null"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	IsDeleted   bool   `gorm:"default:false"`
}

// RoleRequest is a member's request to fill a role at a meeting
type RoleRequest struct {
	gorm.Model
	MeetingID uint       `json:"meeting_id" gorm:"index;not null"`
	UserID    uint       `json:"user_id" gorm:"index;not null"`
	RoleID    uint       `json:"role_id" gorm:"index;not null"`
	Status    string     `json:"status" gorm:"default:'PENDING'"`
	DecidedBy *uint      `json:"decided_by"`
	DecidedAt *time.Time `json:"decided_at"`
	IsDeleted bool       `gorm:"default:false"`
}
