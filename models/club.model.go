package models

import (
	"time"

	"gorm.io/gorm"
)

// Request/approval statuses shared across club, membership, role and achievement flows
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Club represents an approved club
type Club struct {
	gorm.Model
	Name            string `json:"name" gorm:"not null"`
	Slug            string `json:"slug" gorm:"uniqueIndex;not null"`
	StateID         uint   `json:"state_id" gorm:"index"`
	DistrictID      uint   `json:"district_id" gorm:"index"`
	InstitutionID   uint   `json:"institution_id" gorm:"index"`
	CreatedByUserID uint   `json:"created_by_user_id"`
	Status          string `json:"status" gorm:"default:'PENDING'"` // PENDING, APPROVED, REJECTED
	IsDeleted       bool   `gorm:"default:false"`
}

// ClubAdmin links an admin user to the club they manage
type ClubAdmin struct {
	gorm.Model
	ClubID    uint `json:"club_id" gorm:"index;not null"`
	UserID    uint `json:"user_id" gorm:"index;not null"`
	Active    bool `json:"active" gorm:"default:true"`
	IsDeleted bool `gorm:"default:false"`
}

// ClubMember is a user's membership in a club
type ClubMember struct {
	gorm.Model
	ClubID      uint       `json:"club_id" gorm:"index;not null"`
	UserID      uint       `json:"user_id" gorm:"index;not null"`
	Status      string     `json:"status" gorm:"default:'PENDING'"` // PENDING, APPROVED, REJECTED
	IsOrganizer bool       `json:"is_organizer" gorm:"default:false"`
	JoinedAt    *time.Time `json:"joined_at"`
	IsDeleted   bool       `gorm:"default:false"`
}

// ClubRequest is a member's proposal for a new club, decided by a super admin
type ClubRequest struct {
	gorm.Model
	RequestedByUserID uint       `json:"requested_by_user_id" gorm:"index;not null"`
	ClubName          string     `json:"club_name" gorm:"not null"`
	StateID           uint       `json:"state_id"`
	DistrictID        uint       `json:"district_id"`
	InstitutionText   string     `json:"institution_text"`
	Status            string     `json:"status" gorm:"default:'PENDING'"`
	DecidedBy         *uint      `json:"decided_by"`
	DecidedAt         *time.Time `json:"decided_at"`
	IsDeleted         bool       `gorm:"default:false"`
}
