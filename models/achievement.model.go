package models

import (
	"time"

	"gorm.io/gorm"
)

// AchievementRequest is a member's claim to have completed a level at a meeting.
// Approved requests feed certificate eligibility and the leaderboard.
type AchievementRequest struct {
	gorm.Model
	UserID    uint       `json:"user_id" gorm:"index;not null"`
	LevelID   uint       `json:"level_id" gorm:"index;not null"`
	MeetingID uint       `json:"meeting_id" gorm:"index;not null"`
	Status    string     `json:"status" gorm:"default:'PENDING'"`
	DecidedBy *uint      `json:"decided_by"`
	DecidedAt *time.Time `json:"decided_at"`
	Notes     string     `json:"notes"`
	IsDeleted bool       `gorm:"default:false"`
}
