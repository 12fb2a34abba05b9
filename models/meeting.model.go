package models

import (
	"time"

	"gorm.io/gorm"
)

// Meeting is a scheduled club session targeting a level
type Meeting struct {
	gorm.Model
	ClubID      uint      `json:"club_id" gorm:"index;not null"`
	LevelID     uint      `json:"level_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	ScheduledAt time.Time `json:"scheduled_at" gorm:"index;not null"`
	Venue       string    `json:"venue" gorm:"not null"`
	Notes       string    `json:"notes"`
	IsDeleted   bool      `gorm:"default:false"`
}

// Task is an evaluated exercise within a meeting
type Task struct {
	gorm.Model
	MeetingID       uint   `json:"meeting_id" gorm:"index;not null"`
	LevelID         uint   `json:"level_id" gorm:"index;not null"`
	Title           string `json:"title" gorm:"not null"`
	Description     string `json:"description"`
	EvaluatorUserID *uint  `json:"evaluator_user_id"`
	IsDeleted       bool   `gorm:"default:false"`
}
