package models

import (
	"gorm.io/gorm"
)

// Level is an achievement level defined by a club
type Level struct {
	gorm.Model
	ClubID      uint   `json:"club_id" gorm:"index;not null;uniqueIndex:idx_club_level_number"`
	Number      int    `json:"number" gorm:"not null;uniqueIndex:idx_club_level_number"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
	IsDeleted   bool   `gorm:"default:false"`
}
