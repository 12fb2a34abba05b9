package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Notification channels
const (
	ChannelInApp = "IN_APP"
	ChannelEmail = "EMAIL"
)

// Notification types
const (
	NotifCertificateIssued  = "certificate_issued"
	NotifAchievementDecided = "achievement_decided"
	NotifRoleRequestDecided = "role_request_decided"
	NotifMembershipDecided  = "membership_decided"
	NotifClubRequestDecided = "club_request_decided"
	NotifMeetingReminder    = "meeting_reminder"
)

// Notification is an in-app or email message addressed to one user
type Notification struct {
	gorm.Model
	UserID    uint           `json:"user_id" gorm:"index;not null"`
	Type      string         `json:"type" gorm:"index;not null"`
	Message   string         `json:"message" gorm:"not null"`
	Payload   datatypes.JSON `json:"payload"`
	Channel   string         `json:"channel" gorm:"default:'IN_APP'"` // IN_APP, EMAIL
	SentAt    *time.Time     `json:"sent_at"`
	ReadAt    *time.Time     `json:"read_at"`
	IsDeleted bool           `gorm:"default:false"`
}
