package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLog records who did what to which row. Written on approval decisions
// and certificate issuance; read-only everywhere else.
type AuditLog struct {
	gorm.Model
	ActorUserID uint           `json:"actor_user_id" gorm:"index;not null"`
	Action      string         `json:"action" gorm:"index;not null"`
	TargetTable string         `json:"target_table" gorm:"not null"`
	TargetID    string         `json:"target_id" gorm:"not null"`
	Payload     datatypes.JSON `json:"payload"`
}
