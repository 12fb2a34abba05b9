package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is one issued certificate record. Append-only: rows are created by
// the issuance pipeline and never updated by it. The composite unique index on
// (user_id, level_id) is the storage-layer defense against concurrent double
// issuance; callers additionally pre-check existence before issuing.
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"index;not null;uniqueIndex:idx_user_level_cert"`
	LevelID           uint      `json:"level_id" gorm:"index;not null;uniqueIndex:idx_user_level_cert"`
	ClubID            uint      `json:"club_id" gorm:"index;not null"`
	FileURL           string    `json:"file_url" gorm:"not null"`
	StoragePath       string    `json:"storage_path" gorm:"not null"`
	Sha256Hash        string    `json:"sha256_hash" gorm:"size:64;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"uniqueIndex"`
	IssuedBy          uint      `json:"issued_by" gorm:"not null"`
	IssuedAt          time.Time `json:"issued_at"`
	IsDeleted         bool      `gorm:"default:false"`
}
