package certificate

import (
	"context"
	"errors"
	"strings"
	"time"

	"clubhub/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IssuanceRecord is the ledger row for one completed issuance, before the
// ledger assigns id, issued_at and the certificate serial number.
type IssuanceRecord struct {
	UserID      uint
	LevelID     uint
	ClubID      uint
	FileURL     string
	StoragePath string
	Sha256Hash  string
	IssuedBy    uint
}

// Ledger appends issuance records. Append-only from the pipeline's point of
// view; no update or delete operations are part of the contract.
type Ledger interface {
	Record(ctx context.Context, rec IssuanceRecord) error
}

// GormLedger persists issuance records through GORM.
type GormLedger struct {
	db *gorm.DB
}

func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db}
}

// Record appends one certificate row. A violation of the (user_id, level_id)
// unique index surfaces as a PersistenceError with Duplicate set, so the
// caller can treat a lost issuance race as already-certified.
func (l *GormLedger) Record(ctx context.Context, rec IssuanceRecord) error {
	row := models.Certificate{
		UserID:            rec.UserID,
		LevelID:           rec.LevelID,
		ClubID:            rec.ClubID,
		FileURL:           rec.FileURL,
		StoragePath:       rec.StoragePath,
		Sha256Hash:        rec.Sha256Hash,
		CertificateNumber: uuid.NewString(),
		IssuedBy:          rec.IssuedBy,
		IssuedAt:          time.Now().UTC(),
	}

	if err := l.db.WithContext(ctx).Create(&row).Error; err != nil {
		return &PersistenceError{Duplicate: isDuplicateErr(err), Err: err}
	}
	return nil
}

// AlreadyIssued is the caller-side precondition check: does a certificate
// record already exist for this (user, level)? Kept independent of the
// pipeline so the web layer can run it before invoking Issue.
func AlreadyIssued(db *gorm.DB, userID, levelID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Certificate{}).
		Where("user_id = ? AND level_id = ? AND is_deleted = ?", userID, levelID, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func isDuplicateErr(err error) bool {
	// GORM translates constraint violations to ErrDuplicatedKey when the
	// driver supports it, possibly wrapped; the message check covers drivers
	// that surface the raw database error instead
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
