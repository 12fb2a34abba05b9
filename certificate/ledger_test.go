package certificate

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"clubhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Certificate{}))
	return db
}

func sampleRecord() IssuanceRecord {
	return IssuanceRecord{
		UserID:      42,
		LevelID:     3,
		ClubID:      7,
		FileURL:     "https://storage.example.com/object/public/certificates/certificates/tsf-alpha/42/level-2.pdf",
		StoragePath: "certificates/tsf-alpha/42/level-2.pdf",
		Sha256Hash:  HashBytes([]byte("pdf bytes")),
		IssuedBy:    9,
	}
}

func TestGormLedgerRecord(t *testing.T) {
	db := testDB(t)
	ledger := NewGormLedger(db)

	require.NoError(t, ledger.Record(context.Background(), sampleRecord()))

	var row models.Certificate
	require.NoError(t, db.First(&row).Error)
	assert.Equal(t, uint(42), row.UserID)
	assert.Equal(t, uint(3), row.LevelID)
	assert.Equal(t, uint(7), row.ClubID)
	assert.Equal(t, uint(9), row.IssuedBy)
	assert.False(t, row.IssuedAt.IsZero())
	assert.NotEmpty(t, row.CertificateNumber)
	assert.Len(t, row.Sha256Hash, 64)
}

func TestGormLedgerRejectsDuplicatePair(t *testing.T) {
	db := testDB(t)
	ledger := NewGormLedger(db)

	require.NoError(t, ledger.Record(context.Background(), sampleRecord()))

	err := ledger.Record(context.Background(), sampleRecord())
	require.Error(t, err)

	var persistenceErr *PersistenceError
	require.True(t, errors.As(err, &persistenceErr))
	assert.True(t, persistenceErr.Duplicate)

	// Only the first row exists
	var count int64
	db.Model(&models.Certificate{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGormLedgerAllowsSameUserOtherLevel(t *testing.T) {
	db := testDB(t)
	ledger := NewGormLedger(db)

	require.NoError(t, ledger.Record(context.Background(), sampleRecord()))

	other := sampleRecord()
	other.LevelID = 4
	other.StoragePath = "certificates/tsf-alpha/42/level-3.pdf"
	require.NoError(t, ledger.Record(context.Background(), other))
}

func TestIsDuplicateErr(t *testing.T) {
	assert.True(t, isDuplicateErr(gorm.ErrDuplicatedKey))
	// The sentinel may come back wrapped depending on the driver
	assert.True(t, isDuplicateErr(fmt.Errorf("create certificate: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, isDuplicateErr(errors.New(`ERROR: duplicate key value violates unique constraint "idx_user_level_cert"`)))
	assert.True(t, isDuplicateErr(errors.New("UNIQUE constraint failed: certificates.user_id")))
	assert.False(t, isDuplicateErr(errors.New("connection reset by peer")))
}

func TestAlreadyIssued(t *testing.T) {
	db := testDB(t)
	ledger := NewGormLedger(db)

	issued, err := AlreadyIssued(db, 42, 3)
	require.NoError(t, err)
	assert.False(t, issued)

	require.NoError(t, ledger.Record(context.Background(), sampleRecord()))

	issued, err = AlreadyIssued(db, 42, 3)
	require.NoError(t, err)
	assert.True(t, issued)

	// Other pairs stay unaffected
	issued, err = AlreadyIssued(db, 42, 4)
	require.NoError(t, err)
	assert.False(t, issued)
}
