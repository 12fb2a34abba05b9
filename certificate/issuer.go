package certificate

import (
	"context"
	"errors"
	"time"
)

// IssueRequest carries everything the pipeline needs, fully resolved by the
// caller: identifiers for the ledger row plus the display fields for the
// document. The pipeline trusts the caller's preconditions (the achievement
// is approved, no record exists yet) and does not re-verify them.
type IssueRequest struct {
	UserID  uint
	ClubID  uint
	LevelID uint

	RecipientName    string
	ClubName         string
	ClubSlug         string
	LevelNumber      int
	LevelTitle       string
	LevelDescription string

	IssuerID uint
}

// IssueResult is returned on full success only.
type IssueResult struct {
	Path string
	URL  string
	Hash string
}

// Issuer runs the issuance pipeline: render, hash, store, record. Strictly
// sequential; the ledger write is never attempted unless the storage write
// succeeded, because a ledger entry pointing at a missing artifact is worse
// than a stored-but-unrecorded artifact.
type Issuer struct {
	store  ObjectStore
	ledger Ledger
	now    func() time.Time
}

// NewIssuer wires the pipeline. A nil clock defaults to time.Now.
func NewIssuer(store ObjectStore, ledger Ledger, clock func() time.Time) *Issuer {
	if clock == nil {
		clock = time.Now
	}
	return &Issuer{store: store, ledger: ledger, now: clock}
}

// Issue produces one certificate. It either fully succeeds and returns the
// locator plus content hash, or fully fails with one of ValidationError,
// RenderError, StorageError or PersistenceError. Any failure before the
// ledger commit leaves the member not certified; an artifact left behind by
// a failed ledger write is orphaned but harmless, since a retry overwrites
// the same deterministic path.
func (i *Issuer) Issue(ctx context.Context, req IssueRequest) (*IssueResult, error) {
	pdfBytes, err := Render(CertificateData{
		RecipientName:    req.RecipientName,
		ClubName:         req.ClubName,
		LevelNumber:      req.LevelNumber,
		LevelTitle:       req.LevelTitle,
		LevelDescription: req.LevelDescription,
		IssueDate:        i.now(),
	})
	if err != nil {
		return nil, err
	}

	hash := HashBytes(pdfBytes)
	path := PathFor(req.ClubSlug, req.UserID, req.LevelNumber)

	url, err := i.store.Upload(ctx, path, pdfBytes, "application/pdf")
	if err != nil {
		var se *StorageError
		if !errors.As(err, &se) {
			err = &StorageError{Path: path, Err: err}
		}
		return nil, err
	}

	err = i.ledger.Record(ctx, IssuanceRecord{
		UserID:      req.UserID,
		LevelID:     req.LevelID,
		ClubID:      req.ClubID,
		FileURL:     url,
		StoragePath: path,
		Sha256Hash:  hash,
		IssuedBy:    req.IssuerID,
	})
	if err != nil {
		var pe *PersistenceError
		if !errors.As(err, &pe) {
			err = &PersistenceError{Err: err}
		}
		return nil, err
	}

	return &IssueResult{Path: path, URL: url, Hash: hash}, nil
}
