package certificate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	uploads []string
	failErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *fakeStore) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return "", s.failErr
	}
	s.uploads = append(s.uploads, path)
	s.objects[path] = data
	s.types[path] = contentType
	return "https://storage.test/object/public/certificates/" + path, nil
}

type fakeLedger struct {
	mu       sync.Mutex
	records []IssuanceRecord
	unique  bool // emulate the (user, level) unique constraint
	failErr error
}

func (l *fakeLedger) Record(ctx context.Context, rec IssuanceRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failErr != nil {
		return l.failErr
	}
	if l.unique {
		for _, existing := range l.records {
			if existing.UserID == rec.UserID && existing.LevelID == rec.LevelID {
				return &PersistenceError{Duplicate: true, Err: errors.New("duplicate key")}
			}
		}
	}
	l.records = append(l.records, rec)
	return nil
}

func fixedClock() time.Time {
	return time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
}

func sampleRequest() IssueRequest {
	return IssueRequest{
		UserID:           42,
		ClubID:           7,
		LevelID:          3,
		RecipientName:    "Jane Doe",
		ClubName:         "TSF Alpha Club",
		ClubSlug:         "tsf-alpha",
		LevelNumber:      2,
		LevelTitle:       "Intermediate",
		LevelDescription: "Developing speaking skills",
		IssuerID:         9,
	}
}

func TestIssueEndToEnd(t *testing.T) {
	store := newFakeStore()
	ledger := &fakeLedger{unique: true}
	issuer := NewIssuer(store, ledger, fixedClock)

	result, err := issuer.Issue(context.Background(), sampleRequest())
	require.NoError(t, err)

	assert.Equal(t, "certificates/tsf-alpha/42/level-2.pdf", result.Path)
	assert.Equal(t, "https://storage.test/object/public/certificates/certificates/tsf-alpha/42/level-2.pdf", result.URL)
	assert.Len(t, result.Hash, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", result.Hash)

	require.Len(t, ledger.records, 1)
	rec := ledger.records[0]
	assert.Equal(t, uint(42), rec.UserID)
	assert.Equal(t, uint(3), rec.LevelID)
	assert.Equal(t, uint(7), rec.ClubID)
	assert.Equal(t, uint(9), rec.IssuedBy)
	assert.Equal(t, result.URL, rec.FileURL)
	assert.Equal(t, result.Path, rec.StoragePath)
	assert.Equal(t, result.Hash, rec.Sha256Hash)

	assert.Equal(t, "application/pdf", store.types[result.Path])
}

func TestIssueHashMatchesStoredBytes(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store, &fakeLedger{}, fixedClock)

	result, err := issuer.Issue(context.Background(), sampleRequest())
	require.NoError(t, err)

	stored, ok := store.objects[result.Path]
	require.True(t, ok)
	assert.Equal(t, HashBytes(stored), result.Hash)
}

func TestIssueTwiceOverwritesSamePath(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store, &fakeLedger{}, fixedClock)

	first, err := issuer.Issue(context.Background(), sampleRequest())
	require.NoError(t, err)
	second, err := issuer.Issue(context.Background(), sampleRequest())
	require.NoError(t, err)

	// Both uploads target the identical deterministic path
	require.Len(t, store.uploads, 2)
	assert.Equal(t, store.uploads[0], store.uploads[1])
	assert.Equal(t, first.Path, second.Path)

	// Only one object exists at that path after both issuances
	assert.Len(t, store.objects, 1)
}

func TestIssueValidationFailureHasNoSideEffects(t *testing.T) {
	fields := []struct {
		name string
		mut  func(*IssueRequest)
	}{
		{"recipient_name", func(r *IssueRequest) { r.RecipientName = "" }},
		{"club_name", func(r *IssueRequest) { r.ClubName = "" }},
		{"level_title", func(r *IssueRequest) { r.LevelTitle = "" }},
		{"level_description", func(r *IssueRequest) { r.LevelDescription = "" }},
	}

	for _, tc := range fields {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			ledger := &fakeLedger{}
			issuer := NewIssuer(store, ledger, fixedClock)

			req := sampleRequest()
			tc.mut(&req)

			result, err := issuer.Issue(context.Background(), req)
			require.Error(t, err)
			assert.Nil(t, result)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.name, validationErr.Field)

			// Neither the store nor the ledger was touched
			assert.Empty(t, store.uploads)
			assert.Empty(t, ledger.records)
		})
	}
}

func TestIssueStorageFailureSkipsLedger(t *testing.T) {
	store := newFakeStore()
	store.failErr = errors.New("network unreachable")
	ledger := &fakeLedger{}
	issuer := NewIssuer(store, ledger, fixedClock)

	result, err := issuer.Issue(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Nil(t, result)

	var storageErr *StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "certificates/tsf-alpha/42/level-2.pdf", storageErr.Path)

	// Ordering invariant: the ledger is never written after a storage failure
	assert.Empty(t, ledger.records)
}

func TestIssueLedgerFailureLeavesOrphanedArtifact(t *testing.T) {
	store := newFakeStore()
	ledger := &fakeLedger{failErr: errors.New("connection reset")}
	issuer := NewIssuer(store, ledger, fixedClock)

	result, err := issuer.Issue(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Nil(t, result)

	var persistenceErr *PersistenceError
	require.True(t, errors.As(err, &persistenceErr))
	assert.False(t, persistenceErr.Duplicate)

	// The artifact stays in storage; a retry overwrites the same path
	assert.Len(t, store.objects, 1)

	ledger.failErr = nil
	retried, err := issuer.Issue(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Len(t, store.objects, 1)
	assert.Equal(t, "certificates/tsf-alpha/42/level-2.pdf", retried.Path)
}

func TestConcurrentIssuanceWithoutConstraintDuplicates(t *testing.T) {
	// Without the ledger's unique constraint, two racing issuances for the
	// same (member, level) both commit; the constraint is what prevents it.
	store := newFakeStore()
	ledger := &fakeLedger{unique: false}
	issuer := NewIssuer(store, ledger, fixedClock)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = issuer.Issue(context.Background(), sampleRequest())
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Len(t, ledger.records, 2)
	// Storage still holds a single object thanks to the deterministic path
	assert.Len(t, store.objects, 1)
}

func TestConcurrentIssuanceWithConstraintKeepsOneRecord(t *testing.T) {
	store := newFakeStore()
	ledger := &fakeLedger{unique: true}
	issuer := NewIssuer(store, ledger, fixedClock)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = issuer.Issue(context.Background(), sampleRequest())
		}(i)
	}
	wg.Wait()

	var succeeded, duplicates int
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var persistenceErr *PersistenceError
		require.True(t, errors.As(err, &persistenceErr), "unexpected error: %v", err)
		if persistenceErr.Duplicate {
			duplicates++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, duplicates)
	assert.Len(t, ledger.records, 1)
}

func TestIssueUsesInjectedClock(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store, &fakeLedger{}, fixedClock)

	result, err := issuer.Issue(context.Background(), sampleRequest())
	require.NoError(t, err)

	// Same inputs and same injected date produce the same document bytes
	again, err := issuer.Issue(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, result.Hash, again.Hash)
}

func TestIssueDistinctMembersGetDistinctPaths(t *testing.T) {
	store := newFakeStore()
	issuer := NewIssuer(store, &fakeLedger{}, fixedClock)

	first, err := issuer.Issue(context.Background(), sampleRequest())
	require.NoError(t, err)

	other := sampleRequest()
	other.UserID = 43
	other.RecipientName = "John Roe"
	second, err := issuer.Issue(context.Background(), other)
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
	assert.Equal(t, fmt.Sprintf("certificates/tsf-alpha/%d/level-2.pdf", other.UserID), second.Path)
	assert.Len(t, store.objects, 2)
}
