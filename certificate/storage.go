package certificate

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-resty/resty/v2"
)

// ObjectStore writes artifact bytes to durable storage. Upload overwrites any
// existing object at the same path (last write wins) and returns a stable
// publicly resolvable URL for the stored bytes.
type ObjectStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

// PathFor builds the deterministic storage path for a certificate:
// certificates/{club_slug}/{member_id}/level-{n}.pdf. Only sanitized
// identifiers go into the path, never free-form user text.
func PathFor(clubSlug string, memberID uint, levelNumber int) string {
	return fmt.Sprintf("certificates/%s/%d/level-%d.pdf", SanitizeSlug(clubSlug), memberID, levelNumber)
}

// SanitizeSlug reduces a slug to lowercase [a-z0-9-]: whitespace becomes a
// single dash, any other disallowed rune is dropped. Slugs are generated
// server-side already; this guards the path against anything else sneaking in.
func SanitizeSlug(slug string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(strings.TrimSpace(slug)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case r == '-' || unicode.IsSpace(r):
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.TrimRight(b.String(), "-")
	if out == "" {
		return "unknown"
	}
	return out
}

// StoreConfig configures the storage API client.
type StoreConfig struct {
	BaseURL    string // e.g. https://storage.example.com/storage/v1
	Bucket     string
	ServiceKey string
	Timeout    time.Duration
}

// HTTPStore talks to a Supabase-style object storage API.
type HTTPStore struct {
	client *resty.Client
	bucket string
}

// NewHTTPStore builds an HTTPStore from config.
func NewHTTPStore(cfg StoreConfig) *HTTPStore {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.ServiceKey)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	return &HTTPStore{client: client, bucket: cfg.Bucket}
}

// Upload upsert-writes the object and returns its public URL.
func (s *HTTPStore) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "true").
		SetBody(data).
		Post(fmt.Sprintf("/object/%s/%s", s.bucket, path))
	if err != nil {
		return "", &StorageError{Path: path, Err: err}
	}
	if resp.IsError() {
		return "", &StorageError{Path: path, Err: fmt.Errorf("storage returned %d: %s", resp.StatusCode(), resp.String())}
	}

	return fmt.Sprintf("%s/object/public/%s/%s", s.client.BaseURL, s.bucket, path), nil
}
