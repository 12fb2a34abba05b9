package certificate

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathForIsDeterministic(t *testing.T) {
	first := PathFor("tsf-alpha", 42, 2)
	second := PathFor("tsf-alpha", 42, 2)

	assert.Equal(t, "certificates/tsf-alpha/42/level-2.pdf", first)
	assert.Equal(t, first, second)
}

func TestPathForSanitizesSlug(t *testing.T) {
	assert.Equal(t, "certificates/tsf-alpha/42/level-2.pdf", PathFor("TSF Alpha", 42, 2))
	assert.Equal(t, "certificates/etcpasswd/1/level-1.pdf", PathFor("../etc/passwd", 1, 1))
	assert.Equal(t, "certificates/unknown/1/level-1.pdf", PathFor("!!!", 1, 1))
}

func TestSanitizeSlug(t *testing.T) {
	assert.Equal(t, "tsf-alpha", SanitizeSlug("tsf-alpha"))
	assert.Equal(t, "tsf-alpha", SanitizeSlug(" TSF-Alpha "))
	assert.Equal(t, "tsf-alpha", SanitizeSlug("TSF Alpha"))
	assert.Equal(t, "a-b", SanitizeSlug("a -  b"))
	assert.Equal(t, "ab12", SanitizeSlug("a/b_1.2"))
	assert.Equal(t, "unknown", SanitizeSlug(""))
	assert.Equal(t, "unknown", SanitizeSlug(" - "))
}

func TestHTTPStoreUpload(t *testing.T) {
	var gotPath, gotContentType, gotUpsert, gotAuth string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotUpsert = r.Header.Get("x-upsert")
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store := NewHTTPStore(StoreConfig{
		BaseURL:    server.URL,
		Bucket:     "certificates",
		ServiceKey: "service-key",
		Timeout:    5 * time.Second,
	})

	data := []byte("%PDF-1.4 fake")
	url, err := store.Upload(context.Background(), "certificates/tsf-alpha/42/level-2.pdf", data, "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, "/object/certificates/certificates/tsf-alpha/42/level-2.pdf", gotPath)
	assert.Equal(t, "application/pdf", gotContentType)
	assert.Equal(t, "true", gotUpsert)
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, data, gotBody)
	assert.Equal(t, server.URL+"/object/public/certificates/certificates/tsf-alpha/42/level-2.pdf", url)
}

func TestHTTPStoreUploadServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusInsufficientStorage)
	}))
	defer server.Close()

	store := NewHTTPStore(StoreConfig{BaseURL: server.URL, Bucket: "certificates"})

	_, err := store.Upload(context.Background(), "certificates/c/1/level-1.pdf", []byte("x"), "application/pdf")
	require.Error(t, err)

	var storageErr *StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "certificates/c/1/level-1.pdf", storageErr.Path)
}
