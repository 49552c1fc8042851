package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"sklep-api/internal/config"

	"github.com/stretchr/testify/require"
)

func testS3Config(endpoint string) config.S3Config {
	return config.S3Config{
		Endpoint:      endpoint,
		Region:        "eu-central-1",
		AccessKey:     "minio",
		SecretKey:     "minio123",
		Bucket:        "sklep-uploads",
		PresignTTLSec: 86400,
	}
}

func TestObjectKey(t *testing.T) {
	keyPattern := regexp.MustCompile(`^uploads/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.png$`)

	key := ObjectKey("cat.png")
	require.Regexp(t, keyPattern, key)

	other := ObjectKey("cat.png")
	require.NotEqual(t, key, other, "keys must never repeat")

	require.True(t, strings.HasSuffix(ObjectKey("archive.tar.gz"), ".gz"))
	require.Regexp(t, `^uploads/[0-9a-f-]{36}$`, ObjectKey("no_extension"))
}

func TestPresignGet(t *testing.T) {
	store, err := NewS3Storage(context.Background(), testS3Config("http://localhost:9000"))
	require.NoError(t, err)

	url, err := store.PresignGet(context.Background(), "uploads/abc.png", 24*time.Hour)
	require.NoError(t, err)

	require.Contains(t, url, "http://localhost:9000/sklep-uploads/uploads/abc.png")
	require.Contains(t, url, "X-Amz-Expires=86400")
	require.Contains(t, url, "X-Amz-Signature=")
}

func TestPut(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	store, err := NewS3Storage(context.Background(), testS3Config(server.URL))
	require.NoError(t, err)

	content := []byte("obrazek produktu")
	err = store.Put(context.Background(), "uploads/abc.png", bytes.NewReader(content), "image/png")
	require.NoError(t, err)

	require.Equal(t, http.MethodPut, gotMethod)
	require.Equal(t, "/sklep-uploads/uploads/abc.png", gotPath)
	require.Equal(t, content, gotBody)
}

func TestPut_StorageUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	server.Close() // closed right away, every request fails

	store, err := NewS3Storage(context.Background(), testS3Config(server.URL))
	require.NoError(t, err)

	err = store.Put(context.Background(), "uploads/abc.png", bytes.NewReader([]byte("x")), "image/png")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to upload object")
}
