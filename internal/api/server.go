package api

import (
	"context"
	"io"
	"time"

	"sklep-api/internal/config"
	"sklep-api/internal/database"
)

// ObjectStorage is the slice of the object store the API needs: uploads and
// time-limited read links. Satisfied by storage.S3Storage.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	PresignGet(ctx context.Context, key string, expires time.Duration) (string, error)
}

type Server struct {
	config  *config.Config
	store   *database.Store
	storage ObjectStorage
}

func NewServer(cfg *config.Config, store *database.Store, storage ObjectStorage) *Server {
	return &Server{
		config:  cfg,
		store:   store,
		storage: storage,
	}
}
