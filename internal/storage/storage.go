package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aibaljacob/prodigi/internal/config"
)

// FileStore serves stored product files. The path is the value recorded on
// the product row at upload time.
type FileStore interface {
	Open(ctx context.Context, path string) (io.ReadCloser, int64, error)
}

func New(cfg *config.Config) (FileStore, error) {
	switch cfg.StorageBackend {
	case "local":
		return NewLocalStore(cfg.FilesDir), nil
	case "s3":
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}
