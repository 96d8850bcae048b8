package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var ErrFileNotFound = errors.New("file not found")

// LocalStore serves files from a directory on disk.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) *LocalStore {
	return &LocalStore{baseDir: baseDir}
}

func (s *LocalStore) Open(_ context.Context, path string) (io.ReadCloser, int64, error) {
	// Recorded paths are relative to the base dir; reject traversal outside it.
	full := filepath.Join(s.baseDir, filepath.Clean("/"+path))
	if !strings.HasPrefix(full, filepath.Clean(s.baseDir)+string(os.PathSeparator)) {
		return nil, 0, ErrFileNotFound
	}

	info, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, ErrFileNotFound
		}
		return nil, 0, fmt.Errorf("can't stat file: %w", err)
	}

	f, err := os.Open(full)
	if err != nil {
		return nil, 0, fmt.Errorf("can't open file: %w", err)
	}
	return f, info.Size(), nil
}
