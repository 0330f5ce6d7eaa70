package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// DiskStore writes uploads into a fixed directory served statically by the
// server.
type DiskStore struct {
	dir  string
	logs *zap.SugaredLogger
}

// NewDiskStore creates the uploads directory if it does not exist yet.
func NewDiskStore(dir string, logger *zap.SugaredLogger) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &DiskStore{dir: dir, logs: logger}, nil
}

// Save streams the upload to disk under a unique name and returns the
// relative path, e.g. "uploads/<uuid>.png".
func (s *DiskStore) Save(ctx context.Context, r io.Reader, originalName string) (string, error) {
	name := uniqueName(originalName)
	dst := filepath.Join(s.dir, name)

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, r); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	rel := filepath.ToSlash(filepath.Join(filepath.Base(s.dir), name))
	s.logs.Infow("image stored", "path", rel)
	return rel, nil
}
