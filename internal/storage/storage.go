package storage

import (
	"context"
	"io"
	"path/filepath"

	"github.com/google/uuid"
)

// ImageStore assigns a storage location to an uploaded image and returns
// the path clients use to fetch it back.
type ImageStore interface {
	Save(ctx context.Context, r io.Reader, originalName string) (string, error)
}

// uniqueName derives a collision-resistant stored name from a random uuid
// plus the original file extension.
func uniqueName(originalName string) string {
	return uuid.New().String() + filepath.Ext(originalName)
}
