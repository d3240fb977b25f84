package storage

import (
	"context"
	"io"
)

// LogoRepository defines the interface for workspace logo storage operations
type LogoRepository interface {
	Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error)
	// Head returns the stored size of an object in bytes, or 0 when the
	// object does not exist.
	Head(ctx context.Context, objectPath string) (int64, error)
	Delete(ctx context.Context, objectPath string) error
	GenerateURL(objectPath string) string
}
