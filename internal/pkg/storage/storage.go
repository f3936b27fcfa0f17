package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded photo files live. The service layer only
// ever deals in relative paths.
type Storage interface {
	// Save writes content at the given relative path, creating parent
	// directories as needed.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the file at the given relative path for reading.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the file at the given relative path.
	Delete(ctx context.Context, path string) error
}
