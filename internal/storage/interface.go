package storage

import (
	"context"
	"io"
)

// StorageInterface abstracts the blob store that holds uploaded resumes.
// The local filesystem implementation covers development and single-node
// deployments; a cloud implementation can be swapped in behind the same
// interface.
type StorageInterface interface {
	// SaveFile writes the blob under key, replacing any existing content,
	// and returns the number of bytes written.
	SaveFile(ctx context.Context, key string, reader io.Reader) (int64, error)

	// ReadFile opens the blob stored under key.
	ReadFile(ctx context.Context, key string) (io.ReadCloser, error)

	// FileExists checks if a blob exists and returns its size.
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes a blob. Deleting a missing key is not an error.
	DeleteFile(ctx context.Context, key string) error
}
