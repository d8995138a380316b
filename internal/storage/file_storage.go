package storage

import (
	"context"
	"io"
)

//go:generate mockgen -destination=./file_storage_mock.go -package=storage -source=file_storage.go

// FileStorage provides access to raw photo files.
type FileStorage interface {
	// Write puts the object and returns its public URL.
	Write(ctx context.Context, r io.Reader, size int64, path, contentType string) (string, error)
	Delete(ctx context.Context, path string) error
}
