package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrFileNotFound is returned by FileStore.Open for unknown keys.
var ErrFileNotFound = errors.New("file not found")

// DocumentRenderer turns HTML markup into a printable document.
type DocumentRenderer interface {
	// RenderPDF renders markup into PDF bytes.
	RenderPDF(ctx context.Context, markup string) ([]byte, error)

	// Close releases the rendering engine.
	Close() error
}

// FileStore persists exported documents.
type FileStore interface {
	// Put writes data under key and returns the URI it can be fetched from.
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Open reads a previously stored object. The caller closes the reader.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Close releases the underlying bucket.
	Close() error
}
