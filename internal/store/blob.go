package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/easelart/easel/internal/logging"
)

// BlobStore holds generated image bytes as individual files addressed by
// opaque string handles. A handle stays valid until released; releasing it
// deletes the backing file.
type BlobStore struct {
	dir string
}

// NewBlobStore returns a blob store rooted at dir. The directory must exist.
func NewBlobStore(dir string) *BlobStore {
	return &BlobStore{dir: dir}
}

// Acquire stores data and returns a fresh handle for it. Handles are
// time-ordered UUIDs with a file extension derived from the content type,
// so exported files open correctly.
func (b *BlobStore) Acquire(data []byte, contentType string) (string, error) {
	handle := uuid.Must(uuid.NewV7()).String() + extensionFor(contentType)
	path := filepath.Join(b.dir, handle)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write image blob: %w", err)
	}
	logging.LogBlobEvent("acquire", handle, len(data))
	return handle, nil
}

// Release deletes the blob behind handle. Releasing a handle that no
// longer exists is not an error.
func (b *BlobStore) Release(handle string) error {
	path, err := b.path(handle)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to release image blob: %w", err)
	}
	logging.LogBlobEvent("release", handle, 0)
	return nil
}

// Read returns the bytes behind handle.
func (b *BlobStore) Read(handle string) ([]byte, error) {
	path, err := b.path(handle)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image blob: %w", err)
	}
	return data, nil
}

// Path returns the filesystem path behind handle, for export and external
// viewers.
func (b *BlobStore) Path(handle string) (string, error) {
	return b.path(handle)
}

// path validates handle and resolves it inside the blob directory.
func (b *BlobStore) path(handle string) (string, error) {
	if handle == "" || handle == "." || handle == ".." || strings.ContainsAny(handle, `/\`) {
		return "", fmt.Errorf("invalid blob handle: %q", handle)
	}
	return filepath.Join(b.dir, handle), nil
}

// extensionFor maps an image content type to a file extension. Unknown
// types fall back to .png, the format the inference endpoint returns by
// default.
func extensionFor(contentType string) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	switch strings.TrimSpace(strings.ToLower(contentType)) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
