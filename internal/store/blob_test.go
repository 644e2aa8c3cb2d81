package store

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func newTestBlobStore(t *testing.T) *BlobStore {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "easel-blob-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(tmpDir) })

	return NewBlobStore(tmpDir)
}

func TestBlobAcquireRead(t *testing.T) {
	blobs := newTestBlobStore(t)
	data := []byte("\x89PNG\r\n\x1a\nfake image bytes")

	handle, err := blobs.Acquire(data, "image/png")
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	if !strings.HasSuffix(handle, ".png") {
		t.Errorf("Acquire() handle = %q, want .png suffix", handle)
	}
	if strings.ContainsAny(handle, `/\`) {
		t.Errorf("Acquire() handle = %q, should be a bare file name", handle)
	}

	got, err := blobs.Read(handle)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Read() returned %d bytes, want %d matching bytes", len(got), len(data))
	}
}

func TestBlobHandlesUnique(t *testing.T) {
	blobs := newTestBlobStore(t)

	h1, err := blobs.Acquire([]byte("one"), "image/png")
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	h2, err := blobs.Acquire([]byte("two"), "image/png")
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	if h1 == h2 {
		t.Errorf("Acquire() returned duplicate handle %q", h1)
	}
}

func TestBlobRelease(t *testing.T) {
	blobs := newTestBlobStore(t)

	handle, err := blobs.Acquire([]byte("bytes"), "image/png")
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	if err := blobs.Release(handle); err != nil {
		t.Fatalf("Release() error = %v", err)
	}

	if _, err := blobs.Read(handle); err == nil {
		t.Error("Read() should fail after Release()")
	}

	// Releasing again must not be an error
	if err := blobs.Release(handle); err != nil {
		t.Errorf("Release() of already-released handle error = %v", err)
	}
}

func TestBlobReleaseUnknownHandle(t *testing.T) {
	blobs := newTestBlobStore(t)

	if err := blobs.Release("0198b000-0000-7000-8000-000000000000.png"); err != nil {
		t.Errorf("Release() of unknown handle error = %v, want nil", err)
	}
}

func TestBlobInvalidHandles(t *testing.T) {
	blobs := newTestBlobStore(t)

	invalid := []string{"", ".", "..", "../escape.png", `sub\dir.png`}
	for _, handle := range invalid {
		if err := blobs.Release(handle); err == nil {
			t.Errorf("Release(%q) should have failed", handle)
		}
		if _, err := blobs.Read(handle); err == nil {
			t.Errorf("Read(%q) should have failed", handle)
		}
		if _, err := blobs.Path(handle); err == nil {
			t.Errorf("Path(%q) should have failed", handle)
		}
	}
}

func TestExtensionFor(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"image/png", ".png"},
		{"image/jpeg", ".jpg"},
		{"image/jpg", ".jpg"},
		{"image/webp", ".webp"},
		{"image/gif", ".gif"},
		{"IMAGE/JPEG", ".jpg"},
		{"image/png; charset=binary", ".png"},
		{"image/jpeg; boundary=x", ".jpg"},
		{"application/octet-stream", ".png"},
		{"", ".png"},
	}

	for _, tt := range tests {
		if got := extensionFor(tt.contentType); got != tt.want {
			t.Errorf("extensionFor(%q) = %q, want %q", tt.contentType, got, tt.want)
		}
	}
}

func BenchmarkBlobAcquire(b *testing.B) {
	tmpDir, err := os.MkdirTemp("", "easel-blob-bench-*")
	if err != nil {
		b.Fatalf("Failed to create temp dir: %v", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	blobs := NewBlobStore(tmpDir)
	data := bytes.Repeat([]byte("x"), 64*1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		handle, err := blobs.Acquire(data, "image/png")
		if err != nil {
			b.Fatalf("Acquire() error = %v", err)
		}
		_ = blobs.Release(handle)
	}
}
