package types

import "context"

// BlobStore is the byte storage that ToDo documents are persisted to.
// Paths are opaque keys; file-backed stores resolve them against their
// data directory.
type BlobStore interface {
	// Read returns the blob stored at path.
	// Returns an error matching ErrBlobNotFound if nothing is stored there.
	Read(ctx context.Context, path string) ([]byte, error)

	// Write stores data at path, replacing any existing blob.
	Write(ctx context.Context, path string, data []byte) error

	// Close releases backend resources. Idempotent. After Close, Read and
	// Write return ErrStoreClosed.
	Close() error
}
