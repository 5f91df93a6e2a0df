package blob

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/mesh-intelligence/todos/pkg/types"
)

// MemoryStore keeps blobs in a map. Nothing outlives the process; it
// backs tests and the "memory" backend.
type MemoryStore struct {
	mu     sync.RWMutex
	blobs  map[string][]byte
	closed bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Read returns a copy of the blob stored at path.
func (s *MemoryStore) Read(ctx context.Context, path string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkLocked(ctx, path); err != nil {
		return nil, err
	}
	data, ok := s.blobs[path]
	if !ok {
		return nil, fmt.Errorf("reading %s: %w", path, types.ErrBlobNotFound)
	}
	return bytes.Clone(data), nil
}

// Write stores a copy of data at path.
func (s *MemoryStore) Write(ctx context.Context, path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkLocked(ctx, path); err != nil {
		return err
	}
	s.blobs[path] = bytes.Clone(data)
	return nil
}

// Close drops every blob. Idempotent.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.blobs = nil
	return nil
}

// checkLocked validates a request. The caller must hold s.mu.
func (s *MemoryStore) checkLocked(ctx context.Context, path string) error {
	if s.closed {
		return types.ErrStoreClosed
	}
	if path == "" {
		return types.ErrInvalidBlobPath
	}
	return ctx.Err()
}
