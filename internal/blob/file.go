// Package blob provides the file and in-memory BlobStore implementations.
package blob

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio"
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/todos/pkg/types"
)

// FileStore keeps each blob in its own file. Relative paths are resolved
// against the store directory; an empty directory leaves them relative to
// the working directory. Writes are atomic: data goes to a temp file that
// is renamed over the target.
type FileStore struct {
	dir string
	log logrus.FieldLogger

	mu     sync.RWMutex
	closed bool
}

// NewFileStore creates a FileStore rooted at dir.
func NewFileStore(dir string, log logrus.FieldLogger) *FileStore {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &FileStore{dir: dir, log: log.WithField("backend", types.BackendFile)}
}

// Dir returns the directory relative paths are resolved against.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) resolve(path string) string {
	if s.dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.dir, path)
}

// Read returns the content of the file at path.
func (s *FileStore) Read(ctx context.Context, path string) ([]byte, error) {
	if err := s.check(ctx, path); err != nil {
		return nil, err
	}

	p := s.resolve(path)
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w: %w", p, types.ErrBlobNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", p, err)
	}

	s.log.WithField("path", p).WithField("bytes", len(data)).Debug("Read blob")
	return data, nil
}

// Write atomically replaces the file at path with data, creating parent
// directories as needed.
func (s *FileStore) Write(ctx context.Context, path string, data []byte) error {
	if err := s.check(ctx, path); err != nil {
		return err
	}

	p := s.resolve(path)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", p, err)
	}
	if err := renameio.WriteFile(p, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", p, err)
	}

	s.log.WithField("path", p).WithField("bytes", len(data)).Debug("Wrote blob")
	return nil
}

// Close marks the store closed. Idempotent.
func (s *FileStore) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

func (s *FileStore) check(ctx context.Context, path string) error {
	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()

	if closed {
		return types.ErrStoreClosed
	}
	if path == "" {
		return types.ErrInvalidBlobPath
	}
	return ctx.Err()
}
