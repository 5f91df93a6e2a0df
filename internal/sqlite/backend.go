package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/todos/pkg/types"
)

// Backend implements types.BlobStore with one row per blob path.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	log      logrus.FieldLogger
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend(log logrus.FieldLogger) *Backend {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Backend{log: log.WithField("backend", types.BackendSQLite)}
}

// Attach opens (or creates) the database in config.DataDir and ensures
// the schema exists. Existing blobs are kept.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, databaseName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dbPath, err)
	}

	if _, err := db.Exec(createBlobs); err != nil {
		db.Close()
		return fmt.Errorf("creating schema: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true
	b.log.WithField("path", dbPath).Debug("Attached blob database")
	return nil
}

// Detach closes the database. After Detach, Read and Write return
// ErrStoreClosed. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	return nil
}

// Close detaches the backend.
func (b *Backend) Close() error {
	return b.Detach()
}

// Read returns the blob stored at path.
func (b *Backend) Read(ctx context.Context, path string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreClosed
	}
	if path == "" {
		return nil, types.ErrInvalidBlobPath
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	err := b.db.QueryRowContext(ctx, selectBlob, path).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reading %s: %w", path, types.ErrBlobNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	b.log.WithField("path", path).WithField("bytes", len(data)).Debug("Read blob")
	return data, nil
}

// Write stores data at path, replacing any existing blob.
func (b *Backend) Write(ctx context.Context, path string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreClosed
	}
	if path == "" {
		return types.ErrInvalidBlobPath
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	updatedAt := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := b.db.ExecContext(ctx, upsertBlob, path, data, updatedAt); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	b.log.WithField("path", path).WithField("bytes", len(data)).Debug("Wrote blob")
	return nil
}
