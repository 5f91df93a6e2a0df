// Package store provides the public factory for BlobStore backends while
// keeping implementation details internal.
//
// Example:
//
//	s, err := store.Open(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".todos-db",
//	}, nil)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
package store

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/todos/internal/blob"
	"github.com/mesh-intelligence/todos/internal/sqlite"
	"github.com/mesh-intelligence/todos/pkg/types"
)

// Open validates cfg and returns the BlobStore it selects. A nil log
// uses the logrus standard logger.
func Open(cfg types.Config, log logrus.FieldLogger) (types.BlobStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	switch cfg.Backend {
	case types.BackendFile:
		return blob.NewFileStore(cfg.DataDir, log), nil
	case types.BackendMemory:
		return blob.NewMemoryStore(), nil
	case types.BackendSQLite:
		b := sqlite.NewBackend(log)
		if err := b.Attach(cfg); err != nil {
			return nil, fmt.Errorf("attach sqlite store: %w", err)
		}
		return b, nil
	}
	return nil, types.ErrBackendUnknown
}
