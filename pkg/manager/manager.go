package manager

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/todos/internal/blob"
	"github.com/mesh-intelligence/todos/internal/config"
	"github.com/mesh-intelligence/todos/internal/paths"
	"github.com/mesh-intelligence/todos/pkg/store"
	"github.com/mesh-intelligence/todos/pkg/types"
)

// Manager loads and saves ToDo lists through a BlobStore.
type Manager struct {
	store  types.BlobStore
	log    logrus.FieldLogger
	indent bool
	strict bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger. The default is the logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithIndent makes Save pretty-print documents.
func WithIndent(indent bool) Option {
	return func(m *Manager) { m.indent = indent }
}

// WithStrict makes Load reject documents that do not match the canonical
// {title, items} schema.
func WithStrict(strict bool) Option {
	return func(m *Manager) { m.strict = strict }
}

// New returns a Manager over s. With a nil s, Load and Save fail with
// ErrNoStore.
func New(s types.BlobStore, opts ...Option) *Manager {
	m := &Manager{
		store: s,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Open builds a Manager from cfg. cfg.Indent and cfg.Strict seed the
// matching options; opts are applied after them.
func Open(cfg types.Config, opts ...Option) (*Manager, error) {
	m := New(nil, append([]Option{WithIndent(cfg.Indent), WithStrict(cfg.Strict)}, opts...)...)
	s, err := store.Open(cfg, m.log)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	m.store = s
	return m, nil
}

// OpenDir resolves the configuration directory (flag, then
// TODOS_CONFIG_DIR, then the platform default), loads config.yaml from it
// and opens the configured store.
func OpenDir(configDirFlag string, opts ...Option) (*Manager, error) {
	dir, err := paths.ResolveConfigDir(configDirFlag)
	if err != nil {
		return nil, fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return Open(cfg, opts...)
}

// Load reads the document at path and normalizes it with From.
//
// A record carrying both "title" and "items" yields From(items) titled
// with the record's title when that is text. Any other JSON value is
// passed to From as is. Failures are returned as *PersistenceError.
func (m *Manager) Load(ctx context.Context, path string) (*types.ToDo, error) {
	if m.store == nil {
		return nil, &PersistenceError{Op: OpLoad, Path: path, Err: ErrNoStore}
	}
	data, err := m.store.Read(ctx, path)
	if err != nil {
		return nil, &PersistenceError{Op: OpLoad, Path: path, Err: err}
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &PersistenceError{Op: OpLoad, Path: path, Err: fmt.Errorf("decode document: %w", err)}
	}

	if m.strict {
		if err := validateDocument(doc); err != nil {
			m.log.WithField("path", path).WithError(err).Warn("rejecting document")
			return nil, &PersistenceError{Op: OpLoad, Path: path, Err: err}
		}
	}

	todo := fromDocument(doc)
	m.log.WithFields(logrus.Fields{
		"path":  path,
		"items": todo.Len(),
	}).Debug("loaded todo")
	return todo, nil
}

// Save writes the canonical document of todo to path, replacing any
// previous content. Failures are returned as *PersistenceError.
func (m *Manager) Save(ctx context.Context, todo *types.ToDo, path string) error {
	if todo == nil {
		return &PersistenceError{Op: OpSave, Path: path, Err: ErrNoToDo}
	}
	if m.store == nil {
		return &PersistenceError{Op: OpSave, Path: path, Err: ErrNoStore}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if m.indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(todo.ToJSON()); err != nil {
		return &PersistenceError{Op: OpSave, Path: path, Err: fmt.Errorf("encode document: %w", err)}
	}

	if err := m.store.Write(ctx, path, buf.Bytes()); err != nil {
		return &PersistenceError{Op: OpSave, Path: path, Err: err}
	}

	m.log.WithFields(logrus.Fields{
		"path":  path,
		"items": todo.Len(),
		"bytes": buf.Len(),
	}).Debug("saved todo")
	return nil
}

// Close releases the underlying store.
func (m *Manager) Close() error {
	if m.store == nil {
		return nil
	}
	return m.store.Close()
}

func fromDocument(doc any) *types.ToDo {
	if rec, ok := doc.(map[string]any); ok {
		title, hasTitle := rec["title"]
		items, hasItems := rec["items"]
		if hasTitle && hasItems {
			todo := From(items)
			if s, ok := title.(string); ok {
				todo.Title = s
			}
			return todo
		}
	}
	return From(doc)
}

// defaultManager reads and writes files at the paths given.
var defaultManager = New(blob.NewFileStore("", logrus.StandardLogger()))

// Load reads a ToDo from the file at path.
func Load(ctx context.Context, path string) (*types.ToDo, error) {
	return defaultManager.Load(ctx, path)
}

// Save writes todo to the file at path.
func Save(ctx context.Context, todo *types.ToDo, path string) error {
	return defaultManager.Save(ctx, todo, path)
}
