package blob

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/todos/pkg/types"
)

func TestFileStoreReadWrite(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir, nil)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "todo.json", []byte(`["a"]`)))

	data, err := os.ReadFile(filepath.Join(dir, "todo.json"))
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(data), "relative paths resolve against the store directory")

	got, err := s.Read(ctx, "todo.json")
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(got))
}

func TestFileStoreOverwrites(t *testing.T) {
	s := NewFileStore(t.TempDir(), nil)
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "todo.json", []byte(`{"title":"a much longer document","items":[]}`)))
	require.NoError(t, s.Write(ctx, "todo.json", []byte(`[]`)))

	got, err := s.Read(ctx, "todo.json")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestFileStoreCreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(dir, nil)

	require.NoError(t, s.Write(context.Background(), filepath.Join("lists", "home.json"), []byte(`[]`)))
	assert.FileExists(t, filepath.Join(dir, "lists", "home.json"))
}

func TestFileStoreAbsolutePathIgnoresDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "abs.json")
	s := NewFileStore(t.TempDir(), nil)

	require.NoError(t, s.Write(context.Background(), target, []byte(`[]`)))
	assert.FileExists(t, target)
}

func TestFileStoreReadMissing(t *testing.T) {
	s := NewFileStore(t.TempDir(), nil)

	_, err := s.Read(context.Background(), "missing.json")
	assert.ErrorIs(t, err, types.ErrBlobNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFileStoreRejectsRequests(t *testing.T) {
	s := NewFileStore(t.TempDir(), nil)

	_, err := s.Read(context.Background(), "")
	assert.ErrorIs(t, err, types.ErrInvalidBlobPath)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Write(ctx, "todo.json", nil), context.Canceled)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Write(context.Background(), "todo.json", nil), types.ErrStoreClosed)
}
