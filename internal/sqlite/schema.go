// Package sqlite implements a BlobStore backed by a SQLite database.
package sqlite

// Schema DDL for the blob table. Attach runs it on every open, so each
// statement must be idempotent.
const createBlobs = `CREATE TABLE IF NOT EXISTS blobs (
    path TEXT PRIMARY KEY,
    data BLOB NOT NULL,
    updated_at TEXT NOT NULL
);`

const (
	selectBlob = `SELECT data FROM blobs WHERE path = ?`
	upsertBlob = `INSERT INTO blobs (path, data, updated_at) VALUES (?, ?, ?)
ON CONFLICT(path) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`
)

// databaseName is the SQLite file created inside the data directory.
const databaseName = "todos.db"
