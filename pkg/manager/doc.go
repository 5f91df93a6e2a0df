// Package manager converts loosely shaped input into ToDo lists and
// persists them as JSON documents in a BlobStore.
//
// From is the normalizer shared by every load path. A Manager binds a
// BlobStore to the Load and Save operations; the package-level Load and
// Save use the file system with paths taken as given.
package manager
