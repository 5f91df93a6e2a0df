package types

import "errors"

// Entity errors.
var (
	ErrInvalidItemInput = errors.New("item must be created with non-empty text or an item")
	ErrInvalidToDoEntry = errors.New("todo can be filled only with text or items")
)

// Blob store errors.
var (
	ErrBlobNotFound    = errors.New("blob not found")
	ErrInvalidBlobPath = errors.New("blob path must not be empty")
	ErrStoreClosed     = errors.New("blob store is closed")
	ErrAlreadyAttached = errors.New("blob store is already attached")
)
