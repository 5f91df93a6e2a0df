package manager

import (
	"errors"
	"fmt"
)

// Persistence errors.
var (
	ErrNoToDo          = errors.New("no todo to save")
	ErrNoStore         = errors.New("manager has no blob store")
	ErrInvalidDocument = errors.New("document does not match the todo schema")
)

// Persistence operations reported by PersistenceError.
const (
	OpLoad = "load"
	OpSave = "save"
)

// PersistenceError reports a failed Load or Save. Err is the underlying
// cause and is reachable through errors.Is and errors.As.
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
