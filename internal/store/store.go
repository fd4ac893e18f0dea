// Package store persists the to-do list.
package store

import (
	"fmt"

	"github.com/aaronzipp/sus-math/internal/models"
)

// TodoStore loads and saves the whole ordered to-do list
type TodoStore interface {
	Load() ([]models.Todo, error)
	Save(todos []models.Todo) error
}

// Backend names accepted by Open
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open returns the store for backend at path
func Open(backend, path string) (TodoStore, error) {
	switch backend {
	case BackendJSON, "":
		return NewJSONStore(path), nil
	case BackendSQLite:
		return NewSQLiteStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown todo backend %q", backend)
	}
}
