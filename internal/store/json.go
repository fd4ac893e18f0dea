package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aaronzipp/sus-math/internal/models"
)

// JSONStore keeps the to-do list in a single indented JSON document
type JSONStore struct {
	path string
}

// NewJSONStore creates a store backed by the file at path
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Path returns the backing file path
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the document. A missing file is an empty list.
func (s *JSONStore) Load() ([]models.Todo, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []models.Todo{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var todos []models.Todo
	if err := json.Unmarshal(data, &todos); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}
	if todos == nil {
		todos = []models.Todo{}
	}
	return todos, nil
}

// Save writes the whole list, replacing the file atomically
func (s *JSONStore) Save(todos []models.Todo) error {
	if todos == nil {
		todos = []models.Todo{}
	}
	data, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding todos: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}
	return nil
}
