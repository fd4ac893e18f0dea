package store

import (
	"slices"
	"sync"

	"github.com/aaronzipp/sus-math/internal/models"
)

// MemoryStore keeps the to-do list in memory
type MemoryStore struct {
	todos []models.Todo
	saves int
	mu    sync.RWMutex
}

// NewMemoryStore creates an empty memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored list
func (s *MemoryStore) Load() ([]models.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.todos), nil
}

// Save replaces the stored list
func (s *MemoryStore) Save(todos []models.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos = slices.Clone(todos)
	s.saves++
	return nil
}

// Saves returns how many times Save has been called
func (s *MemoryStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
