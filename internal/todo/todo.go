// Package todo manages the persistent to-do list behind `sus todo`.
package todo

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aaronzipp/sus-math/internal/models"
	"github.com/aaronzipp/sus-math/internal/store"
)

var (
	ErrNotFound    = errors.New("todo not found")
	ErrEmptyTask   = errors.New("task must not be empty")
	ErrAlreadyDone = errors.New("todo already done")
)

// Stats summarises the list
type Stats struct {
	Total   int
	Done    int
	Pending int
}

// Percent returns the share of completed items, or 0 for an empty list
func (s Stats) Percent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Done) / float64(s.Total) * 100
}

// List is the in-memory view of the persisted to-do list. Every mutation saves.
type List struct {
	todos  []models.Todo
	store  store.TodoStore
	now    func() time.Time
	logger *zap.Logger
}

// Option configures a List
type Option func(*List)

// WithClock overrides the creation timestamp source
func WithClock(now func() time.Time) Option {
	return func(l *List) { l.now = now }
}

// WithLogger sets the list logger
func WithLogger(logger *zap.Logger) Option {
	return func(l *List) { l.logger = logger }
}

// Open loads the list from s
func Open(s store.TodoStore, opts ...Option) (*List, error) {
	l := &List{
		store:  s,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}

	todos, err := s.Load()
	if err != nil {
		return nil, fmt.Errorf("loading todos: %w", err)
	}
	l.todos = todos
	l.logger.Debug("Todos loaded", zap.Int("count", len(todos)))
	return l, nil
}

// All returns a copy of every item in order
func (l *List) All() []models.Todo {
	return slices.Clone(l.todos)
}

// Add appends a pending item
func (l *List) Add(task string) (models.Todo, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return models.Todo{}, ErrEmptyTask
	}

	item := models.Todo{
		ID:        len(l.todos) + 1,
		Task:      task,
		Status:    models.TodoPending,
		CreatedAt: l.now(),
	}
	next := append(slices.Clone(l.todos), item)
	if err := l.commit(next); err != nil {
		return models.Todo{}, err
	}
	l.logger.Info("Todo added", zap.Int("id", item.ID))
	return item, nil
}

// Complete marks an item done. Completing a done item returns ErrAlreadyDone and saves nothing.
func (l *List) Complete(id int) (models.Todo, error) {
	idx, err := l.index(id)
	if err != nil {
		return models.Todo{}, err
	}
	if l.todos[idx].IsDone() {
		l.logger.Warn("Todo already done", zap.Int("id", id))
		return l.todos[idx], ErrAlreadyDone
	}

	next := slices.Clone(l.todos)
	next[idx].Status = models.TodoDone
	if err := l.commit(next); err != nil {
		return models.Todo{}, err
	}
	return next[idx], nil
}

// Update replaces an item's text and returns the old text
func (l *List) Update(id int, task string) (string, error) {
	task = strings.TrimSpace(task)
	if task == "" {
		return "", ErrEmptyTask
	}
	idx, err := l.index(id)
	if err != nil {
		return "", err
	}

	next := slices.Clone(l.todos)
	old := next[idx].Task
	next[idx].Task = task
	if err := l.commit(next); err != nil {
		return "", err
	}
	return old, nil
}

// Delete removes an item and renumbers the rest 1..N
func (l *List) Delete(id int) (models.Todo, error) {
	idx, err := l.index(id)
	if err != nil {
		return models.Todo{}, err
	}

	removed := l.todos[idx]
	next := slices.Delete(slices.Clone(l.todos), idx, idx+1)
	for i := range next {
		next[i].ID = i + 1
	}
	if err := l.commit(next); err != nil {
		return models.Todo{}, err
	}
	l.logger.Info("Todo deleted", zap.Int("id", id))
	return removed, nil
}

// Stats counts done and pending items
func (l *List) Stats() Stats {
	s := Stats{Total: len(l.todos)}
	for _, t := range l.todos {
		if t.IsDone() {
			s.Done++
		}
	}
	s.Pending = s.Total - s.Done
	return s
}

func (l *List) index(id int) (int, error) {
	for i, t := range l.todos {
		if t.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// commit saves next and only then makes it current, so a failed write leaves the list unchanged
func (l *List) commit(next []models.Todo) error {
	if err := l.store.Save(next); err != nil {
		l.logger.Error("Saving todos failed", zap.Error(err))
		return fmt.Errorf("saving todos: %w", err)
	}
	l.todos = next
	return nil
}
