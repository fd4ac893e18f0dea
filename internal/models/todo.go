package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TodoStatus is the completion state of a to-do item
type TodoStatus string

const (
	TodoPending TodoStatus = "pending"
	TodoDone    TodoStatus = "done"
)

// LegacyCreatedAtLayout is the local-time layout of to-do files written by the
// Indonesian to-do script. Those files also spell statuses "Selesai"/"Belum Selesai".
const LegacyCreatedAtLayout = "2006-01-02 15:04:05"

var legacyStatuses = map[string]TodoStatus{
	"Selesai":       TodoDone,
	"Belum Selesai": TodoPending,
}

// Todo is one persisted to-do record
type Todo struct {
	ID        int        `json:"id"`
	Task      string     `json:"task"`
	Status    TodoStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// IsDone reports whether the item has been completed
func (t Todo) IsDone() bool {
	return t.Status == TodoDone
}

// UnmarshalJSON accepts both the current format and the legacy layout.
// Saving rewrites legacy records in the current format.
func (t *Todo) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        int    `json:"id"`
		Task      string `json:"task"`
		Status    string `json:"status"`
		CreatedAt string `json:"created_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	status, err := parseTodoStatus(raw.Status)
	if err != nil {
		return fmt.Errorf("todo %d: %w", raw.ID, err)
	}
	created, err := parseCreatedAt(raw.CreatedAt)
	if err != nil {
		return fmt.Errorf("todo %d: %w", raw.ID, err)
	}

	*t = Todo{ID: raw.ID, Task: raw.Task, Status: status, CreatedAt: created}
	return nil
}

func parseTodoStatus(s string) (TodoStatus, error) {
	switch TodoStatus(s) {
	case TodoPending, "":
		return TodoPending, nil
	case TodoDone:
		return TodoDone, nil
	}
	if status, ok := legacyStatuses[s]; ok {
		return status, nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

func parseCreatedAt(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if created, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return created, nil
	}
	created, err := time.ParseInLocation(LegacyCreatedAtLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad created_at %q", s)
	}
	return created, nil
}
