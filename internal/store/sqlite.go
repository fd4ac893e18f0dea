package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aaronzipp/sus-math/internal/models"
)

// SQLiteStore keeps the to-do list in a SQLite table
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens or creates the database at path
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SQLiteStore{db: db, dbPath: path}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS todos (
		position   INTEGER PRIMARY KEY,
		id         INTEGER NOT NULL,
		task       TEXT NOT NULL,
		status     TEXT NOT NULL,
		created_at TEXT NOT NULL
	);`)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path
func (s *SQLiteStore) Path() string {
	return s.dbPath
}

// Load reads the list in stored order
func (s *SQLiteStore) Load() ([]models.Todo, error) {
	rows, err := s.db.Query(`SELECT id, task, status, created_at FROM todos ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var (
			t       models.Todo
			status  string
			created string
		)
		if err := rows.Scan(&t.ID, &t.Task, &status, &created); err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		t.Status = models.TodoStatus(status)
		if t.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("todo %d: bad created_at: %w", t.ID, err)
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

// Save rewrites the table in one transaction
func (s *SQLiteStore) Save(todos []models.Todo) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM todos`); err != nil {
		return fmt.Errorf("failed to clear todos: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO todos (position, id, task, status, created_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range todos {
		if _, err := stmt.Exec(i, t.ID, t.Task, string(t.Status), t.CreatedAt.Format(time.RFC3339Nano)); err != nil {
			return fmt.Errorf("failed to insert todo %d: %w", t.ID, err)
		}
	}
	return tx.Commit()
}
