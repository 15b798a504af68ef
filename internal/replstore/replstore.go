// Package replstore persists REPL input lines across process restarts.
// It is a Go-side convenience around the language core: nothing here
// participates in scanning, parsing, or evaluation.
package replstore

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one recorded REPL line.
type Entry struct {
	Session   string
	Line      string
	Result    string
	CreatedAt time.Time
}

// Store wraps a SQLite-backed history file.
type Store struct {
	db      *sql.DB
	session uuid.UUID
}

// Open creates (if needed) and opens the history database at path,
// stamping this process's entries with a fresh session ID.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("replstore: open %s: %w", path, err)
	}

	const schema = `
	CREATE TABLE IF NOT EXISTS history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session TEXT NOT NULL,
		line TEXT NOT NULL,
		result TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("replstore: init schema: %w", err)
	}

	return &Store{db: db, session: uuid.New()}, nil
}

// Session returns this process's session ID.
func (s *Store) Session() uuid.UUID { return s.session }

// Record appends one line and its evaluated (or error) text to history.
func (s *Store) Record(line, result string) error {
	_, err := s.db.Exec(
		`INSERT INTO history (session, line, result, created_at) VALUES (?, ?, ?, ?)`,
		s.session.String(), line, result, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("replstore: record: %w", err)
	}
	return nil
}

// Recent returns the most recent n entries across all sessions, oldest
// first, for display by the REPL's :history command.
func (s *Store) Recent(n int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT session, line, result, created_at FROM history ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("replstore: recent: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Session, &e.Line, &e.Result, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("replstore: scan: %w", err)
		}
		entries = append(entries, e)
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }
