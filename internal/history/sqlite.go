// SPDX-FileCopyrightText: 2026 Lukas Burgey
// SPDX-License-Identifier: MIT

package history

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"
)

// sqliteTimeFormat is the standard SQLite datetime format.
const sqliteTimeFormat = "2006-01-02 15:04:05.999999999"

// SQLiteStore persists history in the invocations table. It enforces the
// configured capacity by deleting the oldest rows past the maximum on each
// append, so the table never retains more than capacity entries.
type SQLiteStore struct {
	mu       sync.Mutex
	db       *sql.DB
	capacity int
}

// NewSQLiteStore creates a store over an open, migrated database handle.
// A non-positive capacity falls back to DefaultCapacity.
func NewSQLiteStore(db *sql.DB, capacity int) *SQLiteStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &SQLiteStore{db: db, capacity: capacity}
}

// Append implements Store.
func (s *SQLiteStore) Append(entry Entry) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	args, err := json.Marshal(entry.Args)
	if err != nil {
		return Entry{}, fmt.Errorf("encoding argv: %w", err)
	}
	var bound []byte
	if len(entry.Bound) > 0 {
		bound, err = json.Marshal(entry.Bound)
		if err != nil {
			return Entry{}, fmt.Errorf("encoding bindings: %w", err)
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Entry{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // Rollback is no-op after commit

	result, err := tx.Exec(`
		INSERT INTO invocations (
			action, args, bound, exit_code, stdout, stderr,
			duration_ms, timed_out, cancelled, truncated, started_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		entry.Action,
		string(args),
		nullString(string(bound)),
		entry.ExitCode,
		nullString(entry.Stdout),
		nullString(entry.Stderr),
		entry.DurationMS,
		entry.TimedOut,
		entry.Cancelled,
		entry.Truncated,
		entry.StartedAt.UTC().Format(sqliteTimeFormat),
	)
	if err != nil {
		return Entry{}, fmt.Errorf("inserting history entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return Entry{}, fmt.Errorf("getting last insert id: %w", err)
	}

	// Evict oldest entries beyond capacity. Row ids are monotonic, so
	// insertion order and id order agree.
	_, err = tx.Exec(`
		DELETE FROM invocations
		WHERE id NOT IN (SELECT id FROM invocations ORDER BY id DESC LIMIT ?)
	`, s.capacity)
	if err != nil {
		return Entry{}, fmt.Errorf("evicting old entries: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Entry{}, fmt.Errorf("committing transaction: %w", err)
	}

	entry.ID = id
	return entry, nil
}

// List implements Store.
func (s *SQLiteStore) List(limit, offset int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.Query(`
		SELECT id, action, args, bound, exit_code, stdout, stderr,
		       duration_ms, timed_out, cancelled, truncated, started_at
		FROM invocations
		ORDER BY id DESC
		LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Get implements Store.
func (s *SQLiteStore) Get(id int64) (Entry, error) {
	row := s.db.QueryRow(`
		SELECT id, action, args, bound, exit_code, stdout, stderr,
		       duration_ms, timed_out, cancelled, truncated, started_at
		FROM invocations
		WHERE id = ?
	`, id)

	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, ErrNotFound
		}
		return Entry{}, fmt.Errorf("querying history entry: %w", err)
	}
	return entry, nil
}

// Search implements Store.
func (s *SQLiteStore) Search(query string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = -1
	}
	pattern := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT id, action, args, bound, exit_code, stdout, stderr,
		       duration_ms, timed_out, cancelled, truncated, started_at
		FROM invocations
		WHERE action LIKE ? OR args LIKE ?
		ORDER BY id DESC
		LIMIT ?
	`, pattern, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("searching history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Clear implements Store.
func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM invocations`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// Len implements Store.
func (s *SQLiteStore) Len() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM invocations`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting history entries: %w", err)
	}
	return count, nil
}

// scanner is an interface for both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return entries, nil
}

func scanEntry(s scanner) (Entry, error) {
	var entry Entry
	var args string
	var bound, stdout, stderr sql.NullString
	var startedAt string

	err := s.Scan(
		&entry.ID,
		&entry.Action,
		&args,
		&bound,
		&entry.ExitCode,
		&stdout,
		&stderr,
		&entry.DurationMS,
		&entry.TimedOut,
		&entry.Cancelled,
		&entry.Truncated,
		&startedAt,
	)
	if err != nil {
		return Entry{}, err
	}

	if err := json.Unmarshal([]byte(args), &entry.Args); err != nil {
		return Entry{}, fmt.Errorf("decoding argv: %w", err)
	}
	if bound.Valid && bound.String != "" {
		if err := json.Unmarshal([]byte(bound.String), &entry.Bound); err != nil {
			return Entry{}, fmt.Errorf("decoding bindings: %w", err)
		}
	}
	entry.Stdout = stdout.String
	entry.Stderr = stderr.String

	t, err := parseSQLiteTime(startedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing started_at: %w", err)
	}
	entry.StartedAt = t

	return entry, nil
}

// nullString returns a sql.NullString for the given string.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// parseSQLiteTime parses a time string from SQLite, handling the formats
// the driver may hand back.
func parseSQLiteTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04:05.999999999",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999999Z",
		"2006-01-02T15:04:05Z",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time: %s", s)
}

var _ Store = (*SQLiteStore)(nil)
