package storage

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database
const MemoryDSN = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS string_set (
	set_key TEXT NOT NULL,
	member TEXT NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (set_key, member)
);`

// SQLite stores string sets in a single table, one row per member
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies the schema
func OpenSQLite(path string) (*SQLite, error) {
	dsn := path
	if path != MemoryDSN {
		if err := CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a single local writer; also keeps :memory: on one connection
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the database
func (s *SQLite) Close() error {
	return s.db.Close()
}

// ReadSet returns the members stored under key in insertion order
func (s *SQLite) ReadSet(key string) ([]string, error) {
	rows, err := s.db.Query(`SELECT member FROM string_set WHERE set_key = ? ORDER BY position`, key)
	if err != nil {
		return nil, fmt.Errorf("failed to query set %s: %w", key, err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var member string
		if err := rows.Scan(&member); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		out = append(out, member)
	}
	return out, rows.Err()
}

// WriteSet replaces the members stored under key in one transaction
func (s *SQLite) WriteSet(key string, values []string) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM string_set WHERE set_key = ?`, key); err != nil {
		return fmt.Errorf("failed to clear set %s: %w", key, err)
	}
	for i, v := range values {
		if _, err = tx.Exec(`INSERT OR IGNORE INTO string_set (set_key, member, position) VALUES (?, ?, ?)`, key, v, i); err != nil {
			return fmt.Errorf("failed to insert %q: %w", v, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit set %s: %w", key, err)
	}
	return nil
}
