// Package store keeps per-user local state (drafts, favorite authors) in SQLite
// so it survives restarts.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const defaultScope = "default"

// DB wraps the SQLite database backing local state.
type DB struct{ sql *sql.DB }

// Open opens (or creates) the store at path and migrates it.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}
	d, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	d.SetMaxOpenConns(1)
	if _, err := d.Exec(`PRAGMA journal_mode=WAL; PRAGMA synchronous=NORMAL;`); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("configuring store: %w", err)
	}
	db := &DB{sql: d}
	if err := db.migrate(); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("migrating store: %w", err)
	}
	return db, nil
}

// Close releases the database.
func (d *DB) Close() error { return d.sql.Close() }

func (d *DB) migrate() error {
	_, err := d.sql.Exec(`
	CREATE TABLE IF NOT EXISTS kv (
	  key   TEXT PRIMARY KEY,
	  value TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS favorites (
	  id     INTEGER PRIMARY KEY AUTOINCREMENT,
	  scope  TEXT NOT NULL,
	  author TEXT NOT NULL,
	  avatar TEXT NOT NULL DEFAULT '',
	  UNIQUE(scope, author)
	);
	`)
	return err
}

// scopedKey builds "<prefix>:<email>", falling back to the default scope.
func scopedKey(prefix, email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		email = defaultScope
	}
	return prefix + ":" + email
}

func (d *DB) get(key string) (string, bool, error) {
	var v string
	err := d.sql.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (d *DB) put(key, value string) error {
	_, err := d.sql.Exec(`INSERT INTO kv(key, value) VALUES(?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

func (d *DB) del(key string) error {
	_, err := d.sql.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}
