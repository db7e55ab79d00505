package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCheckupNotFound  = errors.New("checkup not found")
	ErrUserNotFound     = errors.New("user not found")
)

const dateLayout = "2006-01-02"

// OpenSQLite opens (and if needed bootstraps) the database. Foreign keys
// are enabled per connection so checkup rows cannot reference a missing
// employee.
func OpenSQLite(path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) ensureSchema() error {
	const schema = `
CREATE TABLE IF NOT EXISTS employees (
	uid TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	job_title TEXT NOT NULL,
	location TEXT NOT NULL,
	birth_date TEXT,
	batch_id TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_employees_identity ON employees(name, job_title);

CREATE TABLE IF NOT EXISTS checkups (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	uid TEXT NOT NULL REFERENCES employees(uid) ON DELETE CASCADE,
	checkup_date TEXT NOT NULL,
	birth_date TEXT,
	age INTEGER,
	height REAL,
	weight REAL,
	waist REAL,
	bmi REAL,
	fasting_glucose REAL,
	random_glucose REAL,
	cholesterol REAL,
	uric_acid REAL,
	location TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_checkups_uid_date ON checkups(uid, checkup_date);

CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS locations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
