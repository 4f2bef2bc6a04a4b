// Package storage provides SQLite-based persistence for the fighter roster.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrEmptyName is returned when a profile has no name.
var ErrEmptyName = errors.New("storage: profile name is empty")

// Store manages the SQLite database connection for roster profiles.
type Store struct {
	db *sql.DB
}

// Profile is a saved fighter setup: a display name and an image reference.
type Profile struct {
	ID        int64
	Name      string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profiles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE COLLATE NOCASE,
			image TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveProfile inserts a profile or replaces the image of an existing one
// with the same name (names are case-insensitive).
func (s *Store) SaveProfile(name, image string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	_, err := s.db.Exec(
		`INSERT INTO profiles (name, image) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET image = excluded.image, updated_at = CURRENT_TIMESTAMP`,
		name, image,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile: %w", err)
	}
	return nil
}

// Profile retrieves a profile by name. Returns nil if it does not exist.
func (s *Store) Profile(name string) (*Profile, error) {
	var p Profile
	var createdAt, updatedAt any

	err := s.db.QueryRow(
		`SELECT id, name, image, created_at, updated_at FROM profiles WHERE name = ?`,
		strings.TrimSpace(name),
	).Scan(&p.ID, &p.Name, &p.Image, &createdAt, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profile: %w", err)
	}

	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

// Profiles lists every saved profile ordered by name.
func (s *Store) Profiles() ([]Profile, error) {
	rows, err := s.db.Query(
		`SELECT id, name, image, created_at, updated_at FROM profiles ORDER BY name COLLATE NOCASE`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		var createdAt, updatedAt any
		if err := rows.Scan(&p.ID, &p.Name, &p.Image, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.CreatedAt = parseTime(createdAt)
		p.UpdatedAt = parseTime(updatedAt)
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return profiles, nil
}

// RemoveProfile deletes a profile by name and reports whether it existed.
func (s *Store) RemoveProfile(name string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM profiles WHERE name = ?", strings.TrimSpace(name))
	if err != nil {
		return false, fmt.Errorf("storage: cannot remove profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot read affected rows: %w", err)
	}
	return n > 0, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
