package storage

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const slotsSchema = `
CREATE TABLE IF NOT EXISTS slots (
	name TEXT PRIMARY KEY NOT NULL,
	data TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// SQLiteDB keeps named slots in a local SQLite database.
type SQLiteDB struct {
	db     *sql.DB
	dbPath string
}

// OpenSQLite opens (or creates) the database at dbPath and ensures the slots table exists.
func OpenSQLite(dbPath string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one writer keeps SQLite from returning SQLITE_BUSY under concurrent saves
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(slotsSchema); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("failed to create slots table: %w", err), closeErr)
	}

	return &SQLiteDB{db: db, dbPath: dbPath}, nil
}

// Slot returns the slot with the given name.
func (s *SQLiteDB) Slot(name string) Slot {
	return &sqliteSlot{db: s.db, name: name}
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

type sqliteSlot struct {
	db   *sql.DB
	name string
}

func (s *sqliteSlot) Load() ([]byte, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM slots WHERE name = ?`, s.name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load slot %s: %w", s.name, err)
	}
	return []byte(data), nil
}

func (s *sqliteSlot) Save(data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO slots (name, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
	`, s.name, string(data))
	if err != nil {
		return fmt.Errorf("failed to save slot %s: %w", s.name, err)
	}
	return nil
}

func (s *sqliteSlot) Remove() error {
	if _, err := s.db.Exec(`DELETE FROM slots WHERE name = ?`, s.name); err != nil {
		return fmt.Errorf("failed to remove slot %s: %w", s.name, err)
	}
	return nil
}
