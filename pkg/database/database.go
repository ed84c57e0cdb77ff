package database

import (
	"database/sql"
	"fmt"
	"sync"

	"adminpanel/pkg/database/migrations"

	_ "modernc.org/sqlite"
)

// Store manages entity metadata in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens the database at the given path and applies pending migrations.
// foreign_keys is a per-connection pragma in SQLite, so both pragmas ride on
// the DSN and reach every connection the pool opens; a one-off Exec would
// only configure whichever single connection served it, and cascade deletes
// would silently stop firing once the pool grows.
func Open(dbPath string) (*Store, error) {
	dsn := "file:" + dbPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"

	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", ErrDatabase, err)
	}

	if err := database.Ping(); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("%w: failed to open database: %w", ErrDatabase, err)
	}

	if err := migrations.MigrateUp(database); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return &Store{db: database}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
