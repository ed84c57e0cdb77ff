package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"adminpanel/pkg/models"
)

// CreateSystem creates a new system.
func (s *Store) CreateSystem(name, link string) (*models.System, error) {
	name = strings.TrimSpace(name)
	link = strings.TrimSpace(link)
	if name == "" || link == "" {
		return nil, fmt.Errorf("%w: name and link are required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	result, err := s.db.ExecContext(context.Background(),
		`INSERT INTO systems (name, link, created_at) VALUES (?, ?, ?)`,
		name, link, now,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	systemID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return &models.System{
		ID:        systemID,
		Name:      name,
		Link:      link,
		CreatedAt: now,
	}, nil
}

// GetSystem retrieves a system by ID.
func (s *Store) GetSystem(systemID int64) (*models.System, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getSystem(systemID)
}

func (s *Store) getSystem(systemID int64) (*models.System, error) {
	systemRecord := &models.System{}
	err := s.db.QueryRowContext(context.Background(),
		`SELECT id, name, link, created_at FROM systems WHERE id = ?`,
		systemID,
	).Scan(&systemRecord.ID, &systemRecord.Name, &systemRecord.Link, &systemRecord.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSystemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return systemRecord, nil
}

// ListSystems lists all systems, newest first.
func (s *Store) ListSystems() ([]models.System, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(context.Background(),
		`SELECT id, name, link, created_at FROM systems ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	defer func() { _ = rows.Close() }()

	var systems []models.System
	for rows.Next() {
		var systemRecord models.System
		if err := rows.Scan(&systemRecord.ID, &systemRecord.Name, &systemRecord.Link, &systemRecord.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
		}
		systems = append(systems, systemRecord)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return systems, nil
}

// UpdateSystem updates a system's name and link.
func (s *Store) UpdateSystem(systemID int64, name, link string) (*models.System, error) {
	name = strings.TrimSpace(name)
	link = strings.TrimSpace(link)
	if name == "" || link == "" {
		return nil, fmt.Errorf("%w: name and link are required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(context.Background(),
		`UPDATE systems SET name = ?, link = ? WHERE id = ?`,
		name, link, systemID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	if rowsAffected == 0 {
		return nil, ErrSystemNotFound
	}

	return s.getSystem(systemID)
}

// DeleteSystem deletes a system. Dependent categories and their downloads
// are removed by the cascade rules; the storage keys of the cascade-deleted
// downloads are returned so the caller can sweep the blobs.
func (s *Store) DeleteSystem(systemID int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := context.Background()

	keys, err := s.storageKeys(ctx,
		`SELECT d.file_path FROM downloads d
		 INNER JOIN categories c ON d.category_id = c.id
		 WHERE c.system_id = ?`,
		systemID,
	)
	if err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM systems WHERE id = ?`, systemID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	if rowsAffected == 0 {
		return nil, ErrSystemNotFound
	}

	return keys, nil
}

// storageKeys collects download storage keys matched by the given query.
func (s *Store) storageKeys(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	defer func() { _ = rows.Close() }()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
		}
		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return keys, nil
}
