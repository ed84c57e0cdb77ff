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

// CreateArea creates a new content area. Content may be empty; the name is
// the lookup key ("footer text", "hero text") and is required.
func (s *Store) CreateArea(name, content string) (*models.Area, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	result, err := s.db.ExecContext(context.Background(),
		`INSERT INTO areas (name, content, created_at) VALUES (?, ?, ?)`,
		name, content, now,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	areaID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return &models.Area{
		ID:        areaID,
		Name:      name,
		Content:   content,
		CreatedAt: now,
	}, nil
}

// GetArea retrieves an area by ID.
func (s *Store) GetArea(areaID int64) (*models.Area, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getArea(areaID)
}

func (s *Store) getArea(areaID int64) (*models.Area, error) {
	areaRecord := &models.Area{}
	err := s.db.QueryRowContext(context.Background(),
		`SELECT id, name, content, created_at FROM areas WHERE id = ?`,
		areaID,
	).Scan(&areaRecord.ID, &areaRecord.Name, &areaRecord.Content, &areaRecord.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAreaNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return areaRecord, nil
}

// ListAreas lists all areas, newest first.
func (s *Store) ListAreas() ([]models.Area, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(context.Background(),
		`SELECT id, name, content, created_at FROM areas ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	defer func() { _ = rows.Close() }()

	var areas []models.Area
	for rows.Next() {
		var areaRecord models.Area
		if err := rows.Scan(&areaRecord.ID, &areaRecord.Name, &areaRecord.Content, &areaRecord.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
		}
		areas = append(areas, areaRecord)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return areas, nil
}

// UpdateArea updates an area's name and content.
func (s *Store) UpdateArea(areaID int64, name, content string) (*models.Area, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(context.Background(),
		`UPDATE areas SET name = ?, content = ? WHERE id = ?`,
		name, content, areaID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	if rowsAffected == 0 {
		return nil, ErrAreaNotFound
	}

	return s.getArea(areaID)
}

// DeleteArea deletes an area.
func (s *Store) DeleteArea(areaID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(context.Background(), `DELETE FROM areas WHERE id = ?`, areaID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	if rowsAffected == 0 {
		return ErrAreaNotFound
	}

	return nil
}
