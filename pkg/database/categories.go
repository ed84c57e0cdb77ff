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

// CreateCategory creates a new category under an existing system. The parent
// system is pre-checked so the caller gets a clean not-found result instead
// of a foreign-key constraint failure.
func (s *Store) CreateCategory(name string, systemID int64) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" || systemID == 0 {
		return nil, fmt.Errorf("%w: name and systemId are required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	systemRecord, err := s.getSystem(systemID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	result, err := s.db.ExecContext(context.Background(),
		`INSERT INTO categories (name, system_id, created_at) VALUES (?, ?, ?)`,
		name, systemID, now,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	categoryID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return &models.Category{
		ID:         categoryID,
		Name:       name,
		SystemID:   systemID,
		SystemName: systemRecord.Name,
		CreatedAt:  now,
	}, nil
}

// GetCategory retrieves a category by ID.
func (s *Store) GetCategory(categoryID int64) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getCategory(categoryID)
}

func (s *Store) getCategory(categoryID int64) (*models.Category, error) {
	categoryRecord := &models.Category{}
	err := s.db.QueryRowContext(context.Background(),
		`SELECT c.id, c.name, c.system_id, s.name, c.created_at
		 FROM categories c
		 INNER JOIN systems s ON c.system_id = s.id
		 WHERE c.id = ?`,
		categoryID,
	).Scan(&categoryRecord.ID, &categoryRecord.Name, &categoryRecord.SystemID, &categoryRecord.SystemName, &categoryRecord.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return categoryRecord, nil
}

// ListCategories lists all categories joined with their system name, newest first.
func (s *Store) ListCategories() ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(context.Background(),
		`SELECT c.id, c.name, c.system_id, s.name, c.created_at
		 FROM categories c
		 INNER JOIN systems s ON c.system_id = s.id
		 ORDER BY c.created_at DESC, c.id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	defer func() { _ = rows.Close() }()

	var categories []models.Category
	for rows.Next() {
		var categoryRecord models.Category
		err := rows.Scan(&categoryRecord.ID, &categoryRecord.Name, &categoryRecord.SystemID, &categoryRecord.SystemName, &categoryRecord.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
		}
		categories = append(categories, categoryRecord)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return categories, nil
}

// UpdateCategory updates a category's name and parent system.
func (s *Store) UpdateCategory(categoryID int64, name string, systemID int64) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" || systemID == 0 {
		return nil, fmt.Errorf("%w: name and systemId are required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.getSystem(systemID); err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(context.Background(),
		`UPDATE categories SET name = ?, system_id = ? WHERE id = ?`,
		name, systemID, categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	if rowsAffected == 0 {
		return nil, ErrCategoryNotFound
	}

	return s.getCategory(categoryID)
}

// DeleteCategory deletes a category. Dependent downloads are removed by the
// cascade rule; their storage keys are returned so the caller can sweep the
// blobs.
func (s *Store) DeleteCategory(categoryID int64) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx := context.Background()

	keys, err := s.storageKeys(ctx,
		`SELECT file_path FROM downloads WHERE category_id = ?`,
		categoryID,
	)
	if err != nil {
		return nil, err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	if rowsAffected == 0 {
		return nil, ErrCategoryNotFound
	}

	return keys, nil
}
