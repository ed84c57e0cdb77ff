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

// InsertDownload records metadata for an uploaded file. The blob must
// already be persisted under filePath. An optional category is pre-checked
// so the caller gets a clean not-found result instead of a foreign-key
// constraint failure.
func (s *Store) InsertDownload(name, fileName, filePath string, fileSize int64, mimeType string, categoryID *int64) (*models.Download, error) {
	name = strings.TrimSpace(name)
	if name == "" || fileName == "" || filePath == "" {
		return nil, fmt.Errorf("%w: name and file are required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var categoryName string
	if categoryID != nil {
		categoryRecord, err := s.getCategory(*categoryID)
		if err != nil {
			return nil, err
		}
		categoryName = categoryRecord.Name
	}

	now := time.Now()
	result, err := s.db.ExecContext(context.Background(),
		`INSERT INTO downloads (name, file_name, file_path, file_size, mime_type, category_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		name, fileName, filePath, fileSize, mimeType, categoryID, now,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	downloadID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return &models.Download{
		ID:           downloadID,
		Name:         name,
		FileName:     fileName,
		FilePath:     filePath,
		FileSize:     fileSize,
		MimeType:     mimeType,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		CreatedAt:    now,
	}, nil
}

// GetDownload retrieves a download by ID.
func (s *Store) GetDownload(downloadID int64) (*models.Download, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	downloadRecord := &models.Download{}
	var categoryName sql.NullString
	err := s.db.QueryRowContext(context.Background(),
		`SELECT d.id, d.name, d.file_name, d.file_path, d.file_size, d.mime_type, d.category_id, c.name, d.created_at
		 FROM downloads d
		 LEFT JOIN categories c ON d.category_id = c.id
		 WHERE d.id = ?`,
		downloadID,
	).Scan(
		&downloadRecord.ID, &downloadRecord.Name, &downloadRecord.FileName, &downloadRecord.FilePath,
		&downloadRecord.FileSize, &downloadRecord.MimeType, &downloadRecord.CategoryID, &categoryName,
		&downloadRecord.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDownloadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	if categoryName.Valid {
		downloadRecord.CategoryName = categoryName.String
	}

	return downloadRecord, nil
}

// ListDownloads lists downloads, newest first, optionally filtered by category.
func (s *Store) ListDownloads(categoryID *int64) ([]models.Download, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT d.id, d.name, d.file_name, d.file_path, d.file_size, d.mime_type, d.category_id, c.name, d.created_at
	          FROM downloads d
	          LEFT JOIN categories c ON d.category_id = c.id`
	args := []interface{}{}

	if categoryID != nil {
		query += ` WHERE d.category_id = ?`
		args = append(args, *categoryID)
	}

	query += ` ORDER BY d.created_at DESC, d.id DESC`

	rows, err := s.db.QueryContext(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	defer func() { _ = rows.Close() }()

	var downloads []models.Download
	for rows.Next() {
		var (
			downloadRecord models.Download
			categoryName   sql.NullString
		)
		err := rows.Scan(
			&downloadRecord.ID, &downloadRecord.Name, &downloadRecord.FileName, &downloadRecord.FilePath,
			&downloadRecord.FileSize, &downloadRecord.MimeType, &downloadRecord.CategoryID, &categoryName,
			&downloadRecord.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
		}

		if categoryName.Valid {
			downloadRecord.CategoryName = categoryName.String
		}

		downloads = append(downloads, downloadRecord)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return downloads, nil
}

// DeleteDownload removes a download row. The backing blob is the
// orchestrator's responsibility.
func (s *Store) DeleteDownload(downloadID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(context.Background(), `DELETE FROM downloads WHERE id = ?`, downloadID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDatabase, err)
	}
	if rowsAffected == 0 {
		return ErrDownloadNotFound
	}

	return nil
}
