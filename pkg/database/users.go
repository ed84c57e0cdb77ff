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

// CreateUser creates a new administrative user. The password must already be
// hashed by the caller.
func (s *Store) CreateUser(username, passwordHash string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || passwordHash == "" {
		return nil, fmt.Errorf("%w: username and password hash are required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	result, err := s.db.ExecContext(context.Background(),
		`INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)`,
		username, passwordHash, now,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return &models.User{
		ID:           userID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}, nil
}

// UpsertUser creates the user or, if the username already exists, replaces
// its password hash. Used by the seed command so re-seeding is idempotent.
func (s *Store) UpsertUser(username, passwordHash string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || passwordHash == "" {
		return nil, fmt.Errorf("%w: username and password hash are required", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	_, err := s.db.ExecContext(context.Background(),
		`INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(username) DO UPDATE SET password_hash = excluded.password_hash`,
		username, passwordHash, now,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return s.getUserByUsername(username)
}

// GetUserByUsername retrieves a user by username.
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.getUserByUsername(username)
}

func (s *Store) getUserByUsername(username string) (*models.User, error) {
	userRecord := &models.User{}
	err := s.db.QueryRowContext(context.Background(),
		`SELECT id, username, password_hash, created_at FROM users WHERE username = ?`,
		username,
	).Scan(&userRecord.ID, &userRecord.Username, &userRecord.PasswordHash, &userRecord.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return userRecord, nil
}

// GetUserByID retrieves a user by ID.
func (s *Store) GetUserByID(userID int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	userRecord := &models.User{}
	err := s.db.QueryRowContext(context.Background(),
		`SELECT id, username, password_hash, created_at FROM users WHERE id = ?`,
		userID,
	).Scan(&userRecord.ID, &userRecord.Username, &userRecord.PasswordHash, &userRecord.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabase, err)
	}

	return userRecord, nil
}
