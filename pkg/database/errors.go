package database

import "errors"

var (
	// ErrValidation is returned when required fields are missing or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrSystemNotFound is returned when the requested system does not exist.
	ErrSystemNotFound = errors.New("system not found")

	// ErrCategoryNotFound is returned when the requested category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrAreaNotFound is returned when the requested area does not exist.
	ErrAreaNotFound = errors.New("area not found")

	// ErrDownloadNotFound is returned when the requested download does not exist.
	ErrDownloadNotFound = errors.New("download not found")

	// ErrUserNotFound is returned when the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when creating a user with a username that already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrDatabase is returned when a database operation fails.
	ErrDatabase = errors.New("database error")
)
