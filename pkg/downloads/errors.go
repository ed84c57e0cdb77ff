package downloads

import "errors"

var (
	// ErrValidation is returned when required upload fields are missing.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when the requested download does not exist.
	ErrNotFound = errors.New("download not found")

	// ErrBlobMissing is returned when a download row exists but its blob is
	// gone. This signals a data-integrity problem and is reported distinctly
	// from ErrNotFound.
	ErrBlobMissing = errors.New("file missing from storage")

	// ErrStorage is returned when the blob store fails to persist or read a blob.
	ErrStorage = errors.New("storage error")
)
