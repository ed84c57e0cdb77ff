package blobstore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"adminpanel/pkg/log"
)

const (
	dirPerm  = 0750
	filePerm = 0640
)

// unsafeChars matches everything that is stripped from original filenames
// before they become part of a storage key.
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Store persists uploaded blobs in a flat directory. Keys are derived from
// the upload timestamp and the sanitized original filename, so two uploads
// racing within the same millisecond with the same name overwrite each
// other; that degraded behavior is accepted.
type Store struct {
	baseDir string
}

// New creates a blob store rooted at baseDir. The directory is created
// lazily on the first write.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Put writes the blob to disk and returns its storage key.
func (s *Store) Put(reader io.Reader, originalName string) (string, int64, error) {
	if err := os.MkdirAll(s.baseDir, dirPerm); err != nil {
		return "", 0, fmt.Errorf("failed to create storage directory: %w", err)
	}

	key := buildKey(time.Now(), originalName)

	dst, err := os.OpenFile(filepath.Join(s.baseDir, key), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create blob file: %w", err)
	}

	written, err := io.Copy(dst, reader)
	if err != nil {
		_ = dst.Close()
		if removeErr := os.Remove(dst.Name()); removeErr != nil {
			log.Warn().Err(removeErr).Str("key", key).Msg("Failed to remove partial blob")
		}
		return "", 0, fmt.Errorf("failed to write blob: %w", err)
	}

	if err := dst.Close(); err != nil {
		return "", 0, fmt.Errorf("failed to close blob file: %w", err)
	}

	return key, written, nil
}

// Open returns a reader for the blob and its size on disk.
func (s *Store) Open(key string) (io.ReadCloser, int64, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, 0, err
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, 0, BlobNotFoundError{Key: key}
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to stat blob: %w", err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open blob: %w", err)
	}

	return file, info.Size(), nil
}

// Exists reports whether the blob is present.
func (s *Store) Exists(key string) (bool, error) {
	path, err := s.resolve(key)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to stat blob: %w", err)
	}

	return true, nil
}

// Delete removes the blob. Deleting a blob that is already gone succeeds,
// so concurrent deletes both observe "already gone" without error.
func (s *Store) Delete(key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}

	return nil
}

// resolve maps a storage key to an on-disk path, rejecting keys that would
// escape the storage directory.
func (s *Store) resolve(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.ContainsAny(key, `/\`) {
		return "", InvalidKeyError{Key: key}
	}
	return filepath.Join(s.baseDir, key), nil
}

// buildKey derives the storage key from the upload time and the sanitized
// original filename, matching the <millis>-<name> layout of the uploads dir.
func buildKey(now time.Time, originalName string) string {
	name := unsafeChars.ReplaceAllString(filepath.Base(originalName), "_")
	if name == "" || name == "." {
		name = "upload"
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + name
}
