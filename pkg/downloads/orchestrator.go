package downloads

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"adminpanel/pkg/blobstore"
	"adminpanel/pkg/database"
	"adminpanel/pkg/log"
	"adminpanel/pkg/models"

	"github.com/dustin/go-humanize"
)

// Orchestrator coordinates download metadata rows with their backing blobs.
// The two writes are not transactional: the blob is persisted first, and if
// the row insert fails the blob is removed best-effort. On deletion the row
// is the operation of record; a blob that cannot be removed is logged as an
// orphan, never retried.
type Orchestrator struct {
	db    *database.Store
	blobs *blobstore.Store
}

// New creates an orchestrator over the given stores.
func New(db *database.Store, blobs *blobstore.Store) *Orchestrator {
	return &Orchestrator{db: db, blobs: blobs}
}

// Create persists the uploaded blob, then records the metadata row.
func (o *Orchestrator) Create(name string, reader io.Reader, originalName, mimeType string, categoryID *int64) (*models.Download, error) {
	name = strings.TrimSpace(name)
	if name == "" || originalName == "" || reader == nil {
		return nil, fmt.Errorf("%w: name and file are required", ErrValidation)
	}

	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	key, size, err := o.blobs.Put(reader, originalName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	downloadRecord, err := o.db.InsertDownload(name, originalName, key, size, mimeType, categoryID)
	if err != nil {
		// Best-effort cleanup of the just-written blob; a failure here leaves
		// an orphan, which is logged and not escalated.
		if cleanupErr := o.blobs.Delete(key); cleanupErr != nil {
			log.Warn().Err(cleanupErr).Str("key", key).Msg("Failed to clean up blob after row insert failure")
		}
		return nil, err
	}

	log.Info().
		Str("name", name).
		Str("file_name", originalName).
		Str("size", humanize.Bytes(uint64(size))).
		Int64("id", downloadRecord.ID).
		Msg("Download created")

	return downloadRecord, nil
}

// Retrieve returns the download metadata and a reader over its blob. The
// caller must close the reader.
func (o *Orchestrator) Retrieve(downloadID int64) (*models.Download, io.ReadCloser, error) {
	downloadRecord, err := o.db.GetDownload(downloadID)
	if errors.Is(err, database.ErrDownloadNotFound) {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	reader, _, err := o.blobs.Open(downloadRecord.FilePath)
	var notFoundErr blobstore.BlobNotFoundError
	if errors.As(err, &notFoundErr) {
		log.Error().
			Int64("id", downloadID).
			Str("key", downloadRecord.FilePath).
			Msg("Download row exists but blob is missing")
		return nil, nil, ErrBlobMissing
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return downloadRecord, reader, nil
}

// Delete removes the download. The row deletion is the operation of record:
// a blob that cannot be removed does not fail the delete, it is logged as an
// orphan.
func (o *Orchestrator) Delete(downloadID int64) error {
	downloadRecord, err := o.db.GetDownload(downloadID)
	if errors.Is(err, database.ErrDownloadNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := o.blobs.Delete(downloadRecord.FilePath); err != nil {
		log.Warn().
			Err(err).
			Int64("id", downloadID).
			Str("key", downloadRecord.FilePath).
			Msg("Failed to delete blob, orphan left behind")
	}

	if err := o.db.DeleteDownload(downloadID); err != nil {
		if errors.Is(err, database.ErrDownloadNotFound) {
			return ErrNotFound
		}
		return err
	}

	log.Info().Int64("id", downloadID).Msg("Download deleted")
	return nil
}

// List returns downloads, newest first, optionally filtered by category.
func (o *Orchestrator) List(categoryID *int64) ([]models.Download, error) {
	return o.db.ListDownloads(categoryID)
}

// SweepBlobs removes the blobs left behind by cascade-deleted download rows.
// Failures are logged only; the rows are already gone.
func (o *Orchestrator) SweepBlobs(keys []string) {
	for _, key := range keys {
		if err := o.blobs.Delete(key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Failed to sweep blob after cascade delete")
		}
	}
}
