package models

import "time"

// Download describes an uploaded file. The binary itself lives in the blob
// store under FilePath; that key is a storage-layer identifier and is never
// serialized to clients.
type Download struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FileName string `json:"fileName"`
	FilePath string `json:"-"`
	FileSize int64  `json:"fileSize"`
	MimeType string `json:"mimeType"`
	// CategoryID is nil for uncategorized uploads.
	CategoryID *int64 `json:"categoryId,omitempty"`
	// CategoryName is populated by list queries that join the categories table.
	CategoryName string    `json:"categoryName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
