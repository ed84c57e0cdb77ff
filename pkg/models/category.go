package models

import "time"

// Category is a named grouping owned by a System.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	SystemID int64  `json:"systemId"`
	// SystemName is populated by list queries that join the systems table.
	SystemName string    `json:"systemName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
