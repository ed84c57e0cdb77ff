package models

import "time"

// System is a top-level grouping with a display name and an external link.
type System struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"createdAt"`
}
