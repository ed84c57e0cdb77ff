package models

import "time"

// Area is a named block of rich-text content used as a content override
// (e.g. "footer text", "hero text").
type Area struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
