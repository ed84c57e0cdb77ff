package models

import "time"

// User is an administrative account. PasswordHash is a bcrypt hash and is
// never serialized in API responses.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
