package auth

import "errors"

var (
	// ErrInvalidCredentials is returned on login failure. Unknown usernames
	// and wrong passwords are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a credential is malformed, tampered
	// with, expired or revoked.
	ErrInvalidToken = errors.New("invalid or expired token")
)
