package auth

import "github.com/google/uuid"

// NewSessionID mints the opaque per-login session identifier. It is carried
// in its own cookie for request correlation and is never an authorization
// input; nothing reads it back server-side.
func NewSessionID() string {
	return uuid.NewString()
}
