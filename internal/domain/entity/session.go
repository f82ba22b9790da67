package entity

import "time"

// RefreshToken is the durable record of one authenticated session.
// Only the hash of the refresh token is stored; the token itself lives with
// the client for the duration of the session.
type RefreshToken struct {
	ID        int64     // Numeric primary key assigned by the database.
	UserID    int64     // The user this session is bound to.
	TokenHash string    // SHA-256 hash of the refresh token string.
	ExpiresAt time.Time // When the session stops being accepted.
	CreatedAt time.Time // When the session was established.
}
