package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is an immutable snapshot of an authenticated identity. It is
// created at login and never mutated, only revoked or expired.
type Session struct {
	BaseSimple
	UserID    uuid.UUID  `db:"user_id"`
	Token     uuid.UUID  `db:"token"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
