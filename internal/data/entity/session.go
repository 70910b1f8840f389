package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a bearer token issued to a user. Sessions are issued outside
// this service; here they are only looked up.
type Session struct {
	Record
	UserID    uuid.UUID  `db:"user_id"`
	Token     uuid.UUID  `db:"token"`
	UserAgent *string    `db:"user_agent"`
	IPAddress *string    `db:"ip_address"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
