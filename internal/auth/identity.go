package auth

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the verified content of an admin access token.
type Claims struct {
	AdminID   uuid.UUID
	Email     string
	Role      string
	ExpiresAt time.Time
}
