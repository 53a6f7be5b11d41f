package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin is the only role issued by this backend.
const RoleAdmin = "admin"

// Admin is an account allowed into the admin console.
type Admin struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time
}
