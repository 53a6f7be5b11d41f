package auth

import (
	"time"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

// LoginResult is returned by a successful Login.
type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Admin       *domain.Admin
}
