package auth

import (
	"strings"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

const (
	maxEmailLength = 254
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
	minPasswordBytes = 8
)

// LoginInput holds credentials for an admin login.
type LoginInput struct {
	Email    string
	Password string
}

func (i *LoginInput) normalize() {
	i.Email = normalizeEmail(i.Email)
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs domain.FieldErrors
	validateEmail(&errs, i.Email)

	if i.Password == "" {
		errs.Add("password", "required")
	} else if len(i.Password) > maxPasswordBytes {
		errs.Add("password", "too long")
	}

	return errs.Err()
}

// BootstrapInput holds parameters for creating or resetting an admin account.
type BootstrapInput struct {
	Email    string
	Password string
}

// Validate validates the bootstrap input.
func (i BootstrapInput) Validate() error {
	var errs domain.FieldErrors
	validateEmail(&errs, i.Email)

	switch {
	case i.Password == "":
		errs.Add("password", "required")
	case len(i.Password) < minPasswordBytes:
		errs.Add("password", "must be at least 8 characters")
	case len(i.Password) > maxPasswordBytes:
		errs.Add("password", "too long")
	}

	return errs.Err()
}

func validateEmail(errs *domain.FieldErrors, email string) {
	switch {
	case email == "":
		errs.Add("email", "required")
	case len(email) > maxEmailLength:
		errs.Add("email", "too long")
	case !strings.Contains(email, "@"):
		errs.Add("email", "invalid email format")
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
