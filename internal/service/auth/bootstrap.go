package auth

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

// EnsureAdmin creates the admin account or resets its password.
// The email must already be on the allow-list.
func (s *Service) EnsureAdmin(ctx context.Context, input BootstrapInput) (*domain.Admin, error) {
	input.Email = normalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if !s.cfg.IsAdminEmail(input.Email) {
		return nil, domain.NewValidationError("email", "not on the admin allow-list")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.EnsureAdmin hash password: %w", err)
	}

	admin, err := s.admins.Upsert(ctx, input.Email, string(hash))
	if err != nil {
		return nil, fmt.Errorf("auth.EnsureAdmin upsert: %w", err)
	}

	s.log.InfoContext(ctx, "admin account ensured",
		slog.String("admin_id", admin.ID.String()),
		slog.String("email", admin.Email))

	return admin, nil
}
