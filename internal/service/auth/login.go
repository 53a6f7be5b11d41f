package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

// Login authenticates an administrator with email + password.
// Returns ErrUnauthorized if the email is not on the allow-list, the account
// does not exist, or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	input.normalize()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if !s.cfg.IsAdminEmail(input.Email) {
		s.log.WarnContext(ctx, "login rejected: email not on allow-list",
			slog.String("email", input.Email))
		return nil, domain.ErrUnauthorized
	}

	admin, err := s.admins.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get admin: %w", err)
	}

	if admin.PasswordHash == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, expires, err := s.jwt.GenerateAccessToken(admin.ID, admin.Email, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate access token: %w", err)
	}

	if err := s.admins.TouchLastLogin(ctx, admin.ID); err != nil {
		s.log.WarnContext(ctx, "failed to record last login",
			slog.String("admin_id", admin.ID.String()),
			slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "admin logged in",
		slog.String("admin_id", admin.ID.String()))

	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   expires,
		Admin:       admin,
	}, nil
}
