package auth

import (
	"context"
	"fmt"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
	"github.com/heartmarshall/tourdesk-backend/pkg/ctxutil"
)

// ValidateToken verifies an access token and returns the admin identity it carries.
// A token whose email has since been removed from the allow-list is rejected.
func (s *Service) ValidateToken(ctx context.Context, token string) (ctxutil.Admin, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return ctxutil.Admin{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	if claims.Role != domain.RoleAdmin || !s.cfg.IsAdminEmail(claims.Email) {
		return ctxutil.Admin{}, domain.ErrForbidden
	}

	return ctxutil.Admin{
		ID:    claims.AdminID,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

// Session returns the admin account behind the authenticated request.
func (s *Service) Session(ctx context.Context) (*domain.Admin, error) {
	identity, ok := ctxutil.AdminFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	admin, err := s.admins.GetByID(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Session get admin: %w", err)
	}
	return admin, nil
}
