package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/tourdesk-backend/internal/auth"
	"github.com/heartmarshall/tourdesk-backend/internal/config"
	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

// adminRepo defines the admin repository interface needed by auth service.
type adminRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error)
	Upsert(ctx context.Context, email, passwordHash string) (*domain.Admin, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(adminID uuid.UUID, email, role string) (string, time.Time, error)
	ValidateAccessToken(token string) (*auth.Claims, error)
}

// Service implements admin authentication.
type Service struct {
	log      *slog.Logger
	admins   adminRepo
	jwt      jwtManager
	cfg      config.AuthConfig
	hashCost int
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	admins adminRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		admins:   admins,
		jwt:      jwt,
		cfg:      cfg,
		hashCost: bcrypt.DefaultCost,
	}
}
