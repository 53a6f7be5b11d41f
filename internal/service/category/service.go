package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
	"github.com/heartmarshall/tourdesk-backend/internal/service/media"
)

// ---------------------------------------------------------------------------
// Constants
// ---------------------------------------------------------------------------

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 1000
	MaxImageURLLength    = 2048
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error)
	List(ctx context.Context, typ *domain.CategoryType) ([]domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.CategoryPatch) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type slugger interface {
	Unique(ctx context.Context, source string) (string, error)
}

type imageCleaner interface {
	DeleteByAddress(ctx context.Context, address string) media.CleanupResult
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service manages tour and blog categories.
type Service struct {
	log        *slog.Logger
	categories categoryRepo
	slugs      slugger
	images     imageCleaner
	tx         txManager
}

// NewService creates a new Category service.
func NewService(
	logger *slog.Logger,
	categories categoryRepo,
	slugs slugger,
	images imageCleaner,
	tx txManager,
) *Service {
	return &Service{
		log:        logger.With("service", "category"),
		categories: categories,
		slugs:      slugs,
		images:     images,
		tx:         tx,
	}
}

// cleanupImage deletes a replaced or orphaned image. The result is only logged.
func (s *Service) cleanupImage(ctx context.Context, categoryID uuid.UUID, address string) {
	res := s.images.DeleteByAddress(ctx, address)
	if !res.OK() {
		s.log.WarnContext(ctx, "category image left behind",
			slog.String("category_id", categoryID.String()),
			slog.String("address", address),
		)
	}
}
