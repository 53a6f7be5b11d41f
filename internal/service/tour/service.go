package tour

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
	"github.com/heartmarshall/tourdesk-backend/internal/service/media"
)

// DefaultMaxFeatured is how many tours may be featured at once unless configured otherwise.
const DefaultMaxFeatured = 6

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type tourRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tour, error)
	List(ctx context.Context, f domain.TourFilter) ([]domain.Tour, error)
	CountFeatured(ctx context.Context, exclude uuid.UUID) (int, error)
	Create(ctx context.Context, t *domain.Tour) (*domain.Tour, error)
	Update(ctx context.Context, id uuid.UUID, t *domain.Tour) error
	SetStatus(ctx context.Context, id uuid.UUID, status domain.TourStatus) error
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

type slugger interface {
	Unique(ctx context.Context, source string) (string, error)
}

type imageCleaner interface {
	DeleteByAddress(ctx context.Context, address string) media.CleanupResult
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service manages tour listings.
type Service struct {
	log         *slog.Logger
	tours       tourRepo
	tx          txManager
	slugs       slugger
	images      imageCleaner
	maxFeatured int
}

// NewService creates a new Tour service. A negative maxFeatured falls back to DefaultMaxFeatured.
func NewService(
	logger *slog.Logger,
	tours tourRepo,
	tx txManager,
	slugs slugger,
	images imageCleaner,
	maxFeatured int,
) *Service {
	if maxFeatured < 0 {
		maxFeatured = DefaultMaxFeatured
	}
	return &Service{
		log:         logger.With("service", "tour"),
		tours:       tours,
		tx:          tx,
		slugs:       slugs,
		images:      images,
		maxFeatured: maxFeatured,
	}
}

// withFeaturedSlot runs write only if a featured slot is free for a tour
// other than exclude. The count and the write share one serializable
// transaction so two admins cannot both take the last slot.
func (s *Service) withFeaturedSlot(ctx context.Context, exclude uuid.UUID, write func(ctx context.Context) error) error {
	return s.tx.RunSerializable(ctx, func(ctx context.Context) error {
		if err := s.checkFeaturedCap(ctx, exclude); err != nil {
			return err
		}
		return write(ctx)
	})
}

// checkFeaturedCap rejects featuring another tour once maxFeatured tours
// other than exclude already hold the flag.
func (s *Service) checkFeaturedCap(ctx context.Context, exclude uuid.UUID) error {
	n, err := s.tours.CountFeatured(ctx, exclude)
	if err != nil {
		return err
	}
	if n >= s.maxFeatured {
		return domain.NewValidationError("featured", featuredCapMessage(s.maxFeatured))
	}
	return nil
}

// cleanupImages deletes addresses best-effort. Results are only logged.
func (s *Service) cleanupImages(ctx context.Context, tourID uuid.UUID, addresses []string) {
	for _, addr := range addresses {
		if res := s.images.DeleteByAddress(ctx, addr); !res.OK() {
			s.log.WarnContext(ctx, "tour image left behind",
				slog.String("tour_id", tourID.String()),
				slog.String("address", addr),
			)
		}
	}
}
