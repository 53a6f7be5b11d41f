// Package enquiry accepts public contact and tour enquiry submissions and
// lets admins track their follow-up progress. Enquiries are never deleted.
package enquiry

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contactRepo interface {
	Create(ctx context.Context, e *domain.ContactEnquiry) (*domain.ContactEnquiry, error)
	List(ctx context.Context, followUpDone *bool) ([]domain.ContactEnquiry, error)
	SetFollowUp(ctx context.Context, id uuid.UUID, done bool) error
}

type tourFormRepo interface {
	Create(ctx context.Context, e *domain.TourEnquiry) (*domain.TourEnquiry, error)
	List(ctx context.Context, status *domain.TourEnquiryStatus) ([]domain.TourEnquiry, error)
	SetFollowUp(ctx context.Context, id uuid.UUID, done bool, status domain.TourEnquiryStatus) error
	SetCompleted(ctx context.Context, id uuid.UUID, completed bool, status domain.TourEnquiryStatus) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the enquiry business logic.
type Service struct {
	log       *slog.Logger
	contacts  contactRepo
	tourForms tourFormRepo
}

// NewService creates a new Enquiry service.
func NewService(logger *slog.Logger, contacts contactRepo, tourForms tourFormRepo) *Service {
	return &Service{
		log:       logger.With("service", "enquiry"),
		contacts:  contacts,
		tourForms: tourForms,
	}
}
