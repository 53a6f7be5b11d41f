package enquiry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
	"github.com/heartmarshall/tourdesk-backend/internal/listing"
)

// SubmitContact sanitizes and stores a public contact message.
// Invalid submissions are rejected before any write.
func (s *Service) SubmitContact(ctx context.Context, input ContactInput) (*domain.ContactEnquiry, error) {
	in := input.Clean()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	created, err := s.contacts.Create(ctx, &domain.ContactEnquiry{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
		Submission: domain.Submission{
			UserAgent: in.UserAgent,
			Path:      in.Path,
		},
		FollowUpDone: false,
	})
	if err != nil {
		return nil, fmt.Errorf("create contact enquiry: %w", err)
	}

	s.log.InfoContext(ctx, "contact enquiry received",
		slog.String("enquiry_id", created.ID.String()),
		slog.String("path", in.Path),
	)

	return created, nil
}

// ListContacts returns every contact enquiry, newest first.
func (s *Service) ListContacts(ctx context.Context) ([]domain.ContactEnquiry, error) {
	items, err := s.contacts.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list contact enquiries: %w", err)
	}
	return listing.SortNewestFirst(items, func(e domain.ContactEnquiry) *time.Time { return e.CreatedAt }), nil
}

// SetContactFollowUp marks a contact enquiry as followed up, or not.
func (s *Service) SetContactFollowUp(ctx context.Context, id uuid.UUID, done bool) error {
	if err := s.contacts.SetFollowUp(ctx, id, done); err != nil {
		return fmt.Errorf("set contact follow-up: %w", err)
	}

	s.log.InfoContext(ctx, "contact follow-up changed",
		slog.String("enquiry_id", id.String()),
		slog.Bool("done", done),
	)

	return nil
}
