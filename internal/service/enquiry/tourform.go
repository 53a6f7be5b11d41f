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

// SubmitTourForm sanitizes and stores a public tour enquiry with status new.
// Invalid submissions are rejected before any write.
func (s *Service) SubmitTourForm(ctx context.Context, input TourFormInput) (*domain.TourEnquiry, error) {
	in := input.Clean()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	created, err := s.tourForms.Create(ctx, &domain.TourEnquiry{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Country:       in.Country,
		ArrivalDate:   in.ArrivalDate,
		Days:          in.Days,
		Adults:        in.Adults,
		Children:      in.Children,
		Accommodation: in.Accommodation,
		Info:          in.Info,
		Submission: domain.Submission{
			UserAgent: in.UserAgent,
			Path:      in.Path,
		},
		Status:        domain.TourEnquiryStatusNew,
		FollowUpDone:  false,
		TripCompleted: false,
	})
	if err != nil {
		return nil, fmt.Errorf("create tour enquiry: %w", err)
	}

	s.log.InfoContext(ctx, "tour enquiry received",
		slog.String("enquiry_id", created.ID.String()),
		slog.String("path", in.Path),
	)

	return created, nil
}

// ListTourForms returns every tour enquiry, newest first.
func (s *Service) ListTourForms(ctx context.Context) ([]domain.TourEnquiry, error) {
	items, err := s.tourForms.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list tour enquiries: %w", err)
	}
	return listing.SortNewestFirst(items, func(e domain.TourEnquiry) *time.Time { return e.CreatedAt }), nil
}

// SetTourFormFollowUp toggles follow-up; status becomes followed or new.
func (s *Service) SetTourFormFollowUp(ctx context.Context, id uuid.UUID, done bool) error {
	status := domain.FollowUpStatus(done)
	if err := s.tourForms.SetFollowUp(ctx, id, done, status); err != nil {
		return fmt.Errorf("set tour enquiry follow-up: %w", err)
	}

	s.log.InfoContext(ctx, "tour enquiry follow-up changed",
		slog.String("enquiry_id", id.String()),
		slog.String("status", string(status)),
	)

	return nil
}

// SetTourFormCompleted toggles trip completion; status becomes completed or followed.
func (s *Service) SetTourFormCompleted(ctx context.Context, id uuid.UUID, completed bool) error {
	status := domain.CompletedStatus(completed)
	if err := s.tourForms.SetCompleted(ctx, id, completed, status); err != nil {
		return fmt.Errorf("set tour enquiry completed: %w", err)
	}

	s.log.InfoContext(ctx, "tour enquiry completion changed",
		slog.String("enquiry_id", id.String()),
		slog.String("status", string(status)),
	)

	return nil
}
