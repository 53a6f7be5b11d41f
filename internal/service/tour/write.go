package tour

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

// Create stores a new tour with a slug derived from its title.
func (s *Service) Create(ctx context.Context, form Form) (*domain.Tour, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	t := MapForm(form)

	var created *domain.Tour
	create := func(ctx context.Context) error {
		slug, err := s.slugs.Unique(ctx, t.Title)
		if err != nil {
			return fmt.Errorf("generate slug: %w", err)
		}
		t.Slug = slug

		out, err := s.tours.Create(ctx, &t)
		if err != nil {
			return fmt.Errorf("create tour: %w", err)
		}
		created = out
		return nil
	}

	var err error
	if t.Featured {
		err = s.withFeaturedSlot(ctx, uuid.Nil, create)
	} else {
		err = create(ctx)
	}
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tour created",
		slog.String("tour_id", created.ID.String()),
		slog.String("slug", created.Slug),
		slog.String("status", string(created.Status)),
	)

	return created, nil
}

// Update replaces every editable field from form. The slug and the featured
// flag never change here; featuring goes through SetFeatured.
// Images the form no longer references are deleted best-effort.
func (s *Service) Update(ctx context.Context, id uuid.UUID, form Form) (*domain.Tour, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.tours.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t := MapForm(form)
	t.Featured = existing.Featured

	if err := s.tours.Update(ctx, id, &t); err != nil {
		return nil, fmt.Errorf("update tour: %w", err)
	}

	s.cleanupImages(ctx, id, droppedImages(existing, &t))

	updated, err := s.tours.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "tour updated",
		slog.String("tour_id", id.String()),
		slog.String("slug", updated.Slug),
	)

	return updated, nil
}

// SetStatus publishes or unpublishes a tour without touching other fields.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, status domain.TourStatus) error {
	if !status.IsValid() {
		return domain.NewValidationError("status", "must be draft or published")
	}

	if err := s.tours.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("set tour status: %w", err)
	}

	s.log.InfoContext(ctx, "tour status changed",
		slog.String("tour_id", id.String()),
		slog.String("status", string(status)),
	)

	return nil
}

// SetFeatured toggles the featured flag. Turning it on is rejected before
// any write when the cap is already reached by other tours.
func (s *Service) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	set := func(ctx context.Context) error {
		if err := s.tours.SetFeatured(ctx, id, featured); err != nil {
			return fmt.Errorf("set tour featured: %w", err)
		}
		return nil
	}

	var err error
	if featured {
		err = s.withFeaturedSlot(ctx, id, set)
	} else {
		err = set(ctx)
	}
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "tour featured changed",
		slog.String("tour_id", id.String()),
		slog.Bool("featured", featured),
	)

	return nil
}

// Delete removes a tour and then its images, best-effort.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.tours.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.tours.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tour: %w", err)
	}

	s.cleanupImages(ctx, id, imageAddresses(existing))

	s.log.InfoContext(ctx, "tour deleted",
		slog.String("tour_id", id.String()),
		slog.String("slug", existing.Slug),
	)

	return nil
}
