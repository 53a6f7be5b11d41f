package tour

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
	"github.com/heartmarshall/tourdesk-backend/internal/listing"
)

// List returns all tours, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Tour, error) {
	items, err := s.tours.List(ctx, domain.TourFilter{})
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	return listing.SortNewestFirst(items, createdAt), nil
}

// ListPublished returns published tours, optionally narrowed to a category
// and to featured tours, newest first.
func (s *Service) ListPublished(ctx context.Context, categoryID string, featuredOnly bool) ([]domain.Tour, error) {
	status := domain.TourStatusPublished
	f := domain.TourFilter{Status: &status}
	if categoryID != "" {
		f.CategoryID = &categoryID
	}
	if featuredOnly {
		featured := true
		f.Featured = &featured
	}

	items, err := s.tours.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list published tours: %w", err)
	}
	return listing.SortNewestFirst(items, createdAt), nil
}

// Get returns a tour by id regardless of status.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	return s.tours.GetByID(ctx, id)
}

// GetPublished returns a published tour by slug. Drafts are reported as not found.
func (s *Service) GetPublished(ctx context.Context, slug string) (*domain.Tour, error) {
	t, err := s.tours.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if t.Status != domain.TourStatusPublished {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func createdAt(t domain.Tour) *time.Time { return t.CreatedAt }
