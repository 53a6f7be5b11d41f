package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
	"github.com/heartmarshall/tourdesk-backend/internal/listing"
)

// List returns the categories of typ (all types when nil), newest first.
func (s *Service) List(ctx context.Context, typ *domain.CategoryType) ([]domain.Category, error) {
	if typ != nil && !typ.IsValid() {
		return nil, domain.NewValidationError("type", "must be tour or blog")
	}

	items, err := s.categories.List(ctx, typ)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return listing.SortNewestFirst(items, createdAt), nil
}

// ListActive returns the active categories of typ, newest first.
func (s *Service) ListActive(ctx context.Context, typ *domain.CategoryType) ([]domain.Category, error) {
	items, err := s.List(ctx, typ)
	if err != nil {
		return nil, err
	}

	active := make([]domain.Category, 0, len(items))
	for _, c := range items {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}

// Get returns a single category.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	return s.categories.GetByID(ctx, id)
}

// GetByIDs returns the categories that exist among ids, in no particular order.
func (s *Service) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error) {
	if len(ids) == 0 {
		return []domain.Category{}, nil
	}
	return s.categories.GetByIDs(ctx, ids)
}

func createdAt(c domain.Category) *time.Time { return c.CreatedAt }
