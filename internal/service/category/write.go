package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

// Create stores a new active category with a slug derived from its name.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)

	slug, err := s.slugs.Unique(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("generate slug: %w", err)
	}

	created, err := s.categories.Create(ctx, &domain.Category{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		Type:        input.Type,
		IsActive:    true,
		ItemCount:   0,
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("category_id", created.ID.String()),
		slog.String("slug", created.Slug),
		slog.String("type", string(created.Type)),
	)

	return created, nil
}

// Update applies a partial update. A stored slug is never changed; a category
// without one gets a slug from the new name, or else the stored name.
// When the image changes, the previous image is deleted best-effort.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	patch := input.patch()

	var (
		previousImage string
		updated       *domain.Category
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.categories.GetByID(txCtx, input.ID)
		if err != nil {
			return err
		}
		previousImage = existing.ImageURL

		if existing.Slug == "" {
			source := existing.Name
			if patch.Name != nil {
				source = *patch.Name
			}
			slug, err := s.slugs.Unique(txCtx, strings.TrimSpace(source))
			if err != nil {
				return fmt.Errorf("generate slug: %w", err)
			}
			patch.Slug = &slug
		}

		if err := s.categories.Update(txCtx, input.ID, patch); err != nil {
			return fmt.Errorf("update category: %w", err)
		}

		updated, err = s.categories.GetByID(txCtx, input.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if patch.ImageURL != nil && *patch.ImageURL != previousImage && previousImage != "" {
		s.cleanupImage(ctx, input.ID, previousImage)
	}

	s.log.InfoContext(ctx, "category updated",
		slog.String("category_id", input.ID.String()),
		slog.String("slug", updated.Slug),
	)

	return updated, nil
}

// SetActive flips the active flag.
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.categories.SetActive(ctx, id, active); err != nil {
		return fmt.Errorf("set category active: %w", err)
	}

	s.log.InfoContext(ctx, "category active changed",
		slog.String("category_id", id.String()),
		slog.Bool("active", active),
	)

	return nil
}

// Delete removes a category and then its image, best-effort.
// Tours that reference the category keep the dangling reference.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	existing, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	if existing.ImageURL != "" {
		s.cleanupImage(ctx, id, existing.ImageURL)
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.String("category_id", id.String()),
		slog.String("slug", existing.Slug),
	)

	return nil
}
