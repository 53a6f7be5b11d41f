// Package loader provides per-request DataLoaders that batch the category
// lookups needed when rendering tour lists. Loaders call the repository
// directly, bypassing the service layer.
package loader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type categoryRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	// CategoryByID resolves a tour's category reference. Unknown or
	// malformed ids resolve to nil: tours may point at deleted categories.
	CategoryByID *dataloader.Loader[string, *domain.Category]
}

// NewLoaders creates a fresh set of loaders. Must be called per request
// because loaders cache results.
func NewLoaders(categories categoryRepo) *Loaders {
	return &Loaders{
		CategoryByID: dataloader.NewBatchedLoader(
			newCategoryBatchFn(categories),
			dataloader.WithWait[string, *domain.Category](wait),
			dataloader.WithBatchCapacity[string, *domain.Category](maxBatch),
		),
	}
}

func newCategoryBatchFn(repo categoryRepo) dataloader.BatchFunc[string, *domain.Category] {
	return func(ctx context.Context, keys []string) []*dataloader.Result[*domain.Category] {
		results := make([]*dataloader.Result[*domain.Category], len(keys))

		ids := make([]uuid.UUID, 0, len(keys))
		for _, k := range keys {
			if id, err := uuid.Parse(k); err == nil {
				ids = append(ids, id)
			}
		}

		byID := make(map[string]*domain.Category, len(ids))
		if len(ids) > 0 {
			categories, err := repo.GetByIDs(ctx, ids)
			if err != nil {
				for i := range results {
					results[i] = &dataloader.Result[*domain.Category]{Error: err}
				}
				return results
			}
			for i := range categories {
				byID[categories[i].ID.String()] = &categories[i]
			}
		}

		for i, k := range keys {
			var c *domain.Category
			if id, err := uuid.Parse(k); err == nil {
				c = byID[id.String()]
			}
			results[i] = &dataloader.Result[*domain.Category]{Data: c}
		}
		return results
	}
}

// LoadCategories resolves several category references at once, preserving
// order. A nil entry means the reference is dangling.
func (l *Loaders) LoadCategories(ctx context.Context, ids []string) ([]*domain.Category, error) {
	out, errs := l.CategoryByID.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "loaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context, or nil when the middleware
// is not mounted.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}

// Middleware instantiates per-request loaders and stores them in the request context.
func Middleware(categories categoryRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(categories))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
