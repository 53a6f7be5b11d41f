// Package media uploads category and tour images and cleans them up when
// they are replaced or their owner is deleted.
package media

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Kinds
// ---------------------------------------------------------------------------

// Kind is the storage folder an image belongs to.
type Kind string

const (
	KindCategoryTour Kind = "categories/tour"
	KindCategoryBlog Kind = "categories/blog"
	KindTourFeature  Kind = "tours/feature"
	KindTourGallery  Kind = "tours/gallery"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindCategoryTour, KindCategoryBlog, KindTourFeature, KindTourGallery:
		return true
	}
	return false
}

// CategoryKind returns the folder for a category image of type t.
func CategoryKind(t domain.CategoryType) Kind {
	if t == domain.CategoryTypeBlog {
		return KindCategoryBlog
	}
	return KindCategoryTour
}

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type objectStore interface {
	Save(ctx context.Context, key string, data io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	KeyFor(url string) (string, bool)
}

// ---------------------------------------------------------------------------
// Manager
// ---------------------------------------------------------------------------

// Manager stores uploaded images and deletes them by public address.
type Manager struct {
	log   *slog.Logger
	store objectStore
	now   func() time.Time
}

// NewManager creates a new media Manager.
func NewManager(logger *slog.Logger, store objectStore) *Manager {
	return &Manager{
		log:   logger.With("service", "media"),
		store: store,
		now:   time.Now,
	}
}
