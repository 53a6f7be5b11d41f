package domain

import (
	"time"

	"github.com/google/uuid"
)

// CategorySlugFallback is used when a category name normalizes to nothing.
const CategorySlugFallback = "category"

// CategoryType separates tour categories from blog categories.
type CategoryType string

const (
	CategoryTypeTour CategoryType = "tour"
	CategoryTypeBlog CategoryType = "blog"
)

func (t CategoryType) String() string { return string(t) }

func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTypeTour, CategoryTypeBlog:
		return true
	}
	return false
}

// Category groups tours or blog posts. Slug is unique across all types.
type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	ImageURL    string
	Type        CategoryType
	IsActive    bool
	ItemCount   int
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

// CategoryPatch is a partial category update. Nil fields are left unchanged.
type CategoryPatch struct {
	Name        *string
	Slug        *string
	Description *string
	ImageURL    *string
	Type        *CategoryType
}

// IsEmpty reports whether the patch changes nothing.
func (p CategoryPatch) IsEmpty() bool {
	return p.Name == nil && p.Slug == nil && p.Description == nil && p.ImageURL == nil && p.Type == nil
}
