package category

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// CreateInput
// ---------------------------------------------------------------------------

// CreateInput holds the fields of a new category.
type CreateInput struct {
	Name        string
	Description string
	ImageURL    string
	Type        domain.CategoryType
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs domain.FieldErrors

	validateName(&errs, i.Name)
	validateText(&errs, "description", i.Description, MaxDescriptionLength)
	validateText(&errs, "image_url", i.ImageURL, MaxImageURLLength)

	if !i.Type.IsValid() {
		errs.Add("type", "must be tour or blog")
	}

	return errs.Err()
}

// ---------------------------------------------------------------------------
// UpdateInput
// ---------------------------------------------------------------------------

// UpdateInput is a partial update. Nil fields keep their stored value.
type UpdateInput struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	ImageURL    *string
	Type        *domain.CategoryType
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs domain.FieldErrors

	if i.ID == uuid.Nil {
		errs.Add("id", "required")
	}
	if i.Name != nil {
		validateName(&errs, *i.Name)
	}
	if i.Description != nil {
		validateText(&errs, "description", *i.Description, MaxDescriptionLength)
	}
	if i.ImageURL != nil {
		validateText(&errs, "image_url", *i.ImageURL, MaxImageURLLength)
	}
	if i.Type != nil && !i.Type.IsValid() {
		errs.Add("type", "must be tour or blog")
	}

	return errs.Err()
}

// patch returns the trimmed partial update.
func (i UpdateInput) patch() domain.CategoryPatch {
	return domain.CategoryPatch{
		Name:        trimmed(i.Name),
		Description: trimmed(i.Description),
		ImageURL:    trimmed(i.ImageURL),
		Type:        i.Type,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validateName(errs *domain.FieldErrors, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		errs.Add("name", "required")
		return
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		errs.Add("name", fmt.Sprintf("too long (max %d)", MaxNameLength))
	}
}

func validateText(errs *domain.FieldErrors, field, v string, limit int) {
	if utf8.RuneCountInString(strings.TrimSpace(v)) > limit {
		errs.Add(field, fmt.Sprintf("too long (max %d)", limit))
	}
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}
