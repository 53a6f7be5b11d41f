package tour

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 20000
	MaxShortFieldLength  = 200
	MaxMapEmbedLength    = 5000
	MaxListItems         = 50
	MaxItineraryDays     = 60
)

// ItineraryDayForm is one itinerary row as entered. Day numbers are assigned by MapForm.
type ItineraryDayForm struct {
	Title       string
	Description string
}

// Form is the admin tour form.
type Form struct {
	Title           string
	Description     string
	CategoryID      string
	CategoryName    string
	Location        string
	Duration        string
	MaxGroupSize    *int
	Difficulty      domain.Difficulty
	Season          string
	MinAge          *int
	MapEmbedHTML    string
	FeatureImageURL string
	GalleryImages   []string
	Highlights      []string
	Included        []string
	Excluded        []string
	Itinerary       []ItineraryDayForm
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	OGImage         string
	Status          domain.TourStatus
	Featured        bool
}

// Validate checks all fields and collects all errors.
func (f Form) Validate() error {
	var errs domain.FieldErrors

	required(&errs, "title", f.Title, MaxTitleLength)
	required(&errs, "description", f.Description, MaxDescriptionLength)
	required(&errs, "location", f.Location, MaxShortFieldLength)
	required(&errs, "category_id", f.CategoryID, MaxShortFieldLength)

	optional(&errs, "category_name", f.CategoryName, MaxShortFieldLength)
	optional(&errs, "duration", f.Duration, MaxShortFieldLength)
	optional(&errs, "season", f.Season, MaxShortFieldLength)
	optional(&errs, "map_embed_html", f.MapEmbedHTML, MaxMapEmbedLength)
	optional(&errs, "meta_title", f.MetaTitle, MaxTitleLength)
	optional(&errs, "meta_description", f.MetaDescription, MaxShortFieldLength*5)
	optional(&errs, "meta_keywords", f.MetaKeywords, MaxShortFieldLength*5)

	if f.MaxGroupSize != nil && *f.MaxGroupSize < 0 {
		errs.Add("max_group_size", "must not be negative")
	}
	if f.MinAge != nil && *f.MinAge < 0 {
		errs.Add("min_age", "must not be negative")
	}
	if f.Difficulty != "" && !f.Difficulty.IsValid() {
		errs.Add("difficulty", "must be Easy, Moderate or Hard")
	}
	if f.Status != "" && !f.Status.IsValid() {
		errs.Add("status", "must be draft or published")
	}

	lists := []struct {
		field string
		items []string
	}{
		{"gallery_images", f.GalleryImages},
		{"highlights", f.Highlights},
		{"included", f.Included},
		{"excluded", f.Excluded},
	}
	for _, l := range lists {
		if len(l.items) > MaxListItems {
			errs.Add(l.field, fmt.Sprintf("too many (max %d)", MaxListItems))
		}
	}
	if len(f.Itinerary) > MaxItineraryDays {
		errs.Add("itinerary", fmt.Sprintf("too many days (max %d)", MaxItineraryDays))
	}

	return errs.Err()
}

// MapForm converts the form into the stored tour shape. It trims strings,
// drops blank list entries and empty itinerary days, renumbers the remaining
// days from 1 and fills blank SEO fields from title, description and the
// feature image. Slug, ID and timestamps are left unset.
func MapForm(f Form) domain.Tour {
	feature := strings.TrimSpace(f.FeatureImageURL)
	gallery := domain.TrimNonEmpty(f.GalleryImages)

	images := make([]string, 0, len(gallery)+1)
	if feature != "" {
		images = append(images, feature)
	}
	images = append(images, gallery...)

	title := strings.TrimSpace(f.Title)
	description := strings.TrimSpace(f.Description)

	difficulty := f.Difficulty
	if difficulty == "" {
		difficulty = domain.DifficultyEasy
	}
	status := f.Status
	if status == "" {
		status = domain.TourStatusDraft
	}

	return domain.Tour{
		Title:            title,
		Description:      description,
		Price:            0,
		CategoryID:       strings.TrimSpace(f.CategoryID),
		CategoryName:     strings.TrimSpace(f.CategoryName),
		Location:         strings.TrimSpace(f.Location),
		Duration:         strings.TrimSpace(f.Duration),
		MaxGroupSize:     positive(f.MaxGroupSize),
		Difficulty:       difficulty,
		Season:           strings.TrimSpace(f.Season),
		MinAge:           positive(f.MinAge),
		MapEmbedHTML:     strings.TrimSpace(f.MapEmbedHTML),
		FeatureImageURL:  feature,
		ImageURLs:        images,
		GalleryImageURLs: gallery,
		Highlights:       domain.TrimNonEmpty(f.Highlights),
		Included:         domain.TrimNonEmpty(f.Included),
		Excluded:         domain.TrimNonEmpty(f.Excluded),
		Itinerary:        mapItinerary(f.Itinerary),
		MetaTitle:        firstNonBlank(f.MetaTitle, title),
		MetaDescription:  firstNonBlank(f.MetaDescription, description),
		MetaKeywords:     strings.TrimSpace(f.MetaKeywords),
		OGImage:          firstNonBlank(f.OGImage, feature),
		Status:           status,
		Featured:         f.Featured,
	}
}

func mapItinerary(days []ItineraryDayForm) []domain.ItineraryDay {
	out := make([]domain.ItineraryDay, 0, len(days))
	for _, d := range days {
		title := strings.TrimSpace(d.Title)
		desc := strings.TrimSpace(d.Description)
		if title == "" && desc == "" {
			continue
		}
		out = append(out, domain.ItineraryDay{
			DayNumber:   len(out) + 1,
			Title:       title,
			Description: desc,
		})
	}
	return out
}

// imageAddresses returns the feature and gallery images of t.
func imageAddresses(t *domain.Tour) []string {
	out := make([]string, 0, len(t.GalleryImageURLs)+1)
	if t.FeatureImageURL != "" {
		out = append(out, t.FeatureImageURL)
	}
	return append(out, t.GalleryImageURLs...)
}

// droppedImages returns the images of before that after no longer references.
func droppedImages(before, after *domain.Tour) []string {
	keep := make(map[string]bool)
	for _, a := range imageAddresses(after) {
		keep[a] = true
	}

	var out []string
	for _, a := range imageAddresses(before) {
		if !keep[a] {
			keep[a] = true
			out = append(out, a)
		}
	}
	return out
}

func firstNonBlank(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func positive(p *int) *int {
	if p == nil || *p <= 0 {
		return nil
	}
	v := *p
	return &v
}

func required(errs *domain.FieldErrors, field, v string, limit int) {
	v = strings.TrimSpace(v)
	if v == "" {
		errs.Add(field, "required")
		return
	}
	optional(errs, field, v, limit)
}

func optional(errs *domain.FieldErrors, field, v string, limit int) {
	if utf8.RuneCountInString(strings.TrimSpace(v)) > limit {
		errs.Add(field, fmt.Sprintf("too long (max %d)", limit))
	}
}

func featuredCapMessage(limit int) string {
	return fmt.Sprintf("at most %d tours can be featured", limit)
}
