package domain

import (
	"time"

	"github.com/google/uuid"
)

// TourSlugFallback is used when a tour title normalizes to nothing.
const TourSlugFallback = "tour"

// Difficulty is the physical difficulty grade of a tour.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyModerate Difficulty = "Moderate"
	DifficultyHard     Difficulty = "Hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyModerate, DifficultyHard:
		return true
	}
	return false
}

// TourStatus controls public visibility of a tour.
type TourStatus string

const (
	TourStatusDraft     TourStatus = "draft"
	TourStatusPublished TourStatus = "published"
)

func (s TourStatus) String() string { return string(s) }

func (s TourStatus) IsValid() bool {
	switch s {
	case TourStatusDraft, TourStatusPublished:
		return true
	}
	return false
}

// ItineraryDay is one day of a tour programme. DayNumber starts at 1.
type ItineraryDay struct {
	DayNumber   int    `json:"dayNumber"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Tour is a sellable tour listing.
type Tour struct {
	ID               uuid.UUID
	Title            string
	Slug             string
	Description      string
	Price            int
	CategoryID       string
	CategoryName     string
	Location         string
	Duration         string
	MaxGroupSize     *int
	Difficulty       Difficulty
	Season           string
	MinAge           *int
	MapEmbedHTML     string
	FeatureImageURL  string
	ImageURLs        []string
	GalleryImageURLs []string
	Highlights       []string
	Included         []string
	Excluded         []string
	Itinerary        []ItineraryDay
	MetaTitle        string
	MetaDescription  string
	MetaKeywords     string
	OGImage          string
	Status           TourStatus
	Featured         bool
	CreatedAt        *time.Time
	UpdatedAt        *time.Time
}

// TourCounts holds tour totals by status and featured flag.
type TourCounts struct {
	Total     int
	Published int
	Draft     int
	Featured  int
}
