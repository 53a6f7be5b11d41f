package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedCategory inserts an active tour category with a unique slug.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	suffix := UniqueSuffix()
	ts := now()
	c := domain.Category{
		ID:          uuid.New(),
		Name:        "Category " + suffix,
		Slug:        "category-" + suffix,
		Description: "seeded",
		Type:        domain.CategoryTypeTour,
		IsActive:    true,
		CreatedAt:   &ts,
		UpdatedAt:   &ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, name, slug, description, image_url, type, is_active, item_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.Name, c.Slug, c.Description, c.ImageURL, string(c.Type), c.IsActive, c.ItemCount, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return c
}

// SeedTour inserts a draft tour with a unique slug. featured controls the flag.
func SeedTour(t *testing.T, pool *pgxpool.Pool, featured bool) domain.Tour {
	t.Helper()

	suffix := UniqueSuffix()
	ts := now()
	tour := domain.Tour{
		ID:          uuid.New(),
		Title:       "Tour " + suffix,
		Slug:        "tour-" + suffix,
		Description: "seeded tour",
		Location:    "Jaipur",
		Difficulty:  domain.DifficultyEasy,
		Status:      domain.TourStatusDraft,
		Featured:    featured,
		Highlights:  []string{"Amber Fort"},
		Itinerary:   []domain.ItineraryDay{{DayNumber: 1, Title: "Arrive"}},
		CreatedAt:   &ts,
		UpdatedAt:   &ts,
	}

	highlights, _ := json.Marshal(tour.Highlights)
	itinerary, _ := json.Marshal(tour.Itinerary)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tours (id, title, slug, description, location, difficulty, status, featured, highlights, itinerary, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		tour.ID, tour.Title, tour.Slug, tour.Description, tour.Location, string(tour.Difficulty), string(tour.Status),
		tour.Featured, highlights, itinerary, tour.CreatedAt, tour.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTour: %v", err)
	}

	return tour
}

// SeedContact inserts a pending contact enquiry.
func SeedContact(t *testing.T, pool *pgxpool.Pool) domain.ContactEnquiry {
	t.Helper()

	suffix := UniqueSuffix()
	ts := now()
	c := domain.ContactEnquiry{
		ID:        uuid.New(),
		Name:      "Visitor " + suffix,
		Email:     "visitor-" + suffix + "@example.com",
		Phone:     "+91 98" + suffix[:4],
		Message:   "Please call me back",
		CreatedAt: &ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO contact_messages (id, name, email, phone, message, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Name, c.Email, c.Phone, c.Message, c.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContact: %v", err)
	}

	return c
}

// SeedTourEnquiry inserts a new tour enquiry.
func SeedTourEnquiry(t *testing.T, pool *pgxpool.Pool) domain.TourEnquiry {
	t.Helper()

	suffix := UniqueSuffix()
	ts := now()
	e := domain.TourEnquiry{
		ID:        uuid.New(),
		Name:      "Traveller " + suffix,
		Email:     "traveller-" + suffix + "@example.com",
		Phone:     "+44 20" + suffix[:4],
		Country:   "UK",
		Status:    domain.TourEnquiryStatusNew,
		CreatedAt: &ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO tour_forms (id, name, email, phone, country, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Name, e.Email, e.Phone, e.Country, string(e.Status), e.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTourEnquiry: %v", err)
	}

	return e
}

// SeedAdmin inserts an admin account with the given bcrypt hash.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool, passwordHash string) domain.Admin {
	t.Helper()

	ts := now()
	a := domain.Admin{
		ID:           uuid.New(),
		Email:        "admin-" + UniqueSuffix() + "@example.com",
		PasswordHash: passwordHash,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO admins (id, email, password_hash, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Email, a.PasswordHash, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAdmin: %v", err)
	}

	return a
}
