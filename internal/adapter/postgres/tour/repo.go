// Package tour implements the Tour repository using PostgreSQL.
// Ordered lists (gallery, highlights, itinerary) are stored as jsonb arrays.
package tour

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/tourdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

const table = "tours"

var columns = []string{
	"id", "title", "slug", "description", "price", "category_id", "category_name",
	"location", "duration", "max_group_size", "difficulty", "season", "min_age",
	"map_embed_html", "feature_image_url", "image_urls", "gallery_image_urls",
	"highlights", "included", "excluded", "itinerary",
	"meta_title", "meta_description", "meta_keywords", "og_image",
	"status", "featured", "created_at", "updated_at",
}

// Repo provides tour persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tour repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a tour by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetBySlug returns a tour by its slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Tour, error) {
	return r.getOne(ctx, sq.Eq{"slug": slug}, slug)
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, key any) (*domain.Tour, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(where)

	t, err := scanTour(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "tour", key)
	}

	return &t, nil
}

// List returns every tour matching f. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, f domain.TourFilter) ([]domain.Tour, error) {
	q := postgres.Builder().Select(columns...).From(table)
	if f.Status != nil {
		q = q.Where(sq.Eq{"status": string(*f.Status)})
	}
	if f.CategoryID != nil {
		q = q.Where(sq.Eq{"category_id": *f.CategoryID})
	}
	if f.Featured != nil {
		q = q.Where(sq.Eq{"featured": *f.Featured})
	}

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}
	defer rows.Close()

	result := []domain.Tour{}
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, fmt.Errorf("list tours: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tours: %w", err)
	}

	return result, nil
}

// ExistsBySlug reports whether any tour holds slug.
func (r *Repo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	q := postgres.Builder().
		Select("1").From(table).Where(sq.Eq{"slug": slug}).
		Prefix("SELECT EXISTS (").Suffix(")")

	var exists bool
	if err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q).Scan(&exists); err != nil {
		return false, fmt.Errorf("tour exists by slug: %w", err)
	}

	return exists, nil
}

// CountFeatured counts featured tours other than exclude (pass uuid.Nil to count all).
func (r *Repo) CountFeatured(ctx context.Context, exclude uuid.UUID) (int, error) {
	q := postgres.Builder().Select("count(*)").From(table).Where(sq.Eq{"featured": true})
	if exclude != uuid.Nil {
		q = q.Where(sq.NotEq{"id": exclude})
	}

	var n int
	if err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q).Scan(&n); err != nil {
		return 0, fmt.Errorf("count featured tours: %w", err)
	}

	return n, nil
}

// Count returns tour totals by status and featured flag.
func (r *Repo) Count(ctx context.Context) (domain.TourCounts, error) {
	q := postgres.Builder().Select(
		"count(*)",
		"count(*) FILTER (WHERE status = 'published')",
		"count(*) FILTER (WHERE status = 'draft')",
		"count(*) FILTER (WHERE featured)",
	).From(table)

	var c domain.TourCounts
	err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q).
		Scan(&c.Total, &c.Published, &c.Draft, &c.Featured)
	if err != nil {
		return domain.TourCounts{}, fmt.Errorf("count tours: %w", err)
	}

	return c, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts t with server timestamps and returns the persisted tour.
// Returns domain.ErrAlreadyExists if the slug is taken.
func (r *Repo) Create(ctx context.Context, t *domain.Tour) (*domain.Tour, error) {
	values, err := documentValues(t)
	if err != nil {
		return nil, fmt.Errorf("create tour: %w", err)
	}

	cols := append([]string{"slug"}, documentColumns...)
	cols = append(cols, "featured", "created_at", "updated_at")
	vals := append([]any{t.Slug}, values...)
	vals = append(vals, t.Featured, sq.Expr("now()"), sq.Expr("now()"))

	q := postgres.Builder().Insert(table).Columns(cols...).Values(vals...).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := scanTour(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "tour", t.Slug)
	}

	return &created, nil
}

// Update overwrites every editable field of the tour. Slug, featured and
// created_at are kept; featured only changes through SetFeatured.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, t *domain.Tour) error {
	values, err := documentValues(t)
	if err != nil {
		return fmt.Errorf("update tour: %w", err)
	}

	q := postgres.Builder().Update(table).Where(sq.Eq{"id": id}).Set("updated_at", sq.Expr("now()"))
	for i, col := range documentColumns {
		q = q.Set(col, values[i])
	}

	return r.exec(ctx, q, id)
}

// SetStatus changes only the status and stamps updated_at.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.TourStatus) error {
	q := postgres.Builder().Update(table).
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	return r.exec(ctx, q, id)
}

// SetFeatured changes only the featured flag and stamps updated_at.
func (r *Repo) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	q := postgres.Builder().Update(table).
		Set("featured", featured).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	return r.exec(ctx, q, id)
}

// Delete removes a tour.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.exec(ctx, postgres.Builder().Delete(table).Where(sq.Eq{"id": id}), id)
}

func (r *Repo) exec(ctx context.Context, q postgres.Sqlizer, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return postgres.MapError(err, "tour", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("tour", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

// documentColumns are the form-owned columns written by both Create and Update.
var documentColumns = []string{
	"title", "description", "price", "category_id", "category_name",
	"location", "duration", "max_group_size", "difficulty", "season", "min_age",
	"map_embed_html", "feature_image_url", "image_urls", "gallery_image_urls",
	"highlights", "included", "excluded", "itinerary",
	"meta_title", "meta_description", "meta_keywords", "og_image",
	"status",
}

func documentValues(t *domain.Tour) ([]any, error) {
	imageURLs, err := postgres.JSONList(t.ImageURLs)
	if err != nil {
		return nil, err
	}
	gallery, err := postgres.JSONList(t.GalleryImageURLs)
	if err != nil {
		return nil, err
	}
	highlights, err := postgres.JSONList(t.Highlights)
	if err != nil {
		return nil, err
	}
	included, err := postgres.JSONList(t.Included)
	if err != nil {
		return nil, err
	}
	excluded, err := postgres.JSONList(t.Excluded)
	if err != nil {
		return nil, err
	}
	itinerary, err := postgres.JSONList(t.Itinerary)
	if err != nil {
		return nil, err
	}

	return []any{
		t.Title, t.Description, t.Price, t.CategoryID, t.CategoryName,
		t.Location, t.Duration, postgres.PgInt(t.MaxGroupSize), string(t.Difficulty), t.Season, postgres.PgInt(t.MinAge),
		t.MapEmbedHTML, t.FeatureImageURL, imageURLs, gallery,
		highlights, included, excluded, itinerary,
		t.MetaTitle, t.MetaDescription, t.MetaKeywords, t.OGImage,
		string(t.Status),
	}, nil
}

func scanTour(row pgx.Row) (domain.Tour, error) {
	var (
		t                              domain.Tour
		maxGroupSize, minAge           pgtype.Int4
		difficulty, status             string
		imageURLs, gallery, highlights []byte
		included, excluded, itinerary  []byte
		createdAt, updatedAt           pgtype.Timestamptz
	)

	err := row.Scan(
		&t.ID, &t.Title, &t.Slug, &t.Description, &t.Price, &t.CategoryID, &t.CategoryName,
		&t.Location, &t.Duration, &maxGroupSize, &difficulty, &t.Season, &minAge,
		&t.MapEmbedHTML, &t.FeatureImageURL, &imageURLs, &gallery,
		&highlights, &included, &excluded, &itinerary,
		&t.MetaTitle, &t.MetaDescription, &t.MetaKeywords, &t.OGImage,
		&status, &t.Featured, &createdAt, &updatedAt,
	)
	if err != nil {
		return domain.Tour{}, err
	}

	t.MaxGroupSize = postgres.IntPtr(maxGroupSize)
	t.MinAge = postgres.IntPtr(minAge)
	t.Difficulty = domain.Difficulty(difficulty)
	t.Status = domain.TourStatus(status)
	t.CreatedAt = postgres.TimePtr(createdAt)
	t.UpdatedAt = postgres.TimePtr(updatedAt)

	if t.ImageURLs, err = postgres.ParseJSONList[string](imageURLs); err != nil {
		return domain.Tour{}, fmt.Errorf("image_urls: %w", err)
	}
	if t.GalleryImageURLs, err = postgres.ParseJSONList[string](gallery); err != nil {
		return domain.Tour{}, fmt.Errorf("gallery_image_urls: %w", err)
	}
	if t.Highlights, err = postgres.ParseJSONList[string](highlights); err != nil {
		return domain.Tour{}, fmt.Errorf("highlights: %w", err)
	}
	if t.Included, err = postgres.ParseJSONList[string](included); err != nil {
		return domain.Tour{}, fmt.Errorf("included: %w", err)
	}
	if t.Excluded, err = postgres.ParseJSONList[string](excluded); err != nil {
		return domain.Tour{}, fmt.Errorf("excluded: %w", err)
	}
	if t.Itinerary, err = postgres.ParseJSONList[domain.ItineraryDay](itinerary); err != nil {
		return domain.Tour{}, fmt.Errorf("itinerary: %w", err)
	}

	return t, nil
}
