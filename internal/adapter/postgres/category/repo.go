// Package category implements the Category repository using PostgreSQL.
// Reads return the collection unordered; callers sort.
package category

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

const table = "categories"

var columns = []string{
	"id", "name", "slug", "description", "image_url", "type",
	"is_active", "item_count", "created_at", "updated_at",
}

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a category by primary key.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})

	c, err := scanCategory(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}

	return &c, nil
}

// GetByIDs returns the categories whose ids are listed. Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error) {
	if len(ids) == 0 {
		return []domain.Category{}, nil
	}

	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": ids})

	return r.list(ctx, q)
}

// List returns every category, optionally restricted to one type.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, typ *domain.CategoryType) ([]domain.Category, error) {
	q := postgres.Builder().Select(columns...).From(table)
	if typ != nil {
		q = q.Where(sq.Eq{"type": string(*typ)})
	}

	return r.list(ctx, q)
}

// ExistsBySlug reports whether any category, of any type, holds slug.
func (r *Repo) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	q := postgres.Builder().
		Select("1").From(table).Where(sq.Eq{"slug": slug}).
		Prefix("SELECT EXISTS (").Suffix(")")

	var exists bool
	if err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q).Scan(&exists); err != nil {
		return false, fmt.Errorf("category exists by slug: %w", err)
	}

	return exists, nil
}

// CountByType returns how many categories exist per type.
func (r *Repo) CountByType(ctx context.Context) (map[domain.CategoryType]int, error) {
	q := postgres.Builder().Select("type", "count(*)").From(table).GroupBy("type")

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("count categories by type: %w", err)
	}
	defer rows.Close()

	counts := map[domain.CategoryType]int{}
	for rows.Next() {
		var (
			typ string
			n   int
		)
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, fmt.Errorf("count categories by type: %w", err)
		}
		counts[domain.CategoryType(typ)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count categories by type: %w", err)
	}

	return counts, nil
}

func (r *Repo) list(ctx context.Context, q sq.SelectBuilder) ([]domain.Category, error) {
	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	result := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts c with server timestamps and returns the persisted category.
// Returns domain.ErrAlreadyExists if the slug is taken.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	q := postgres.Builder().
		Insert(table).
		Columns("name", "slug", "description", "image_url", "type", "is_active", "item_count", "created_at", "updated_at").
		Values(c.Name, c.Slug, c.Description, c.ImageURL, string(c.Type), c.IsActive, c.ItemCount, sq.Expr("now()"), sq.Expr("now()")).
		Suffix("RETURNING " + returning())

	created, err := scanCategory(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "category", c.Slug)
	}

	return &created, nil
}

// Update applies a partial patch and stamps updated_at.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, patch domain.CategoryPatch) error {
	q := postgres.Builder().Update(table).Set("updated_at", sq.Expr("now()")).Where(sq.Eq{"id": id})

	if patch.Name != nil {
		q = q.Set("name", *patch.Name)
	}
	if patch.Slug != nil {
		q = q.Set("slug", *patch.Slug)
	}
	if patch.Description != nil {
		q = q.Set("description", *patch.Description)
	}
	if patch.ImageURL != nil {
		q = q.Set("image_url", *patch.ImageURL)
	}
	if patch.Type != nil {
		q = q.Set("type", string(*patch.Type))
	}

	return r.exec(ctx, q, id)
}

// SetActive flips is_active and stamps updated_at.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	q := postgres.Builder().Update(table).
		Set("is_active", active).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	return r.exec(ctx, q, id)
}

// Delete removes a category. Tours referencing it are not touched.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.Builder().Delete(table).Where(sq.Eq{"id": id})
	return r.exec(ctx, q, id)
}

func (r *Repo) exec(ctx context.Context, q postgres.Sqlizer, id uuid.UUID) error {
	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("category", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func returning() string {
	return strings.Join(columns, ", ")
}

func scanCategory(row pgx.Row) (domain.Category, error) {
	var (
		c         domain.Category
		typ       string
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL, &typ,
		&c.IsActive, &c.ItemCount, &createdAt, &updatedAt)
	if err != nil {
		return domain.Category{}, err
	}

	c.Type = domain.CategoryType(typ)
	c.CreatedAt = postgres.TimePtr(createdAt)
	c.UpdatedAt = postgres.TimePtr(updatedAt)

	return c, nil
}
