// Package admin implements admin account persistence using PostgreSQL.
package admin

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

const table = "admins"

var columns = []string{"id", "email", "password_hash", "created_at", "updated_at", "last_login_at"}

// upsertSQL keys on the lower(email) unique index.
const upsertSQL = `
INSERT INTO admins (email, password_hash)
VALUES (lower($1), $2)
ON CONFLICT (lower(email)) DO UPDATE
SET password_hash = EXCLUDED.password_hash, updated_at = now()
RETURNING id, email, password_hash, created_at, updated_at, last_login_at`

// Repo provides admin account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new admin repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByEmail returns the account for email (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Expr("lower(email) = ?", email))

	a, err := scanAdmin(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "admin", email)
	}

	return &a, nil
}

// GetByID returns the account by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})

	a, err := scanAdmin(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "admin", id)
	}

	return &a, nil
}

// Upsert creates the account or replaces its password hash.
func (r *Repo) Upsert(ctx context.Context, email, passwordHash string) (*domain.Admin, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, upsertSQL, strings.TrimSpace(email), passwordHash)

	a, err := scanAdmin(row)
	if err != nil {
		return nil, postgres.MapError(err, "admin", email)
	}

	return &a, nil
}

// TouchLastLogin records a successful sign-in.
func (r *Repo) TouchLastLogin(ctx context.Context, id uuid.UUID) error {
	q := postgres.Builder().Update(table).Set("last_login_at", sq.Expr("now()")).Where(sq.Eq{"id": id})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return fmt.Errorf("touch admin last login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("admin", id)
	}

	return nil
}

func scanAdmin(row pgx.Row) (domain.Admin, error) {
	var (
		a         domain.Admin
		lastLogin pgtype.Timestamptz
	)

	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt, &a.UpdatedAt, &lastLogin); err != nil {
		return domain.Admin{}, err
	}
	a.LastLoginAt = postgres.TimePtr(lastLogin)

	return a, nil
}
