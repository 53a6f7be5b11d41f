// Package contact implements the contact-enquiry repository using PostgreSQL.
// Enquiries are never deleted.
package contact

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

const table = "contact_messages"

var columns = []string{
	"id", "name", "email", "phone", "message", "user_agent", "path",
	"follow_up_done", "created_at", "updated_at",
}

// Repo provides contact enquiry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contact enquiry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a submitted enquiry with a server creation timestamp.
func (r *Repo) Create(ctx context.Context, e *domain.ContactEnquiry) (*domain.ContactEnquiry, error) {
	q := postgres.Builder().Insert(table).
		Columns("name", "email", "phone", "message", "user_agent", "path", "follow_up_done", "created_at").
		Values(e.Name, e.Email, e.Phone, e.Message, e.Submission.UserAgent, e.Submission.Path, e.FollowUpDone, sq.Expr("now()")).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := scanContact(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "contact enquiry", e.Email)
	}

	return &created, nil
}

// GetByID returns one enquiry.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContactEnquiry, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})

	e, err := scanContact(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "contact enquiry", id)
	}

	return &e, nil
}

// List returns every enquiry, optionally restricted by follow-up state.
func (r *Repo) List(ctx context.Context, followUpDone *bool) ([]domain.ContactEnquiry, error) {
	q := postgres.Builder().Select(columns...).From(table)
	if followUpDone != nil {
		q = q.Where(sq.Eq{"follow_up_done": *followUpDone})
	}

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("list contact enquiries: %w", err)
	}
	defer rows.Close()

	result := []domain.ContactEnquiry{}
	for rows.Next() {
		e, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("list contact enquiries: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contact enquiries: %w", err)
	}

	return result, nil
}

// CountPending counts enquiries not yet followed up.
func (r *Repo) CountPending(ctx context.Context) (int, error) {
	q := postgres.Builder().Select("count(*)").From(table).Where(sq.Eq{"follow_up_done": false})

	var n int
	if err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q).Scan(&n); err != nil {
		return 0, fmt.Errorf("count pending contact enquiries: %w", err)
	}

	return n, nil
}

// SetFollowUp changes only the follow-up flag and stamps updated_at.
func (r *Repo) SetFollowUp(ctx context.Context, id uuid.UUID, done bool) error {
	q := postgres.Builder().Update(table).
		Set("follow_up_done", done).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return postgres.MapError(err, "contact enquiry", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("contact enquiry", id)
	}

	return nil
}

func scanContact(row pgx.Row) (domain.ContactEnquiry, error) {
	var (
		e                    domain.ContactEnquiry
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Message,
		&e.Submission.UserAgent, &e.Submission.Path, &e.FollowUpDone, &createdAt, &updatedAt)
	if err != nil {
		return domain.ContactEnquiry{}, err
	}

	e.CreatedAt = postgres.TimePtr(createdAt)
	e.UpdatedAt = postgres.TimePtr(updatedAt)

	return e, nil
}
