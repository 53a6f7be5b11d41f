// Package tourform implements the tour-enquiry repository using PostgreSQL.
// Enquiries are never deleted.
package tourform

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

const table = "tour_forms"

var columns = []string{
	"id", "name", "email", "phone", "country", "arrival_date", "days", "adults", "children",
	"accommodation", "info", "user_agent", "path", "status", "follow_up_done", "trip_completed",
	"created_at", "updated_at",
}

// Repo provides tour enquiry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new tour enquiry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a submitted enquiry with a server creation timestamp.
func (r *Repo) Create(ctx context.Context, e *domain.TourEnquiry) (*domain.TourEnquiry, error) {
	q := postgres.Builder().Insert(table).
		Columns("name", "email", "phone", "country", "arrival_date", "days", "adults", "children",
			"accommodation", "info", "user_agent", "path", "status", "follow_up_done", "trip_completed", "created_at").
		Values(e.Name, e.Email, e.Phone, e.Country, e.ArrivalDate, e.Days, e.Adults, e.Children,
			e.Accommodation, e.Info, e.Submission.UserAgent, e.Submission.Path, string(e.Status),
			e.FollowUpDone, e.TripCompleted, sq.Expr("now()")).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	created, err := scanTourForm(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "tour enquiry", e.Email)
	}

	return &created, nil
}

// GetByID returns one enquiry.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TourEnquiry, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})

	e, err := scanTourForm(postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q))
	if err != nil {
		return nil, postgres.MapError(err, "tour enquiry", id)
	}

	return &e, nil
}

// List returns every enquiry, optionally restricted to one stored status.
func (r *Repo) List(ctx context.Context, status *domain.TourEnquiryStatus) ([]domain.TourEnquiry, error) {
	q := postgres.Builder().Select(columns...).From(table)
	if status != nil {
		q = q.Where(sq.Eq{"status": string(*status)})
	}

	rows, err := postgres.Query(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return nil, fmt.Errorf("list tour enquiries: %w", err)
	}
	defer rows.Close()

	result := []domain.TourEnquiry{}
	for rows.Next() {
		e, err := scanTourForm(rows)
		if err != nil {
			return nil, fmt.Errorf("list tour enquiries: %w", err)
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tour enquiries: %w", err)
	}

	return result, nil
}

// Count returns enquiry totals using the same buckets as the admin filter.
func (r *Repo) Count(ctx context.Context) (domain.TourEnquiryCounts, error) {
	q := postgres.Builder().Select(
		"count(*) FILTER (WHERE NOT follow_up_done AND NOT trip_completed)",
		"count(*) FILTER (WHERE follow_up_done AND NOT trip_completed)",
		"count(*) FILTER (WHERE trip_completed)",
	).From(table)

	var c domain.TourEnquiryCounts
	if err := postgres.QueryRow(ctx, postgres.QuerierFromCtx(ctx, r.pool), q).Scan(&c.New, &c.Followed, &c.Completed); err != nil {
		return domain.TourEnquiryCounts{}, fmt.Errorf("count tour enquiries: %w", err)
	}

	return c, nil
}

// SetFollowUp changes the follow-up flag together with the derived status.
func (r *Repo) SetFollowUp(ctx context.Context, id uuid.UUID, done bool, status domain.TourEnquiryStatus) error {
	return r.patch(ctx, id, "follow_up_done", done, status)
}

// SetCompleted changes the trip-completed flag together with the derived status.
func (r *Repo) SetCompleted(ctx context.Context, id uuid.UUID, completed bool, status domain.TourEnquiryStatus) error {
	return r.patch(ctx, id, "trip_completed", completed, status)
}

func (r *Repo) patch(ctx context.Context, id uuid.UUID, flag string, value bool, status domain.TourEnquiryStatus) error {
	q := postgres.Builder().Update(table).
		Set(flag, value).
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})

	tag, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return postgres.MapError(err, "tour enquiry", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.NotFound("tour enquiry", id)
	}

	return nil
}

func scanTourForm(row pgx.Row) (domain.TourEnquiry, error) {
	var (
		e                    domain.TourEnquiry
		status               string
		createdAt, updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Country, &e.ArrivalDate, &e.Days,
		&e.Adults, &e.Children, &e.Accommodation, &e.Info, &e.Submission.UserAgent, &e.Submission.Path,
		&status, &e.FollowUpDone, &e.TripCompleted, &createdAt, &updatedAt)
	if err != nil {
		return domain.TourEnquiry{}, err
	}

	e.Status = domain.TourEnquiryStatus(status)
	e.CreatedAt = postgres.TimePtr(createdAt)
	e.UpdatedAt = postgres.TimePtr(updatedAt)

	return e, nil
}
