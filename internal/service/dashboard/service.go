package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

type tourCounter interface {
	Count(ctx context.Context) (domain.TourCounts, error)
}

type categoryCounter interface {
	CountByType(ctx context.Context) (map[domain.CategoryType]int, error)
}

type contactCounter interface {
	CountPending(ctx context.Context) (int, error)
}

type tourFormCounter interface {
	Count(ctx context.Context) (domain.TourEnquiryCounts, error)
}

// Summary holds the counters shown on the admin dashboard.
type Summary struct {
	Tours           domain.TourCounts
	TourCategories  int
	BlogCategories  int
	PendingContacts int
	TourEnquiries   domain.TourEnquiryCounts
}

// Service aggregates dashboard counters.
type Service struct {
	log        *slog.Logger
	tours      tourCounter
	categories categoryCounter
	contacts   contactCounter
	tourForms  tourFormCounter
}

func NewService(
	logger *slog.Logger,
	tours tourCounter,
	categories categoryCounter,
	contacts contactCounter,
	tourForms tourFormCounter,
) *Service {
	return &Service{
		log:        logger.With("service", "dashboard"),
		tours:      tours,
		categories: categories,
		contacts:   contacts,
		tourForms:  tourForms,
	}
}

// Summary loads all dashboard counters concurrently.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	var (
		out        Summary
		byCategory map[domain.CategoryType]int
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		out.Tours, err = s.tours.Count(gctx)
		if err != nil {
			return fmt.Errorf("count tours: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		byCategory, err = s.categories.CountByType(gctx)
		if err != nil {
			return fmt.Errorf("count categories: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		out.PendingContacts, err = s.contacts.CountPending(gctx)
		if err != nil {
			return fmt.Errorf("count contacts: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		out.TourEnquiries, err = s.tourForms.Count(gctx)
		if err != nil {
			return fmt.Errorf("count tour enquiries: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("dashboard.Summary: %w", err)
	}

	out.TourCategories = byCategory[domain.CategoryTypeTour]
	out.BlogCategories = byCategory[domain.CategoryTypeBlog]

	s.log.DebugContext(ctx, "dashboard summary loaded",
		slog.Int("tours", out.Tours.Total),
		slog.Int("pending_contacts", out.PendingContacts))

	return &out, nil
}
