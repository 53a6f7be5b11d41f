package rest

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
	"github.com/heartmarshall/tourdesk-backend/internal/listing"
)

// ListConfig controls how list endpoints interpret their query.
type ListConfig struct {
	PageSize int
	// Location decides where a from/to day starts and ends.
	Location *time.Location
}

// listQuery holds the query parameters shared by every admin list endpoint.
type listQuery struct {
	Search string
	Range  listing.DateRange
	Page   int
}

// parseListQuery reads q, from, to and page. A missing, malformed or
// non-positive page means page 1; pages past the end are clamped later by
// listing.Paginate.
func parseListQuery(r *http.Request, loc *time.Location) (listQuery, error) {
	q := r.URL.Query()

	rng, err := listing.ParseDateRange(q.Get("from"), q.Get("to"), loc)
	if err != nil {
		return listQuery{}, domain.NewValidationError("date", err.Error())
	}

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		page = 1
	}

	return listQuery{
		Search: strings.TrimSpace(q.Get("q")),
		Range:  rng,
		Page:   max(page, 1),
	}, nil
}

type pageResponse[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Total      int `json:"total"`
}

func toPageResponse[S, T any](p listing.Page[S], convert func(S) T) pageResponse[T] {
	items := make([]T, len(p.Items))
	for i, it := range p.Items {
		items[i] = convert(it)
	}
	return pageResponse[T]{Items: items, Page: p.Page, TotalPages: p.TotalPages, Total: p.Total}
}
