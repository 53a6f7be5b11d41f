// Package listing computes the admin list views: filter, newest-first sort,
// and fixed-size pagination over an in-memory collection.
//
// Every function here is pure; the same input always yields the same page.
package listing

import (
	"slices"
	"strings"
	"time"
)

// DefaultPageSize is the number of rows per admin list page.
const DefaultPageSize = 10

// Page is one slice of a filtered, sorted collection.
type Page[T any] struct {
	Items      []T
	Page       int
	TotalPages int
	Total      int
}

// Paginate returns the 1-indexed page of items. page is clamped to
// [1, TotalPages]; TotalPages is at least 1 even when items is empty.
// A non-positive pageSize falls back to DefaultPageSize.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	totalPages := max(1, (total+pageSize-1)/pageSize)
	page = min(max(page, 1), totalPages)

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)

	return Page[T]{
		Items:      slices.Clone(items[start:end]),
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}

// SortNewestFirst returns a copy of items ordered by creation time, newest
// first. Items without a timestamp sort last; ties keep their input order.
func SortNewestFirst[T any](items []T, createdAt func(T) *time.Time) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		ta, tb := createdAt(a), createdAt(b)
		switch {
		case ta == nil && tb == nil:
			return 0
		case ta == nil:
			return 1
		case tb == nil:
			return -1
		}
		return tb.Compare(*ta)
	})
	return out
}

// Apply keeps the items accepted by keep, sorts them newest-first and
// returns the requested page.
func Apply[T any](all []T, keep func(T) bool, createdAt func(T) *time.Time, page, pageSize int) Page[T] {
	filtered := make([]T, 0, len(all))
	for _, it := range all {
		if keep(it) {
			filtered = append(filtered, it)
		}
	}
	return Paginate(SortNewestFirst(filtered, createdAt), page, pageSize)
}

// matchesSearch reports whether q occurs, case-insensitively, in any field.
// A blank q matches everything.
func matchesSearch(q string, fields ...string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
