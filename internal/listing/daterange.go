package listing

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format accepted for range bounds.
const DateLayout = "2006-01-02"

// DateRange is an inclusive, day-granular range over creation timestamps.
// A zero bound is open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// ParseDateRange builds a range from YYYY-MM-DD strings interpreted in loc.
// from maps to the start of its day, to maps to the last instant of its day.
// Blank strings leave the bound open.
func ParseDateRange(from, to string, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}

	var r DateRange
	if from = strings.TrimSpace(from); from != "" {
		d, err := time.ParseInLocation(DateLayout, from, loc)
		if err != nil {
			return DateRange{}, fmt.Errorf("from: %w", err)
		}
		r.From = d
	}
	if to = strings.TrimSpace(to); to != "" {
		d, err := time.ParseInLocation(DateLayout, to, loc)
		if err != nil {
			return DateRange{}, fmt.Errorf("to: %w", err)
		}
		r.To = d.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return r, nil
}

// IsOpen reports whether neither bound is set.
func (r DateRange) IsOpen() bool {
	return r.From.IsZero() && r.To.IsZero()
}

// Contains reports whether t falls inside the range. A missing timestamp
// only matches an open range.
func (r DateRange) Contains(t *time.Time) bool {
	if r.IsOpen() {
		return true
	}
	if t == nil {
		return false
	}
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}
