package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// TimePtr converts a nullable timestamptz to *time.Time (NULL -> nil).
func TimePtr(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}

// IntPtr converts a nullable int4 to *int (NULL -> nil).
func IntPtr(v pgtype.Int4) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int32)
	return &n
}

// PgInt converts *int to a nullable int4 (nil -> NULL).
func PgInt(p *int) pgtype.Int4 {
	if p == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*p), Valid: true}
}

// JSONList encodes a slice for a NOT NULL jsonb column; nil encodes as [].
func JSONList[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode json list: %w", err)
	}
	return b, nil
}

// ParseJSONList decodes a jsonb column into a slice; empty input yields an empty slice.
func ParseJSONList[T any](raw []byte) ([]T, error) {
	out := []T{}
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode json list: %w", err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
