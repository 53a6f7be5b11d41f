// Package slug assigns unique, URL-safe slugs within one collection.
package slug

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

// MaxProbes is how many candidates are checked before the timestamp suffix is used.
const MaxProbes = 20

type slugProber interface {
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
}

// Generator derives slugs from free text and probes the collection for clashes.
// The slug is only computed here; persisting it is the caller's job.
type Generator struct {
	probe    slugProber
	fallback string
	now      func() time.Time
}

// NewGenerator creates a generator for the collection behind probe.
// fallback is used when the source text normalizes to nothing.
func NewGenerator(probe slugProber, fallback string) *Generator {
	return &Generator{probe: probe, fallback: fallback, now: time.Now}
}

// Unique returns base, base-2, base-3, ... whichever is free first.
// After MaxProbes taken candidates it returns base-<unix millis> without probing;
// that candidate is not guaranteed to be free.
// Probe failures are returned unchanged.
func (g *Generator) Unique(ctx context.Context, source string) (string, error) {
	base := g.Base(source)
	candidate := base

	for i := 0; i < MaxProbes; i++ {
		taken, err := g.probe.ExistsBySlug(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i+2)
	}

	return fmt.Sprintf("%s-%d", base, g.now().UnixMilli()), nil
}

// Base returns the normalized slug for source without probing.
func (g *Generator) Base(source string) string {
	return domain.Slugify(source, g.fallback)
}
