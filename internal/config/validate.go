package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	c.Auth.AdminEmails = ParseEmailList(c.Auth.AdminEmailsRaw)
	if len(c.Auth.AdminEmails) == 0 {
		return fmt.Errorf("auth.admin_emails must list at least one administrator")
	}

	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.Listing.validate(); err != nil {
		return fmt.Errorf("listing: %w", err)
	}

	if c.Tours.MaxFeatured < 0 {
		return fmt.Errorf("tours.max_featured must be >= 0 (got %d)", c.Tours.MaxFeatured)
	}

	if c.Forms.SubmissionsPerMinute <= 0 {
		return fmt.Errorf("forms.submissions_per_minute must be > 0 (got %d)", c.Forms.SubmissionsPerMinute)
	}

	return nil
}

func (s *StorageConfig) validate() error {
	if s.Driver != "local" {
		return fmt.Errorf("unsupported driver %q", s.Driver)
	}
	if strings.TrimSpace(s.BaseDir) == "" {
		return fmt.Errorf("base_dir is required")
	}
	if s.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0 (got %d)", s.MaxUploadBytes)
	}
	return nil
}

func (l *ListingConfig) validate() error {
	if l.PageSize <= 0 {
		return fmt.Errorf("page_size must be > 0 (got %d)", l.PageSize)
	}
	loc, err := time.LoadLocation(l.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", l.Timezone, err)
	}
	l.Location = loc
	return nil
}

// ParseEmailList parses a comma-separated list of emails into a lower-cased,
// de-duplicated slice. Blank items are skipped. An empty string returns nil.
func ParseEmailList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	emails := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		emails = append(emails, p)
	}

	return emails
}
