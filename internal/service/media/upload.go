package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

// Upload is one image to store.
type Upload struct {
	Kind        Kind
	Filename    string
	ContentType string
	Body        io.Reader
}

// Validate checks all fields and collects all errors.
func (u Upload) Validate() error {
	var errs domain.FieldErrors

	if !u.Kind.IsValid() {
		errs.Add("kind", "invalid value")
	}
	if u.Body == nil {
		errs.Add("file", "required")
	}
	if !strings.HasPrefix(strings.ToLower(u.ContentType), "image/") {
		errs.Add("file", "must be an image")
	}

	return errs.Err()
}

// Upload stores the image and returns its public address.
// The key is {kind}/{unixMillis}-{sanitized filename}.
func (m *Manager) Upload(ctx context.Context, in Upload) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%d-%s", in.Kind, m.now().UnixMilli(), sanitizeFilename(in.Filename))

	addr, err := m.store.Save(ctx, key, in.Body, in.ContentType)
	if err != nil {
		return "", fmt.Errorf("save %s: %w", key, err)
	}

	m.log.InfoContext(ctx, "image uploaded",
		slog.String("kind", string(in.Kind)),
		slog.String("address", addr),
	)

	return addr, nil
}

var (
	filenameSpaceRe   = regexp.MustCompile(`\s+`)
	filenameInvalidRe = regexp.MustCompile(`[^A-Za-z0-9._-]`)
)

// sanitizeFilename turns whitespace runs into "-" and drops anything outside
// [A-Za-z0-9._-]. An empty result becomes "image".
func sanitizeFilename(name string) string {
	name = filenameSpaceRe.ReplaceAllString(strings.TrimSpace(name), "-")
	name = filenameInvalidRe.ReplaceAllString(name, "")
	if name == "" {
		return "image"
	}
	return name
}
