package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxSlugLength is the longest slug Slugify produces.
const MaxSlugLength = 80

// Slugify derives a URL-safe slug from raw:
//   - lower-cases the input
//   - replaces every run of characters outside [a-z0-9] with one hyphen
//   - strips leading/trailing hyphens
//   - truncates to MaxSlugLength
//
// An empty result yields fallback.
func Slugify(raw, fallback string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))

	var b strings.Builder
	b.Grow(len(raw))
	pendingDash := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}

	s := b.String()
	if len(s) > MaxSlugLength {
		s = strings.TrimRight(s[:MaxSlugLength], "-")
	}
	if s == "" {
		return fallback
	}
	return s
}

var (
	markupTag  = regexp.MustCompile(`<[^>]*>`)
	whitespace = regexp.MustCompile(`\s+`)
	emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// SanitizeText replaces markup-like tags with a space, collapses whitespace
// runs into one space and trims the result.
func SanitizeText(s string) string {
	s = markupTag.ReplaceAllString(s, " ")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// LimitLength truncates s to at most max runes.
func LimitLength(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// CleanField sanitizes and length-caps a free-text form field.
func CleanField(s string, max int) string {
	return LimitLength(SanitizeText(s), max)
}

// LooksLikeEmail is a loose local@domain.tld shape check.
func LooksLikeEmail(s string) bool {
	return emailShape.MatchString(s)
}

// TrimNonEmpty trims every item and drops the blank ones, keeping order.
func TrimNonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
