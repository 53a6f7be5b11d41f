package listing

import (
	"fmt"
	"time"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

// FollowUpFilter selects contact enquiries by follow-up state.
type FollowUpFilter string

const (
	FollowUpAll     FollowUpFilter = "all"
	FollowUpPending FollowUpFilter = "pending"
	FollowUpDone    FollowUpFilter = "done"
)

// ParseFollowUpFilter accepts "", all, pending, done.
func ParseFollowUpFilter(s string) (FollowUpFilter, error) {
	switch f := FollowUpFilter(s); f {
	case "":
		return FollowUpAll, nil
	case FollowUpAll, FollowUpPending, FollowUpDone:
		return f, nil
	}
	return "", fmt.Errorf("unknown follow-up filter %q", s)
}

// EnquiryStatusFilter selects tour enquiries by progress.
type EnquiryStatusFilter string

const (
	EnquiryStatusAll       EnquiryStatusFilter = "all"
	EnquiryStatusPending   EnquiryStatusFilter = "pending"
	EnquiryStatusFollowed  EnquiryStatusFilter = "followed"
	EnquiryStatusCompleted EnquiryStatusFilter = "completed"
)

// ParseEnquiryStatusFilter accepts "", all, pending, followed, completed.
func ParseEnquiryStatusFilter(s string) (EnquiryStatusFilter, error) {
	switch f := EnquiryStatusFilter(s); f {
	case "":
		return EnquiryStatusAll, nil
	case EnquiryStatusAll, EnquiryStatusPending, EnquiryStatusFollowed, EnquiryStatusCompleted:
		return f, nil
	}
	return "", fmt.Errorf("unknown enquiry status filter %q", s)
}

// ActiveFilter selects categories by active flag.
type ActiveFilter string

const (
	ActiveAll      ActiveFilter = "all"
	ActiveOnly     ActiveFilter = "active"
	ActiveInactive ActiveFilter = "inactive"
)

// ParseActiveFilter accepts "", all, active, inactive.
func ParseActiveFilter(s string) (ActiveFilter, error) {
	switch f := ActiveFilter(s); f {
	case "":
		return ActiveAll, nil
	case ActiveAll, ActiveOnly, ActiveInactive:
		return f, nil
	}
	return "", fmt.Errorf("unknown active filter %q", s)
}

// ---------------------------------------------------------------------------
// Contact enquiries
// ---------------------------------------------------------------------------

// ContactFilter narrows the contact enquiry list. Search matches email and phone.
type ContactFilter struct {
	Search   string
	Range    DateRange
	FollowUp FollowUpFilter
}

func (f ContactFilter) keep(e domain.ContactEnquiry) bool {
	if !matchesSearch(f.Search, e.Email, e.Phone) {
		return false
	}
	if !f.Range.Contains(e.CreatedAt) {
		return false
	}
	switch f.FollowUp {
	case FollowUpPending:
		return !e.FollowUpDone
	case FollowUpDone:
		return e.FollowUpDone
	}
	return true
}

// FilterContacts returns the requested page of matching contact enquiries.
func FilterContacts(all []domain.ContactEnquiry, f ContactFilter, page, pageSize int) Page[domain.ContactEnquiry] {
	return Apply(all, f.keep, func(e domain.ContactEnquiry) *time.Time { return e.CreatedAt }, page, pageSize)
}

// ---------------------------------------------------------------------------
// Tour enquiries
// ---------------------------------------------------------------------------

// TourEnquiryFilter narrows the tour enquiry list. Search matches name, email and phone.
type TourEnquiryFilter struct {
	Search string
	Range  DateRange
	Status EnquiryStatusFilter
}

func (f TourEnquiryFilter) keep(e domain.TourEnquiry) bool {
	if !matchesSearch(f.Search, e.Name, e.Email, e.Phone) {
		return false
	}
	if !f.Range.Contains(e.CreatedAt) {
		return false
	}
	switch f.Status {
	case EnquiryStatusPending:
		return !e.FollowUpDone && !e.TripCompleted
	case EnquiryStatusFollowed:
		return e.FollowUpDone && !e.TripCompleted
	case EnquiryStatusCompleted:
		return e.TripCompleted
	}
	return true
}

// FilterTourEnquiries returns the requested page of matching tour enquiries.
func FilterTourEnquiries(all []domain.TourEnquiry, f TourEnquiryFilter, page, pageSize int) Page[domain.TourEnquiry] {
	return Apply(all, f.keep, func(e domain.TourEnquiry) *time.Time { return e.CreatedAt }, page, pageSize)
}

// ---------------------------------------------------------------------------
// Tours
// ---------------------------------------------------------------------------

// TourFilter narrows the tour list. Search matches title and location.
// Empty Status or CategoryID match everything.
type TourFilter struct {
	Search     string
	Range      DateRange
	Status     domain.TourStatus
	CategoryID string
}

func (f TourFilter) keep(t domain.Tour) bool {
	if !matchesSearch(f.Search, t.Title, t.Location) {
		return false
	}
	if !f.Range.Contains(t.CreatedAt) {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.CategoryID != "" && t.CategoryID != f.CategoryID {
		return false
	}
	return true
}

// FilterTours returns the requested page of matching tours.
func FilterTours(all []domain.Tour, f TourFilter, page, pageSize int) Page[domain.Tour] {
	return Apply(all, f.keep, func(t domain.Tour) *time.Time { return t.CreatedAt }, page, pageSize)
}

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

// CategoryFilter narrows the category list. Search matches name.
type CategoryFilter struct {
	Search string
	Range  DateRange
	Active ActiveFilter
}

func (f CategoryFilter) keep(c domain.Category) bool {
	if !matchesSearch(f.Search, c.Name) {
		return false
	}
	if !f.Range.Contains(c.CreatedAt) {
		return false
	}
	switch f.Active {
	case ActiveOnly:
		return c.IsActive
	case ActiveInactive:
		return !c.IsActive
	}
	return true
}

// FilterCategories returns the requested page of matching categories.
func FilterCategories(all []domain.Category, f CategoryFilter, page, pageSize int) Page[domain.Category] {
	return Apply(all, f.keep, func(c domain.Category) *time.Time { return c.CreatedAt }, page, pageSize)
}
