package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission carries request metadata captured with a public form.
type Submission struct {
	UserAgent string
	Path      string
}

// ContactEnquiry is a message left through the public contact form.
type ContactEnquiry struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Phone        string
	Message      string
	Submission   Submission
	FollowUpDone bool
	CreatedAt    *time.Time
	UpdatedAt    *time.Time
}

// TourEnquiryStatus mirrors the two progress flags of a tour enquiry.
type TourEnquiryStatus string

const (
	TourEnquiryStatusNew       TourEnquiryStatus = "new"
	TourEnquiryStatusFollowed  TourEnquiryStatus = "followed"
	TourEnquiryStatusCompleted TourEnquiryStatus = "completed"
)

func (s TourEnquiryStatus) String() string { return string(s) }

// FollowUpStatus is the status recorded when the follow-up flag is toggled.
func FollowUpStatus(done bool) TourEnquiryStatus {
	if done {
		return TourEnquiryStatusFollowed
	}
	return TourEnquiryStatusNew
}

// CompletedStatus is the status recorded when the trip-completed flag is toggled.
func CompletedStatus(completed bool) TourEnquiryStatus {
	if completed {
		return TourEnquiryStatusCompleted
	}
	return TourEnquiryStatusFollowed
}

// TourEnquiry is a trip request left through the public tour form.
type TourEnquiry struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Phone         string
	Country       string
	ArrivalDate   string
	Days          string
	Adults        string
	Children      string
	Accommodation string
	Info          string
	Submission    Submission
	Status        TourEnquiryStatus
	FollowUpDone  bool
	TripCompleted bool
	CreatedAt     *time.Time
	UpdatedAt     *time.Time
}

// TourEnquiryCounts holds tour enquiry totals by progress.
type TourEnquiryCounts struct {
	New       int
	Followed  int
	Completed int
}
