package enquiry

import (
	"github.com/heartmarshall/tourdesk-backend/internal/domain"
)

// Field caps, in characters, applied after sanitization.
const (
	maxName          = 100
	maxEmail         = 200
	maxPhone         = 50
	maxMessage       = 2000
	maxCountry       = 80
	maxArrivalDate   = 50
	maxDays          = 20
	maxPartySize     = 10
	maxAccommodation = 50
	maxInfo          = 2000
	maxUserAgent     = 300
	maxPath          = 200
)

// ---------------------------------------------------------------------------
// ContactInput
// ---------------------------------------------------------------------------

// ContactInput is a raw contact form submission.
type ContactInput struct {
	Name      string
	Email     string
	Phone     string
	Message   string
	UserAgent string
	Path      string
}

// Clean strips markup, collapses whitespace and caps every field.
func (i ContactInput) Clean() ContactInput {
	return ContactInput{
		Name:      domain.CleanField(i.Name, maxName),
		Email:     domain.CleanField(i.Email, maxEmail),
		Phone:     domain.CleanField(i.Phone, maxPhone),
		Message:   domain.CleanField(i.Message, maxMessage),
		UserAgent: domain.LimitLength(i.UserAgent, maxUserAgent),
		Path:      domain.LimitLength(i.Path, maxPath),
	}
}

// Validate checks a cleaned input: name, email and message are required.
func (i ContactInput) Validate() error {
	var errs domain.FieldErrors

	requireField(&errs, "name", i.Name)
	requireField(&errs, "email", i.Email)
	requireField(&errs, "message", i.Message)
	checkEmail(&errs, i.Email)

	return errs.Err()
}

// ---------------------------------------------------------------------------
// TourFormInput
// ---------------------------------------------------------------------------

// TourFormInput is a raw tour enquiry submission.
type TourFormInput struct {
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
	UserAgent     string
	Path          string
}

// Clean strips markup, collapses whitespace and caps every field.
func (i TourFormInput) Clean() TourFormInput {
	return TourFormInput{
		Name:          domain.CleanField(i.Name, maxName),
		Email:         domain.CleanField(i.Email, maxEmail),
		Phone:         domain.CleanField(i.Phone, maxPhone),
		Country:       domain.CleanField(i.Country, maxCountry),
		ArrivalDate:   domain.CleanField(i.ArrivalDate, maxArrivalDate),
		Days:          domain.CleanField(i.Days, maxDays),
		Adults:        domain.CleanField(i.Adults, maxPartySize),
		Children:      domain.CleanField(i.Children, maxPartySize),
		Accommodation: domain.CleanField(i.Accommodation, maxAccommodation),
		Info:          domain.CleanField(i.Info, maxInfo),
		UserAgent:     domain.LimitLength(i.UserAgent, maxUserAgent),
		Path:          domain.LimitLength(i.Path, maxPath),
	}
}

// Validate checks a cleaned input: name, email and phone are required.
func (i TourFormInput) Validate() error {
	var errs domain.FieldErrors

	requireField(&errs, "name", i.Name)
	requireField(&errs, "email", i.Email)
	requireField(&errs, "phone", i.Phone)
	checkEmail(&errs, i.Email)

	return errs.Err()
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func requireField(errs *domain.FieldErrors, field, v string) {
	if v == "" {
		errs.Add(field, "required")
	}
}

func checkEmail(errs *domain.FieldErrors, email string) {
	if email != "" && !domain.LooksLikeEmail(email) {
		errs.Add("email", "invalid email address")
	}
}
