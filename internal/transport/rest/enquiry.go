package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
	"github.com/heartmarshall/tourdesk-backend/internal/listing"
	"github.com/heartmarshall/tourdesk-backend/internal/service/enquiry"
)

type enquiryService interface {
	SubmitContact(ctx context.Context, input enquiry.ContactInput) (*domain.ContactEnquiry, error)
	ListContacts(ctx context.Context) ([]domain.ContactEnquiry, error)
	SetContactFollowUp(ctx context.Context, id uuid.UUID, done bool) error
	SubmitTourForm(ctx context.Context, input enquiry.TourFormInput) (*domain.TourEnquiry, error)
	ListTourForms(ctx context.Context) ([]domain.TourEnquiry, error)
	SetTourFormFollowUp(ctx context.Context, id uuid.UUID, done bool) error
	SetTourFormCompleted(ctx context.Context, id uuid.UUID, completed bool) error
}

// EnquiryHandler serves the public forms and the admin enquiry inbox.
type EnquiryHandler struct {
	svc  enquiryService
	list ListConfig
	log  *slog.Logger
}

// NewEnquiryHandler creates an EnquiryHandler.
func NewEnquiryHandler(svc enquiryService, list ListConfig, logger *slog.Logger) *EnquiryHandler {
	return &EnquiryHandler{svc: svc, list: list, log: logger.With("handler", "enquiry")}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

type tourEnquiryRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Country       string `json:"country"`
	ArrivalDate   string `json:"arrivalDate"`
	Days          string `json:"days"`
	Adults        string `json:"adults"`
	Children      string `json:"children"`
	Accommodation string `json:"accommodation"`
	Info          string `json:"info"`
	Path          string `json:"path"`
}

type submittedResponse struct {
	ID string `json:"id"`
}

type contactResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	Message      string     `json:"message"`
	UserAgent    string     `json:"userAgent"`
	Path         string     `json:"path"`
	FollowUpDone bool       `json:"followUpDone"`
	CreatedAt    *time.Time `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt"`
}

func toContactResponse(e domain.ContactEnquiry) contactResponse {
	return contactResponse{
		ID:           e.ID.String(),
		Name:         e.Name,
		Email:        e.Email,
		Phone:        e.Phone,
		Message:      e.Message,
		UserAgent:    e.Submission.UserAgent,
		Path:         e.Submission.Path,
		FollowUpDone: e.FollowUpDone,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

type tourEnquiryResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Country       string     `json:"country"`
	ArrivalDate   string     `json:"arrivalDate"`
	Days          string     `json:"days"`
	Adults        string     `json:"adults"`
	Children      string     `json:"children"`
	Accommodation string     `json:"accommodation"`
	Info          string     `json:"info"`
	UserAgent     string     `json:"userAgent"`
	Path          string     `json:"path"`
	Status        string     `json:"status"`
	FollowUpDone  bool       `json:"followUpDone"`
	TripCompleted bool       `json:"tripCompleted"`
	CreatedAt     *time.Time `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt"`
}

func toTourEnquiryResponse(e domain.TourEnquiry) tourEnquiryResponse {
	return tourEnquiryResponse{
		ID:            e.ID.String(),
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		Country:       e.Country,
		ArrivalDate:   e.ArrivalDate,
		Days:          e.Days,
		Adults:        e.Adults,
		Children:      e.Children,
		Accommodation: e.Accommodation,
		Info:          e.Info,
		UserAgent:     e.Submission.UserAgent,
		Path:          e.Submission.Path,
		Status:        e.Status.String(),
		FollowUpDone:  e.FollowUpDone,
		TripCompleted: e.TripCompleted,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

// submissionPath is the page the form was sent from: the body value, or the
// path of the Referer header when the body leaves it blank.
func submissionPath(r *http.Request, fromBody string) string {
	if fromBody != "" {
		return fromBody
	}
	ref, err := url.Parse(r.Referer())
	if err != nil {
		return ""
	}
	return ref.Path
}

// SubmitContact handles POST /api/contact.
func (h *EnquiryHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	e, err := h.svc.SubmitContact(r.Context(), enquiry.ContactInput{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		UserAgent: r.UserAgent(),
		Path:      submissionPath(r, req.Path),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, submittedResponse{ID: e.ID.String()})
}

// SubmitTourForm handles POST /api/tour-enquiries.
func (h *EnquiryHandler) SubmitTourForm(w http.ResponseWriter, r *http.Request) {
	var req tourEnquiryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	e, err := h.svc.SubmitTourForm(r.Context(), enquiry.TourFormInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Country:       req.Country,
		ArrivalDate:   req.ArrivalDate,
		Days:          req.Days,
		Adults:        req.Adults,
		Children:      req.Children,
		Accommodation: req.Accommodation,
		Info:          req.Info,
		UserAgent:     r.UserAgent(),
		Path:          submissionPath(r, req.Path),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, submittedResponse{ID: e.ID.String()})
}

// ListContacts handles GET /api/admin/contacts?followUp=&q=&from=&to=&page=.
func (h *EnquiryHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	lq, err := parseListQuery(r, h.list.Location)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	followUp, err := listing.ParseFollowUpFilter(r.URL.Query().Get("followUp"))
	if err != nil {
		writeServiceError(w, r, h.log, domain.NewValidationError("followUp", err.Error()))
		return
	}

	all, err := h.svc.ListContacts(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	filter := listing.ContactFilter{Search: lq.Search, Range: lq.Range, FollowUp: followUp}
	page := listing.FilterContacts(all, filter, lq.Page, h.list.PageSize)
	writeJSON(w, http.StatusOK, toPageResponse(page, toContactResponse))
}

// ListTourForms handles GET /api/admin/tour-enquiries?status=&q=&from=&to=&page=.
func (h *EnquiryHandler) ListTourForms(w http.ResponseWriter, r *http.Request) {
	lq, err := parseListQuery(r, h.list.Location)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	status, err := listing.ParseEnquiryStatusFilter(r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, r, h.log, domain.NewValidationError("status", err.Error()))
		return
	}

	all, err := h.svc.ListTourForms(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	filter := listing.TourEnquiryFilter{Search: lq.Search, Range: lq.Range, Status: status}
	page := listing.FilterTourEnquiries(all, filter, lq.Page, h.list.PageSize)
	writeJSON(w, http.StatusOK, toPageResponse(page, toTourEnquiryResponse))
}

// SetContactFollowUp handles PATCH /api/admin/contacts/{id}/follow-up.
func (h *EnquiryHandler) SetContactFollowUp(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.SetContactFollowUp)
}

// SetTourFormFollowUp handles PATCH /api/admin/tour-enquiries/{id}/follow-up.
func (h *EnquiryHandler) SetTourFormFollowUp(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.SetTourFormFollowUp)
}

// SetTourFormCompleted handles PATCH /api/admin/tour-enquiries/{id}/completed.
func (h *EnquiryHandler) SetTourFormCompleted(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.svc.SetTourFormCompleted)
}

func (h *EnquiryHandler) toggle(w http.ResponseWriter, r *http.Request, set func(context.Context, uuid.UUID, bool) error) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	value, err := decodeToggle(w, r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := set(r.Context(), id, value); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
