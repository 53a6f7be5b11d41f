package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tourdesk-backend/internal/service/dashboard"
)

type dashboardService interface {
	Summary(ctx context.Context) (*dashboard.Summary, error)
}

// DashboardHandler serves the admin overview counters.
type DashboardHandler struct {
	svc dashboardService
	log *slog.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, log: logger.With("handler", "dashboard")}
}

type tourCountsResponse struct {
	Total     int `json:"total"`
	Published int `json:"published"`
	Draft     int `json:"draft"`
	Featured  int `json:"featured"`
}

type enquiryCountsResponse struct {
	New       int `json:"new"`
	Followed  int `json:"followed"`
	Completed int `json:"completed"`
}

type dashboardResponse struct {
	Tours           tourCountsResponse    `json:"tours"`
	TourCategories  int                   `json:"tourCategories"`
	BlogCategories  int                   `json:"blogCategories"`
	PendingContacts int                   `json:"pendingContacts"`
	TourEnquiries   enquiryCountsResponse `json:"tourEnquiries"`
}

// Summary handles GET /api/admin/dashboard.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		Tours: tourCountsResponse{
			Total:     s.Tours.Total,
			Published: s.Tours.Published,
			Draft:     s.Tours.Draft,
			Featured:  s.Tours.Featured,
		},
		TourCategories:  s.TourCategories,
		BlogCategories:  s.BlogCategories,
		PendingContacts: s.PendingContacts,
		TourEnquiries: enquiryCountsResponse{
			New:       s.TourEnquiries.New,
			Followed:  s.TourEnquiries.Followed,
			Completed: s.TourEnquiries.Completed,
		},
	})
}
