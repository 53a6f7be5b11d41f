package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
	"github.com/heartmarshall/tourdesk-backend/internal/listing"
	"github.com/heartmarshall/tourdesk-backend/internal/service/tour"
	"github.com/heartmarshall/tourdesk-backend/internal/transport/loader"
)

type tourService interface {
	List(ctx context.Context) ([]domain.Tour, error)
	ListPublished(ctx context.Context, categoryID string, featuredOnly bool) ([]domain.Tour, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Tour, error)
	GetPublished(ctx context.Context, slug string) (*domain.Tour, error)
	Create(ctx context.Context, form tour.Form) (*domain.Tour, error)
	Update(ctx context.Context, id uuid.UUID, form tour.Form) (*domain.Tour, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.TourStatus) error
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TourHandler serves tour endpoints.
type TourHandler struct {
	svc  tourService
	list ListConfig
	log  *slog.Logger
}

// NewTourHandler creates a TourHandler.
func NewTourHandler(svc tourService, list ListConfig, logger *slog.Logger) *TourHandler {
	return &TourHandler{svc: svc, list: list, log: logger.With("handler", "tour")}
}

type itineraryDayJSON struct {
	DayNumber   int    `json:"dayNumber,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type tourResponse struct {
	ID               string             `json:"id"`
	Title            string             `json:"title"`
	Slug             string             `json:"slug"`
	Description      string             `json:"description"`
	Price            int                `json:"price"`
	CategoryID       string             `json:"categoryId"`
	CategoryName     string             `json:"categoryName"`
	CategoryMissing  bool               `json:"categoryMissing,omitempty"`
	Location         string             `json:"location"`
	Duration         string             `json:"duration"`
	MaxGroupSize     *int               `json:"maxGroupSize"`
	Difficulty       string             `json:"difficulty"`
	Season           string             `json:"season"`
	MinAge           *int               `json:"minAge"`
	MapEmbedHTML     string             `json:"mapEmbedHtml"`
	FeatureImageURL  string             `json:"featureImageUrl"`
	ImageURLs        []string           `json:"imageUrls"`
	GalleryImageURLs []string           `json:"galleryImageUrls"`
	Highlights       []string           `json:"highlights"`
	Included         []string           `json:"included"`
	Excluded         []string           `json:"excluded"`
	Itinerary        []itineraryDayJSON `json:"itinerary"`
	MetaTitle        string             `json:"metaTitle"`
	MetaDescription  string             `json:"metaDescription"`
	MetaKeywords     string             `json:"metaKeywords"`
	OGImage          string             `json:"ogImage"`
	Status           string             `json:"status"`
	Featured         bool               `json:"featured"`
	CreatedAt        *time.Time         `json:"createdAt"`
	UpdatedAt        *time.Time         `json:"updatedAt"`
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toTourResponse(t domain.Tour) tourResponse {
	itinerary := make([]itineraryDayJSON, len(t.Itinerary))
	for i, d := range t.Itinerary {
		itinerary[i] = itineraryDayJSON{DayNumber: d.DayNumber, Title: d.Title, Description: d.Description}
	}

	return tourResponse{
		ID:               t.ID.String(),
		Title:            t.Title,
		Slug:             t.Slug,
		Description:      t.Description,
		Price:            t.Price,
		CategoryID:       t.CategoryID,
		CategoryName:     t.CategoryName,
		Location:         t.Location,
		Duration:         t.Duration,
		MaxGroupSize:     t.MaxGroupSize,
		Difficulty:       t.Difficulty.String(),
		Season:           t.Season,
		MinAge:           t.MinAge,
		MapEmbedHTML:     t.MapEmbedHTML,
		FeatureImageURL:  t.FeatureImageURL,
		ImageURLs:        nonNil(t.ImageURLs),
		GalleryImageURLs: nonNil(t.GalleryImageURLs),
		Highlights:       nonNil(t.Highlights),
		Included:         nonNil(t.Included),
		Excluded:         nonNil(t.Excluded),
		Itinerary:        itinerary,
		MetaTitle:        t.MetaTitle,
		MetaDescription:  t.MetaDescription,
		MetaKeywords:     t.MetaKeywords,
		OGImage:          t.OGImage,
		Status:           t.Status.String(),
		Featured:         t.Featured,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

// tourFormRequest is the admin create/edit form.
type tourFormRequest struct {
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	CategoryID      string             `json:"categoryId"`
	CategoryName    string             `json:"categoryName"`
	Location        string             `json:"location"`
	Duration        string             `json:"duration"`
	MaxGroupSize    *int               `json:"maxGroupSize"`
	Difficulty      string             `json:"difficulty"`
	Season          string             `json:"season"`
	MinAge          *int               `json:"minAge"`
	MapEmbedHTML    string             `json:"mapEmbedHtml"`
	FeatureImageURL string             `json:"featureImageUrl"`
	GalleryImages   []string           `json:"galleryImages"`
	Highlights      []string           `json:"highlights"`
	Included        []string           `json:"included"`
	Excluded        []string           `json:"excluded"`
	Itinerary       []itineraryDayJSON `json:"itinerary"`
	MetaTitle       string             `json:"metaTitle"`
	MetaDescription string             `json:"metaDescription"`
	MetaKeywords    string             `json:"metaKeywords"`
	OGImage         string             `json:"ogImage"`
	Status          string             `json:"status"`
	Featured        bool               `json:"featured"`
}

func (req tourFormRequest) toForm() tour.Form {
	days := make([]tour.ItineraryDayForm, len(req.Itinerary))
	for i, d := range req.Itinerary {
		days[i] = tour.ItineraryDayForm{Title: d.Title, Description: d.Description}
	}

	return tour.Form{
		Title:           req.Title,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		CategoryName:    req.CategoryName,
		Location:        req.Location,
		Duration:        req.Duration,
		MaxGroupSize:    req.MaxGroupSize,
		Difficulty:      domain.Difficulty(req.Difficulty),
		Season:          req.Season,
		MinAge:          req.MinAge,
		MapEmbedHTML:    req.MapEmbedHTML,
		FeatureImageURL: req.FeatureImageURL,
		GalleryImages:   req.GalleryImages,
		Highlights:      req.Highlights,
		Included:        req.Included,
		Excluded:        req.Excluded,
		Itinerary:       days,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
		OGImage:         req.OGImage,
		Status:          domain.TourStatus(req.Status),
		Featured:        req.Featured,
	}
}

// withCategories converts tours and refreshes each category name from the
// current category record. References to deleted categories keep the stored
// name and are flagged.
func (h *TourHandler) withCategories(ctx context.Context, tours []domain.Tour) ([]tourResponse, error) {
	out := make([]tourResponse, len(tours))
	for i, t := range tours {
		out[i] = toTourResponse(t)
	}

	loaders := loader.FromContext(ctx)
	if loaders == nil || len(tours) == 0 {
		return out, nil
	}

	ids := make([]string, len(tours))
	for i, t := range tours {
		ids[i] = t.CategoryID
	}
	categories, err := loaders.LoadCategories(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i, c := range categories {
		if c == nil {
			out[i].CategoryMissing = true
			continue
		}
		out[i].CategoryName = c.Name
	}
	return out, nil
}

// AdminList handles GET /api/admin/tours?status=&category=&q=&from=&to=&page=.
func (h *TourHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	lq, err := parseListQuery(r, h.list.Location)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	status := domain.TourStatus(r.URL.Query().Get("status"))
	if status == "all" {
		status = ""
	}
	if status != "" && !status.IsValid() {
		writeServiceError(w, r, h.log, domain.NewValidationError("status", "invalid value"))
		return
	}

	all, err := h.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	filter := listing.TourFilter{
		Search:     lq.Search,
		Range:      lq.Range,
		Status:     status,
		CategoryID: r.URL.Query().Get("category"),
	}
	page := listing.FilterTours(all, filter, lq.Page, h.list.PageSize)

	items, err := h.withCategories(r.Context(), page.Items)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, pageResponse[tourResponse]{
		Items:      items,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Total:      page.Total,
	})
}

// PublicList handles GET /api/tours?category=&featured=true.
func (h *TourHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	featured, _ := strconv.ParseBool(r.URL.Query().Get("featured"))

	tours, err := h.svc.ListPublished(r.Context(), r.URL.Query().Get("category"), featured)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	items, err := h.withCategories(r.Context(), tours)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// PublicGet handles GET /api/tours/{slug}.
func (h *TourHandler) PublicGet(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetPublished(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTourResponse(*t))
}

// Get handles GET /api/admin/tours/{id}.
func (h *TourHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTourResponse(*t))
}

// Create handles POST /api/admin/tours.
func (h *TourHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req tourFormRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	t, err := h.svc.Create(r.Context(), req.toForm())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTourResponse(*t))
}

// Update handles PUT /api/admin/tours/{id}.
func (h *TourHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req tourFormRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	t, err := h.svc.Update(r.Context(), id, req.toForm())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTourResponse(*t))
}

type statusRequest struct {
	Status string `json:"status"`
}

// SetStatus handles PATCH /api/admin/tours/{id}/status {"status": "published"}.
func (h *TourHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.SetStatus(r.Context(), id, domain.TourStatus(req.Status)); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetFeatured handles PATCH /api/admin/tours/{id}/featured {"value": bool}.
func (h *TourHandler) SetFeatured(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	featured, err := decodeToggle(w, r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.SetFeatured(r.Context(), id, featured); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/admin/tours/{id}.
func (h *TourHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
