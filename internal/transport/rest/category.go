package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
	"github.com/heartmarshall/tourdesk-backend/internal/listing"
	"github.com/heartmarshall/tourdesk-backend/internal/service/category"
)

type categoryService interface {
	List(ctx context.Context, typ *domain.CategoryType) ([]domain.Category, error)
	ListActive(ctx context.Context, typ *domain.CategoryType) ([]domain.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	Create(ctx context.Context, input category.CreateInput) (*domain.Category, error)
	Update(ctx context.Context, input category.UpdateInput) (*domain.Category, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryHandler serves category endpoints.
type CategoryHandler struct {
	svc  categoryService
	list ListConfig
	log  *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, list ListConfig, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, list: list, log: logger.With("handler", "category")}
}

type categoryResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	Type        string     `json:"type"`
	IsActive    bool       `json:"isActive"`
	ItemCount   int        `json:"itemCount"`
	CreatedAt   *time.Time `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

func toCategoryResponse(c domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		ImageURL:    c.ImageURL,
		Type:        c.Type.String(),
		IsActive:    c.IsActive,
		ItemCount:   c.ItemCount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type createCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Type        string `json:"type"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Type        *string `json:"type"`
}

func typeParam(r *http.Request) *domain.CategoryType {
	raw := r.URL.Query().Get("type")
	if raw == "" {
		return nil
	}
	t := domain.CategoryType(raw)
	return &t
}

// AdminList handles GET /api/admin/categories?type=&active=&q=&from=&to=&page=.
func (h *CategoryHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	lq, err := parseListQuery(r, h.list.Location)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	active, err := listing.ParseActiveFilter(r.URL.Query().Get("active"))
	if err != nil {
		writeServiceError(w, r, h.log, domain.NewValidationError("active", err.Error()))
		return
	}

	all, err := h.svc.List(r.Context(), typeParam(r))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	filter := listing.CategoryFilter{Search: lq.Search, Range: lq.Range, Active: active}
	page := listing.FilterCategories(all, filter, lq.Page, h.list.PageSize)
	writeJSON(w, http.StatusOK, toPageResponse(page, toCategoryResponse))
}

// PublicList handles GET /api/categories?type=tour (active categories only).
func (h *CategoryHandler) PublicList(w http.ResponseWriter, r *http.Request) {
	all, err := h.svc.ListActive(r.Context(), typeParam(r))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	out := make([]categoryResponse, len(all))
	for i, c := range all {
		out[i] = toCategoryResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /api/admin/categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(*c))
}

// Create handles POST /api/admin/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	c, err := h.svc.Create(r.Context(), category.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Type:        domain.CategoryType(req.Type),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryResponse(*c))
}

// Update handles PATCH /api/admin/categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req updateCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	input := category.UpdateInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if req.Type != nil {
		t := domain.CategoryType(*req.Type)
		input.Type = &t
	}

	c, err := h.svc.Update(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(*c))
}

// SetActive handles PATCH /api/admin/categories/{id}/active {"value": bool}.
func (h *CategoryHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	active, err := decodeToggle(w, r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.svc.SetActive(r.Context(), id, active); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/admin/categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
