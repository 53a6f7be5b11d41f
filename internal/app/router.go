package app

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tourdesk-backend/internal/config"
	"github.com/heartmarshall/tourdesk-backend/internal/domain"
	"github.com/heartmarshall/tourdesk-backend/internal/transport/loader"
	"github.com/heartmarshall/tourdesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/tourdesk-backend/internal/transport/rest"
	"github.com/heartmarshall/tourdesk-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (ctxutil.Admin, error)
}

type categoryBatcher interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Category, error)
}

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health     *rest.HealthHandler
	Auth       *rest.AuthHandler
	Categories *rest.CategoryHandler
	Tours      *rest.TourHandler
	Enquiries  *rest.EnquiryHandler
	Uploads    *rest.UploadHandler
	Dashboard  *rest.DashboardHandler
}

// RouterDeps holds the cross-cutting pieces the router wraps handlers with.
type RouterDeps struct {
	Logger      *slog.Logger
	CORS        config.CORSConfig
	Storage     config.StorageConfig
	FormsPerMin int
	Limiter     *middleware.RateLimiter
	Tokens      tokenValidator
	Categories  categoryBatcher
}

// NewRouter mounts public, form and admin routes and wraps them in the
// global middleware chain.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Probes.
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Public site.
	mux.HandleFunc("GET /api/categories", h.Categories.PublicList)
	mux.HandleFunc("GET /api/tours", h.Tours.PublicList)
	mux.HandleFunc("GET /api/tours/{slug}", h.Tours.PublicGet)

	forms := middleware.NewGroup(mux, deps.Limiter.Limit(deps.FormsPerMin))
	forms.HandleFunc("POST /api/contact", h.Enquiries.SubmitContact)
	forms.HandleFunc("POST /api/tour-enquiries", h.Enquiries.SubmitTourForm)

	// Sign-in.
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.Handle("GET /api/auth/me", middleware.RequireAdmin(http.HandlerFunc(h.Auth.Me)))
	mux.HandleFunc("POST /api/auth/logout", h.Auth.Logout)

	// Admin console.
	admin := middleware.NewGroup(mux, middleware.RequireAdmin).HandleFunc

	admin("GET /api/admin/dashboard", h.Dashboard.Summary)

	admin("GET /api/admin/categories", h.Categories.AdminList)
	admin("POST /api/admin/categories", h.Categories.Create)
	admin("GET /api/admin/categories/{id}", h.Categories.Get)
	admin("PATCH /api/admin/categories/{id}", h.Categories.Update)
	admin("PATCH /api/admin/categories/{id}/active", h.Categories.SetActive)
	admin("DELETE /api/admin/categories/{id}", h.Categories.Delete)

	admin("GET /api/admin/tours", h.Tours.AdminList)
	admin("POST /api/admin/tours", h.Tours.Create)
	admin("GET /api/admin/tours/{id}", h.Tours.Get)
	admin("PUT /api/admin/tours/{id}", h.Tours.Update)
	admin("PATCH /api/admin/tours/{id}/status", h.Tours.SetStatus)
	admin("PATCH /api/admin/tours/{id}/featured", h.Tours.SetFeatured)
	admin("DELETE /api/admin/tours/{id}", h.Tours.Delete)

	admin("GET /api/admin/contacts", h.Enquiries.ListContacts)
	admin("PATCH /api/admin/contacts/{id}/follow-up", h.Enquiries.SetContactFollowUp)
	admin("GET /api/admin/tour-enquiries", h.Enquiries.ListTourForms)
	admin("PATCH /api/admin/tour-enquiries/{id}/follow-up", h.Enquiries.SetTourFormFollowUp)
	admin("PATCH /api/admin/tour-enquiries/{id}/completed", h.Enquiries.SetTourFormCompleted)

	admin("POST /api/admin/uploads", h.Uploads.Upload)
	admin("POST /api/admin/uploads/delete", h.Uploads.Delete)
	admin("POST /api/admin/uploads/discard", h.Uploads.Discard)

	// Stored images.
	if deps.Storage.Driver == "local" && strings.HasPrefix(deps.Storage.PublicURL, "/") {
		prefix := strings.TrimRight(deps.Storage.PublicURL, "/") + "/"
		mux.Handle("GET "+prefix, http.StripPrefix(prefix, http.FileServer(filesOnly{http.Dir(deps.Storage.BaseDir)})))
	}

	chain := middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
		middleware.Auth(deps.Tokens),
		loader.Middleware(deps.Categories),
	)
	return chain(mux)
}

// filesOnly hides directories so the upload tree cannot be listed.
type filesOnly struct {
	root http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.root.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, fs.ErrNotExist
	}
	return file, nil
}
