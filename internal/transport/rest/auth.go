package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/tourdesk-backend/internal/domain"
	"github.com/heartmarshall/tourdesk-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
	Session(ctx context.Context) (*domain.Admin, error)
}

// AuthHandler serves admin sign-in endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string        `json:"accessToken"`
	ExpiresAt   time.Time     `json:"expiresAt"`
	Admin       adminResponse `json:"admin"`
}

type adminResponse struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func toAdminResponse(a *domain.Admin) adminResponse {
	return adminResponse{
		ID:          a.ID.String(),
		Email:       a.Email,
		Role:        domain.RoleAdmin,
		LastLoginAt: a.LastLoginAt,
	}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
		Admin:       toAdminResponse(result.Admin),
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	admin, err := h.svc.Session(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAdminResponse(admin))
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so the client
// drops its copy; the call exists for symmetry and audit logging.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if admin, err := h.svc.Session(r.Context()); err == nil {
		h.log.InfoContext(r.Context(), "admin logged out", slog.String("admin_id", admin.ID.String()))
	}
	w.WriteHeader(http.StatusNoContent)
}
