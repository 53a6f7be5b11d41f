package middleware

import (
	"net/http"

	"github.com/heartmarshall/tourdesk-backend/pkg/ctxutil"
)

// RequireAdmin rejects requests that carry no admin identity (401) or an
// identity without the admin role (403). Mount it after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.AdminFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
