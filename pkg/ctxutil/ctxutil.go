package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	adminKey     ctxKey = "admin"
	requestIDKey ctxKey = "request_id"
)

// Admin identifies the authenticated administrator of a request.
type Admin struct {
	ID    uuid.UUID
	Email string
	Role  string
}

// WithAdmin stores the authenticated admin in the context.
func WithAdmin(ctx context.Context, a Admin) context.Context {
	return context.WithValue(ctx, adminKey, a)
}

// AdminFromCtx extracts the authenticated admin from the context.
// Returns false if the value is missing, has a nil ID, or has the wrong type.
func AdminFromCtx(ctx context.Context) (Admin, bool) {
	a, ok := ctx.Value(adminKey).(Admin)
	if !ok || a.ID == uuid.Nil {
		return Admin{}, false
	}
	return a, true
}

// IsAdminCtx reports whether the context carries an identity with the admin role.
func IsAdminCtx(ctx context.Context) bool {
	a, ok := AdminFromCtx(ctx)
	return ok && a.Role == "admin"
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
