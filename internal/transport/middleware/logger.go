package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/tourdesk-backend/pkg/ctxutil"
)

type accessKey struct{}

// accessInfo is filled by inner middleware and read back by Logger once the
// request has been served.
type accessInfo struct {
	admin string
}

func accessInfoFromCtx(ctx context.Context) *accessInfo {
	info, _ := ctx.Value(accessKey{}).(*accessInfo)
	return info
}

// Logger returns middleware that writes one access-log line per request with
// method, path, status, duration, request id and, when authenticated, the admin
// email. Server errors are logged at Error level.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			info := &accessInfo{}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), accessKey{}, info)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if info.admin != "" {
				attrs = append(attrs, slog.String("admin", info.admin))
			}

			level := slog.LevelInfo
			if sw.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
