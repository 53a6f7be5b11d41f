package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that the first one runs outermost.
// Nil entries are skipped.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] == nil {
				continue
			}
			final = mws[i](final)
		}
		return final
	}
}

// Group mounts routes on a ServeMux behind a shared middleware stack.
type Group struct {
	mux  *http.ServeMux
	wrap Middleware
}

// NewGroup returns a Group registering on mux through mws.
func NewGroup(mux *http.ServeMux, mws ...Middleware) Group {
	return Group{mux: mux, wrap: Chain(mws...)}
}

// HandleFunc registers fn for pattern behind the group's middleware.
func (g Group) HandleFunc(pattern string, fn http.HandlerFunc) {
	g.mux.Handle(pattern, g.wrap(fn))
}
