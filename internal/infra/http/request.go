package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// PathParam returns the named URL path parameter. Handlers go through this
// instead of chi.URLParam so they stay agnostic of the router implementation;
// it falls back to the stdlib r.PathValue for routes mounted outside chi.
func PathParam(r *http.Request, key string) string {
	if val := chi.URLParam(r, key); val != "" {
		return val
	}
	return stdlibPathValue(r, key)
}

// QueryParam returns the named URL query parameter, or "" when absent.
func QueryParam(r *http.Request, key string) string {
	return r.URL.Query().Get(key)
}
