package middleware

import (
	"net/http"

	"github.com/campaignhub/api/pkg/apierror"
)

// DefaultMaxBodySize is the default request body limit (10 MB).
const DefaultMaxBodySize int64 = 10 << 20

// BodyLimit limits the size of the request body.
// Oversized bodies fail at read time with http.MaxBytesError.
func BodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodySize
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skip for methods without body
			if r.Method == http.MethodGet || r.Method == http.MethodHead ||
				r.Method == http.MethodOptions || r.Method == http.MethodTrace {
				next.ServeHTTP(w, r)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

			next.ServeHTTP(w, r)
		})
	}
}

// HandleBodyLimitError writes the standard response for an exceeded body limit.
func HandleBodyLimitError(w http.ResponseWriter, _ *http.Request) {
	apierror.New(http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE",
		"Request body too large").WriteJSON(w)
}
