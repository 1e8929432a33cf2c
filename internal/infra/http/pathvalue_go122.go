//go:build go1.22

package http

import "net/http"

func stdlibPathValue(r *http.Request, key string) string {
	return r.PathValue(key)
}
