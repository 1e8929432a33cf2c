//go:build !go1.22

package http

import "net/http"

// http.Request.PathValue does not exist before Go 1.22; routes mounted
// outside chi have no path-parameter source on older toolchains.
func stdlibPathValue(_ *http.Request, _ string) string {
	return ""
}
