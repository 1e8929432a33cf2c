package http

import (
	"net/http"
)

// Middleware wraps an http.Handler, following the standard net/http pattern.
type Middleware func(http.Handler) http.Handler

// Router is the routing surface handlers and route registration code program
// against, keeping the concrete mux out of application packages.
//
// Route-level middleware applies in order: the first middleware listed wraps
// outermost.
type Router interface {
	GET(path string, handler http.HandlerFunc, middlewares ...Middleware)
	POST(path string, handler http.HandlerFunc, middlewares ...Middleware)
	PUT(path string, handler http.HandlerFunc, middlewares ...Middleware)
	DELETE(path string, handler http.HandlerFunc, middlewares ...Middleware)

	// Group mounts fn under prefix; group middleware applies to every route
	// registered inside it.
	Group(prefix string, fn func(Router), middlewares ...Middleware)

	// Use adds middleware applying to all subsequently registered routes.
	Use(middlewares ...Middleware)

	// Handler returns the assembled http.Handler.
	Handler() http.Handler
}
