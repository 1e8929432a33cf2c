package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// chiRouter adapts chi behind the Router interface.
type chiRouter struct {
	mux chi.Router
}

var _ Router = (*chiRouter)(nil)

// NewChiRouter builds the mux with chi's path-hygiene middleware applied:
// RealIP, CleanPath, and StripSlashes.
func NewChiRouter() Router {
	mux := chi.NewRouter()
	mux.Use(chimw.RealIP)
	mux.Use(chimw.CleanPath)
	mux.Use(chimw.StripSlashes)
	return &chiRouter{mux: mux}
}

func (r *chiRouter) GET(path string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.mux.Get(path, wrap(handler, middlewares))
}

func (r *chiRouter) POST(path string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.mux.Post(path, wrap(handler, middlewares))
}

func (r *chiRouter) PUT(path string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.mux.Put(path, wrap(handler, middlewares))
}

func (r *chiRouter) DELETE(path string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.mux.Delete(path, wrap(handler, middlewares))
}

func (r *chiRouter) Group(prefix string, fn func(Router), middlewares ...Middleware) {
	r.mux.Route(prefix, func(cr chi.Router) {
		for _, mw := range middlewares {
			cr.Use(mw)
		}
		fn(&chiRouter{mux: cr})
	})
}

func (r *chiRouter) Use(middlewares ...Middleware) {
	for _, mw := range middlewares {
		r.mux.Use(mw)
	}
}

func (r *chiRouter) Handler() http.Handler {
	return r.mux
}

// wrap applies route-level middleware, first listed outermost.
func wrap(h http.HandlerFunc, middlewares []Middleware) http.HandlerFunc {
	if len(middlewares) == 0 {
		return h
	}
	var handler http.Handler = h
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler.ServeHTTP
}
