package transport

import (
	"net/http"
)

// router implements Router using http.ServeMux.
type router struct {
	mux         *http.ServeMux
	middlewares []Middleware
}

// NewRouter creates a new HTTP router backed by http.ServeMux.
func NewRouter() Router {
	return &router{
		mux:         http.NewServeMux(),
		middlewares: make([]Middleware, 0),
	}
}

// Handle registers a handler for the given pattern.
// The handler is wrapped with all currently registered middleware.
func (r *router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, r.applyMiddleware(handler))
}

// Use applies middleware to all subsequent route registrations.
// Middleware is applied in the order registered.
func (r *router) Use(middlewares ...Middleware) {
	r.middlewares = append(r.middlewares, middlewares...)
}

// ServeHTTP implements http.Handler by delegating to the underlying ServeMux.
func (r *router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// applyMiddleware wraps the handler with all registered middleware.
// Middleware is applied in reverse order so the first middleware
// registered is the outermost layer (executes first).
func (r *router) applyMiddleware(handler http.Handler) http.Handler {
	wrapped := handler
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		wrapped = r.middlewares[i](wrapped)
	}
	return wrapped
}
