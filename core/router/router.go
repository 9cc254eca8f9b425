package router

import (
	"net/http"

	"github.com/externref/macro/core/handler"
)

// Router is the main routing interface for handling HTTP requests.
// It matches request paths against registered patterns with typed path
// parameters and dispatches to the first matching handler.
//
// All routes must be registered before the router starts serving traffic;
// the router is read-only afterwards and safe for concurrent matching
// without locking. Registering routes during live traffic is unsupported.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	// HTTP method helpers. They panic on registration errors, which are
	// always programmer mistakes and fatal at startup.
	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	Patch(pattern string, h handler.HandlerFunc[C])
	Head(pattern string, h handler.HandlerFunc[C])
	Options(pattern string, h handler.HandlerFunc[C])

	// Generic handlers
	Handle(pattern string, h handler.HandlerFunc[C])
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)

	// Register adds a route for one HTTP method, reporting compile and
	// duplicate-route errors instead of panicking.
	Register(method, pattern string, h handler.HandlerFunc[C]) error

	// Match resolves a request method and path to a handler with coerced
	// path parameters. On a miss it returns ErrNotFound, or
	// ErrMethodNotAllowed when the path matches under different methods
	// (the result then carries the allowed methods).
	Match(method, path string) (MatchResult[C], error)
}

// Routes provides route introspection capabilities for debugging and monitoring.
type Routes interface {
	Routes() []Route
}

// Route describes a single route in the router with its HTTP method and pattern.
type Route struct {
	Method  string
	Pattern string
}

// MatchResult is the outcome of a successful or near-miss route lookup.
type MatchResult[C handler.Context] struct {
	// Handler is the matched handler. Nil unless Match returned nil error.
	Handler handler.HandlerFunc[C]

	// Pattern is the compiled pattern that matched.
	Pattern Pattern

	// Params holds the coerced path parameters bound by the match.
	Params Params

	// Allowed lists the methods the path is registered under when Match
	// returns ErrMethodNotAllowed, in registration order.
	Allowed []string
}

// New creates a new router with the given options.
// The router supports generic context types for type-safe request handling.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}
