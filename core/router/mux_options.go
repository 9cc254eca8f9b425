package router

import (
	"log/slog"
	"net/http"

	"github.com/externref/macro/core/handler"
)

// Option configures a Router during creation.
type Option[C handler.Context] func(*mux[C])

// WithErrorHandler sets a custom error handler for the router.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(m *mux[C]) {
		if h != nil {
			m.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory for the router.
// Required when the router's context type is not *Context.
func WithContextFactory[C handler.Context](f func(http.ResponseWriter, *http.Request, Params) C) Option[C] {
	return func(m *mux[C]) {
		m.newContext = f
	}
}

// WithLogger sets a custom logger for the router.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(m *mux[C]) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithRequestIDGenerator replaces the default UUID request ID generator.
// A generator returning the empty string disables the X-Request-ID header.
func WithRequestIDGenerator[C handler.Context](gen func() string) Option[C] {
	return func(m *mux[C]) {
		if gen != nil {
			m.newRequestID = gen
		}
	}
}
