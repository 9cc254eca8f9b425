package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/externref/macro/core/handler"
)

// knownMethods is the closed set of HTTP methods accepted at registration.
var knownMethods = map[string]struct{}{
	http.MethodConnect: {},
	http.MethodDelete:  {},
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodOptions: {},
	http.MethodPatch:   {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodTrace:   {},
}

// registerMethods is knownMethods in a stable order, used by Handle.
var registerMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodPatch,
	http.MethodHead,
	http.MethodOptions,
	http.MethodConnect,
	http.MethodTrace,
}

// route pairs a compiled pattern with its handler for one HTTP method.
type route[C handler.Context] struct {
	method  string
	pattern Pattern
	fn      handler.HandlerFunc[C]
}

// mux is the private implementation of Router interface. Routes are kept
// in a flat slice in registration order; matching is a linear scan, which
// both keeps the tie-break policy trivial (first registered wins) and lets
// a coercion failure fall through to later candidates.
type mux[C handler.Context] struct {
	routes       []route[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, Params) C
	newRequestID func() string
	logger       *slog.Logger
}

// newMux creates a new router instance.
func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		errorHandler: defaultErrorHandler[C],
		newRequestID: uuid.NewString,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}

	for _, opt := range opts {
		opt(m)
	}

	// If no context factory provided, require it for non-default contexts
	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request, params Params) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(newContext(w, r, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return m
}

// Register adds a route for a single HTTP method. It fails with a pattern
// compile error for malformed templates, ErrInvalidMethod for unknown
// methods, and ErrDuplicateRoute when a pattern with the same
// literal/variable shape is already registered for the method. Duplicate
// detection exists to prevent silent shadowing: with first-match-wins
// semantics the second registration could never be reached.
func (m *mux[C]) Register(method, pattern string, fn handler.HandlerFunc[C]) error {
	method = strings.ToUpper(method)
	if _, ok := knownMethods[method]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidMethod, method)
	}
	if fn == nil {
		return fmt.Errorf("%w: nil handler for %s %q", ErrInvalidPattern, method, pattern)
	}

	p, err := CompilePattern(pattern)
	if err != nil {
		return err
	}

	shape := p.shape()
	for _, rt := range m.routes {
		if rt.method == method && rt.pattern.shape() == shape {
			return fmt.Errorf("%w: %s %q shadows %q", ErrDuplicateRoute, method, pattern, rt.pattern.String())
		}
	}

	m.routes = append(m.routes, route[C]{method: method, pattern: p, fn: fn})
	return nil
}

// Match resolves (method, path) to a handler and coerced path parameters.
//
// Candidates are tried in registration order; the first pattern of the
// requested method whose segments all match wins. Literal segments compare
// exactly and case-sensitively; variable segments accept any non-empty
// segment that coerces to the declared type, and a failed coercion simply
// moves on to the next candidate.
//
// When no pattern matches under the requested method but the path is
// routable under other methods, Match returns ErrMethodNotAllowed and the
// result carries the allowed methods so the dispatcher can answer 405 with
// an Allow header instead of 404.
func (m *mux[C]) Match(method, path string) (MatchResult[C], error) {
	parts, ok := splitPath(path)
	if !ok {
		return MatchResult[C]{}, ErrNotFound
	}

	var allowed []string
	for _, rt := range m.routes {
		params, ok := rt.pattern.matchSegments(parts)
		if !ok {
			continue
		}
		if rt.method == method {
			return MatchResult[C]{
				Handler: rt.fn,
				Pattern: rt.pattern,
				Params:  params,
			}, nil
		}
		if !slices.Contains(allowed, rt.method) {
			allowed = append(allowed, rt.method)
		}
	}

	if len(allowed) > 0 {
		return MatchResult[C]{Allowed: allowed}, ErrMethodNotAllowed
	}
	return MatchResult[C]{}, ErrNotFound
}

// ServeHTTP implements http.Handler. Each request arrives on its own
// goroutine owned by net/http; the mux itself holds no mutable state at
// this point, so no synchronization is needed.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := newResponseWriter(w)

	path := r.URL.Path
	if path == "" {
		path = "/"
	}

	result, matchErr := m.Match(r.Method, path)

	ctx := m.newContext(ww, r, result.Params)

	// An empty ID from the generator disables request IDs entirely: no
	// header and no context value, so RequestID reports not-found.
	requestID := m.newRequestID()
	if requestID != "" {
		ww.Header().Set("X-Request-ID", requestID)
		ctx.SetValue(requestIDContextKey{}, requestID)
	}

	// Recover from handler panics so a failing handler produces a 500
	// response instead of taking down the process.
	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{
				value: p,
				stack: debug.Stack(),
			}

			if ww.Written() {
				// Response already on the wire, nothing left to do but log.
				m.logger.Error("panic after response written",
					"value", panicErr.value,
					"stack", string(panicErr.stack),
					"method", r.Method,
					"path", path,
					"request_id", requestID,
					"status", ww.Status(),
				)
			} else {
				m.errorHandler(ctx, panicErr)
			}
		}
	}()

	if matchErr != nil {
		if len(result.Allowed) > 0 && !ww.Written() {
			// Set Allow header per RFC 9110 before responding with 405
			ww.Header().Set("Allow", strings.Join(result.Allowed, ", "))
		}
		m.errorHandler(ctx, matchErr)
		return
	}

	response := result.Handler(ctx)
	if response == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := response(ww, r); err != nil {
		m.errorHandler(ctx, err)
	}
}

// Get registers a handler for GET requests.
func (m *mux[C]) Get(pattern string, fn handler.HandlerFunc[C]) {
	m.mustRegister(http.MethodGet, pattern, fn)
}

// Post registers a handler for POST requests.
func (m *mux[C]) Post(pattern string, fn handler.HandlerFunc[C]) {
	m.mustRegister(http.MethodPost, pattern, fn)
}

// Put registers a handler for PUT requests.
func (m *mux[C]) Put(pattern string, fn handler.HandlerFunc[C]) {
	m.mustRegister(http.MethodPut, pattern, fn)
}

// Delete registers a handler for DELETE requests.
func (m *mux[C]) Delete(pattern string, fn handler.HandlerFunc[C]) {
	m.mustRegister(http.MethodDelete, pattern, fn)
}

// Patch registers a handler for PATCH requests.
func (m *mux[C]) Patch(pattern string, fn handler.HandlerFunc[C]) {
	m.mustRegister(http.MethodPatch, pattern, fn)
}

// Head registers a handler for HEAD requests.
func (m *mux[C]) Head(pattern string, fn handler.HandlerFunc[C]) {
	m.mustRegister(http.MethodHead, pattern, fn)
}

// Options registers a handler for OPTIONS requests.
func (m *mux[C]) Options(pattern string, fn handler.HandlerFunc[C]) {
	m.mustRegister(http.MethodOptions, pattern, fn)
}

// Handle registers a handler for all HTTP methods.
func (m *mux[C]) Handle(pattern string, fn handler.HandlerFunc[C]) {
	for _, method := range registerMethods {
		m.mustRegister(method, pattern, fn)
	}
}

// Method registers a handler for one or more specific HTTP methods.
func (m *mux[C]) Method(pattern string, fn handler.HandlerFunc[C], methods ...string) {
	if len(methods) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}

	seen := make(map[string]bool, len(methods))
	for _, method := range methods {
		method = strings.ToUpper(method)
		if seen[method] {
			continue
		}
		seen[method] = true
		m.mustRegister(method, pattern, fn)
	}
}

// Routes returns all registered routes in registration order.
func (m *mux[C]) Routes() []Route {
	rts := make([]Route, 0, len(m.routes))
	for _, rt := range m.routes {
		rts = append(rts, Route{Method: rt.method, Pattern: rt.pattern.String()})
	}
	return rts
}

// mustRegister backs the method helpers. Registration errors are fatal at
// startup, matching the panic convention of Go routers.
func (m *mux[C]) mustRegister(method, pattern string, fn handler.HandlerFunc[C]) {
	if err := m.Register(method, pattern, fn); err != nil {
		panic(err)
	}
}

// requestIDContextKey is used as a key for storing request ID in request context.
type requestIDContextKey struct{}

// RequestID retrieves the request ID assigned by the router from the
// request context. Returns the ID and whether one was found.
func RequestID(ctx handler.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}
