package router

import (
	"context"
	"net/http"
	"time"
)

// Context is the default request context implementation. It delegates
// cancellation and deadlines to the underlying request context and exposes
// the typed path parameters bound by the router.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	params Params
}

// newContext creates a new Context instance.
func newContext(w http.ResponseWriter, r *http.Request, params Params) *Context {
	return &Context{
		w:      w,
		r:      r,
		params: params,
	}
}

// Deadline returns the time when work done on behalf of this context should be canceled.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done returns a channel that's closed when work done on behalf of this context should be canceled.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err returns a non-nil error value after Done is closed.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns the value associated with this context for key, or nil if no value is associated with key.
func (c *Context) Value(key any) any {
	return c.r.Context().Value(key)
}

// Request returns the HTTP request associated with this context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the HTTP response writer associated with this context.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Param returns the raw text of the named path parameter.
func (c *Context) Param(key string) string {
	return c.params.Raw(key)
}

// ParamValue returns the coerced value of the named path parameter:
// string for untyped parameters, int64/uint64/float64 for typed ones.
func (c *Context) ParamValue(key string) any {
	v, _ := c.params.Get(key)
	return v
}

// Params returns all path parameters bound by the route match.
func (c *Context) Params() Params {
	return c.params
}

// SetValue stores a request-scoped value on the underlying request context.
func (c *Context) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}
