package handler

import (
	"context"
	"net/http"
)

// Context defines the contract for request contexts in the framework.
// Use router.Context for the default implementation.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter

	// Param returns the raw text of the named path parameter,
	// or the empty string if the route declares no such parameter.
	Param(key string) string

	// ParamValue returns the coerced value of the named path parameter:
	// string for untyped parameters, int64/uint64/float64 for typed ones.
	// Returns nil if the route declares no such parameter.
	ParamValue(key string) any

	SetValue(key, val any)
}
