package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/externref/macro/core/handler"
)

// statusError is a sentinel error carrying its HTTP status code, so error
// handlers can map match failures without importing the router package.
type statusError struct {
	msg    string
	status int
}

func (e statusError) Error() string   { return e.msg }
func (e statusError) StatusCode() int { return e.status }

var (
	// Matching errors, surfaced by Match and mapped to HTTP status codes
	// by the error handler.
	ErrNotFound         error = statusError{"not found", http.StatusNotFound}
	ErrMethodNotAllowed error = statusError{"method not allowed", http.StatusMethodNotAllowed}

	// Registration errors, fatal at application startup.
	ErrInvalidPattern   = errors.New("invalid route path pattern")
	ErrUnknownParamType = errors.New("unknown parameter type")
	ErrDuplicateParam   = errors.New("duplicate parameter name")
	ErrDuplicateRoute   = errors.New("duplicate route")
	ErrInvalidMethod    = errors.New("invalid http method")

	// Dispatch errors.
	ErrNilResponse      = errors.New("nil response")
	ErrNoContextFactory = errors.New("no context factory provided")
)

// statusCode is an unexported interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler provides default error handling.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()

	// Prevent double-writing responses which causes HTTP protocol errors
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	http.Error(w, http.StatusText(status), status)
}

// PanicError allows external error handlers to detect and inspect panics
// recovered by the router during handler execution.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

// panicError is the private implementation of PanicError interface.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with wrapped panics.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
