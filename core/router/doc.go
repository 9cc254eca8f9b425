// Package router provides a small HTTP router with typed path parameters.
// It compiles route templates into literal/variable segment lists, matches
// incoming paths in registration order, coerces path variables to declared
// types, and dispatches to type-safe handlers.
//
// # Route Templates
//
// Templates are plain paths with brace-wrapped variables. A variable may
// declare a coercion type after a colon; the default is string:
//
//	r := router.New[*router.Context]()
//	r.Get("/", indexHandler)
//	r.Get("/hello/{name}", helloHandler)
//	r.Get("/items/{id:int}", itemHandler)
//
// Supported types are string, int, uint, and float (all numeric values are
// 64 bits wide). Inside a handler, parameters are available both as raw
// text and as coerced values:
//
//	func itemHandler(ctx *router.Context) handler.Response {
//		id, _ := ctx.Params().Int("id")
//		return response.JSON(map[string]any{"id": id})
//	}
//
// # Matching Semantics
//
// Candidates are tried strictly in registration order and the first match
// wins, including when a literal route and a variable route overlap:
//
//	r.Get("/a/{x}", first)   // registered first
//	r.Get("/a/fixed", second)
//
//	// GET /a/fixed dispatches to first; {x} = "fixed"
//
// Literal segments match exactly and case-sensitively. A variable segment
// matches any non-empty segment that coerces to its declared type; a failed
// coercion is not an error, the candidate is simply skipped. A request for
// /items/abc against /items/{id:int} therefore falls through and, with no
// other candidates, produces 404.
//
// Registering two patterns whose literal/variable shape is identical for
// the same method fails with ErrDuplicateRoute, since the later one could
// never be reached.
//
// # Dispatch
//
// The router implements http.Handler. Requests for a known path under the
// wrong method receive 405 with an Allow header; unknown paths receive 404.
// Handler panics are recovered and turned into 500 responses via the error
// handler, never crashing the process. Each request is tagged with a UUID
// exposed through RequestID and the X-Request-ID response header.
//
// Registration must complete before the router serves traffic. After that
// the route table is immutable and matched concurrently without locking.
package router
