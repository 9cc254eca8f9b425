// Package handler defines the core abstractions for HTTP request processing:
// type-safe handlers with custom context types and a clean separation between
// response generation and rendering.
//
// A handler receives a request context and returns a Response, which is a
// function that performs the actual write:
//
//	func helloHandler(ctx handler.Context) handler.Response {
//		name := ctx.Param("name")
//		return func(w http.ResponseWriter, r *http.Request) error {
//			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
//			w.WriteHeader(http.StatusOK)
//			_, err := w.Write([]byte("Hello, " + name + "!"))
//			return err
//		}
//	}
//
// The Context interface extends context.Context with HTTP-specific methods,
// including access to typed path parameters extracted by the router. Custom
// context types implement Context and are plugged into the router via its
// context factory option, keeping handlers free of type assertions:
//
//	func profileHandler(ctx *AppContext) handler.Response {
//		user, err := ctx.CurrentUser()
//		if err != nil {
//			return response.Error(err)
//		}
//		return response.JSON(user)
//	}
//
// Errors returned from a Response, and panics raised inside handlers, are
// routed to the ErrorHandler configured on the router.
package handler
