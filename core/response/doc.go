// Package response provides HTTP response helpers for handlers: plain text,
// HTML, JSON, redirects, streaming, and structured error responses. Every
// helper returns a handler.Response, keeping response construction separate
// from the actual write.
//
// Basic usage:
//
//	func getItemHandler(ctx *router.Context) handler.Response {
//		id, _ := ctx.Params().Int("id")
//		item, err := store.Find(id)
//		if err != nil {
//			return response.Error(response.ErrNotFound.WithError(err))
//		}
//		return response.JSON(item)
//	}
//
// # Errors
//
// HTTPError is a structured error carrying a status code, machine-readable
// code, and optional details. Predefined values cover the common 4xx/5xx
// statuses. Errors implementing StatusCode() int map onto the right status;
// anything else becomes a 500. ErrorHandler and JSONErrorHandler are
// drop-in error handlers for router.WithErrorHandler:
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
//	)
package response
