// Package server provides an HTTP server wrapper with graceful shutdown,
// configurable options, and production-ready defaults. It is the external
// gateway runtime for the routing core: connection lifecycle, per-request
// goroutine scheduling, and timeouts live here, not in the router.
//
// Create and run a server with default configuration:
//
//	func main() {
//		r := router.New[*router.Context]()
//		r.Get("/", func(ctx *router.Context) handler.Response {
//			return response.String("Hello, World!")
//		})
//
//		if err := server.Run(context.Background(), ":8080", r); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Configuration can come from the environment via Config and the config
// package:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//	srv, err := server.NewFromConfig(cfg,
//		server.WithLogger(slog.Default()),
//	)
package server
