package simple

import (
	"context"
	"errors"
	"log/slog"

	"github.com/externref/macro/core/config"
	"github.com/externref/macro/core/handler"
	"github.com/externref/macro/core/logger"
	"github.com/externref/macro/core/response"
	"github.com/externref/macro/core/router"
	"github.com/externref/macro/core/server"
)

// App is a minimal application wiring the routing core to the server
// runtime: environment configuration, structured logging, typed path
// parameters, and graceful shutdown.
type App struct {
	config Config
	router router.Router[*router.Context]
	server *server.Server
	logger *slog.Logger
}

type AppOption func(*App) error

func NewApp(opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		logger: newLogger(cfg),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.router == nil {
		app.router = router.New[*router.Context](
			router.WithLogger[*router.Context](app.logger),
			router.WithErrorHandler(response.JSONErrorHandler[*router.Context]),
		)
		registerRoutes(app.router)
	}

	if app.server == nil {
		s, err := server.NewFromConfig(app.config.Server,
			server.WithLogger(app.logger),
		)
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	return app, nil
}

// Run starts the HTTP server and blocks until ctx is canceled.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx, a.router)()
}

// Router exposes the application's router, mainly for tests.
func (a *App) Router() router.Router[*router.Context] {
	return a.router
}

// newLogger builds the application logger from config: JSON output in
// production, text elsewhere, with LOG_LEVEL overriding the preset level.
func newLogger(cfg Config, extra ...logger.Option) *slog.Logger {
	opts := []logger.Option{logger.WithDevelopment(cfg.AppName)}
	if cfg.Env == "production" {
		opts = []logger.Option{logger.WithProduction(cfg.AppName)}
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err == nil {
		opts = append(opts, logger.WithLevel(level))
	}

	return logger.New(append(opts, extra...)...)
}

// registerRoutes declares the demo endpoints.
func registerRoutes(r router.Router[*router.Context]) {
	r.Get("/", func(ctx *router.Context) handler.Response {
		return response.String("Hello, World!")
	})

	r.Get("/hello/{name}", func(ctx *router.Context) handler.Response {
		return response.String("Hello, " + ctx.Param("name") + "!")
	})

	r.Get("/items/{id:int}", func(ctx *router.Context) handler.Response {
		id, _ := ctx.Params().Int("id")
		return response.JSON(map[string]any{"id": id})
	})

	r.Get("/price/{amount:float}", func(ctx *router.Context) handler.Response {
		amount, _ := ctx.Params().Float("amount")
		return response.JSON(map[string]any{"amount": amount})
	})
}

func WithLogger(log *slog.Logger) AppOption {
	return func(app *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = log
		return nil
	}
}

func WithRouter(r router.Router[*router.Context]) AppOption {
	return func(app *App) error {
		if r == nil {
			return errors.New("router cannot be nil")
		}
		app.router = r
		return nil
	}
}

func WithServer(s *server.Server) AppOption {
	return func(app *App) error {
		if s == nil {
			return errors.New("server cannot be nil")
		}
		app.server = s
		return nil
	}
}
