// Package logger provides structured logging built on log/slog: a factory
// with environment presets and attribute helpers for consistent records
// across the framework.
//
// Create a logger with New and an environment preset:
//
//	log := logger.New(logger.WithDevelopment("myapp"))
//	log := logger.New(logger.WithProduction("myapp"), logger.WithLevel(slog.LevelWarn))
//
// Attribute helpers return an empty Attr for nil or zero inputs, so call
// sites never need nil checks:
//
//	log.Info("request served",
//		logger.Method(r.Method),
//		logger.Path(r.URL.Path),
//		logger.Status(ww.Status()),
//		logger.Error(err), // no-op when err is nil
//	)
package logger
