// Package logger provides a structured logging facility based on Zap.
//
// New builds a development configuration for the debug level and a production
// configuration otherwise, with console or json encoding.
//
// WithRayID extracts the request ID set by the rayid middleware from a Fiber
// context and attaches it to the logger, so every log line of a request can be
// correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Profiles synced")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Sync failed", zap.Error(err))
package logger
