// Package logging provides structured logging for formnav.
//
// This package wraps a package-level zap logger with convenience functions
// and a few domain helpers for form and navigation events.
//
// # Log Levels
//
//   - Debug: Registration, focus moves, unmanaged-control no-ops
//   - Info: Form loading, navigation settings, exit statistics
//   - Warn: Refused focus transfers (recovered locally)
//   - Error: Startup failures
//
// # Silent by Default
//
// Logging is off unless FORMNAV_LOG_LEVEL (or --log-level) is set. The
// interactive form runs on the terminal's alternate screen, so it directs
// output to a file via FORMNAV_LOG_FILE (or --log-file):
//
//	if err := logging.Initialize("debug", "/tmp/formnav.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Structured Logging
//
//	logging.Info("Form loaded",
//	    zap.String("form", "contact"),
//	    zap.Int("fields", 5),
//	)
//
// Components that accept a logger (navigator.WithLogger) default to
// GetLogger(), so tests can inject zaptest/observer loggers with SetLogger.
package logging
