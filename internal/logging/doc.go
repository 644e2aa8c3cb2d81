// Package logging provides structured logging for easel.
//
// This package wraps zap with convenience functions for the logging patterns
// used throughout the tool. By default it is silent: without EASEL_LOG_LEVEL
// set, a no-op logger is installed so the studio TUI and one-shot command
// output stay clean.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: detailed internals (store writes, blob lifecycle, prompts)
//   - Info: normal operations (generation dispatch and completion)
//   - Warn: non-fatal issues (generation failures, malformed persisted state)
//   - Error: unexpected failures
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Generation succeeded",
//	    zap.String("handle", "0198b2c4.png"),
//	    zap.Int("bytes", 482119),
//	)
//
// # Specialized Logging
//
// The package provides domain-specific logging functions:
//
//	logging.LogGenerationStart(endpoint, prompt, style, aspect)
//	logging.LogGenerationSuccess(handle, contentType, size, elapsed)
//	logging.LogGenerationFailure(kind, statusCode, err)
//	logging.LogGalleryEvent("evict", id, size)
//	logging.LogStoreWrite("recentImages", bytes)
//
// # Configuration
//
// Initialize at startup (usually from the root command):
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// All output goes to stderr, because the TUI owns stdout.
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
