package logging

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "EASEL_LOG_LEVEL"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks EASEL_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:         zap.NewAtomicLevelAt(zapLevel),
		Development:   false,
		Encoding:      "console",
		EncoderConfig: zap.NewDevelopmentEncoderConfig(),
		// The studio TUI owns stdout, so all log output goes to stderr.
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	// Customize encoder for better readability
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the EASEL_LOG_LEVEL
// environment variable. This is the recommended way to initialize logging
// for commands that want silent mode by default.
func InitializeFromEnv() error {
	return Initialize("")
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		// This ensures no unexpected output in CLI commands
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...zap.Field) {
	GetLogger().Fatal(msg, fields...)
}

// LogGenerationStart logs the dispatch of an inference request. The prompt
// itself is only logged at debug level.
func LogGenerationStart(endpoint string, prompt string, style string, aspect string) {
	Info("Generation request dispatched",
		zap.String("endpoint", endpoint),
		zap.Int("prompt_chars", len(prompt)),
		zap.String("style", style),
		zap.String("aspect", aspect),
	)
	Debug("Generation prompt", zap.String("prompt", prompt))
}

// LogGenerationSuccess logs a completed generation
func LogGenerationSuccess(handle string, contentType string, size int, elapsed time.Duration) {
	Info("Generation succeeded",
		zap.String("handle", handle),
		zap.String("content_type", contentType),
		zap.Int("bytes", size),
		zap.Duration("elapsed", elapsed),
	)
}

// LogGenerationFailure logs a failed generation
func LogGenerationFailure(kind string, statusCode int, err error) {
	Warn("Generation failed",
		zap.String("kind", kind),
		zap.Int("status_code", statusCode),
		zap.Error(err),
	)
}

// LogGalleryEvent logs a gallery mutation (insert, delete, clear, evict)
func LogGalleryEvent(event string, id string, size int) {
	Debug("Gallery event",
		zap.String("event", event),
		zap.String("id", id),
		zap.Int("size", size),
	)
}

// LogStoreWrite logs a persistent store write
func LogStoreWrite(key string, bytes int) {
	Debug("Store write",
		zap.String("key", key),
		zap.Int("bytes", bytes),
	)
}

// LogBlobEvent logs a blob store acquire or release
func LogBlobEvent(event string, handle string, size int) {
	Debug("Blob event",
		zap.String("event", event),
		zap.String("handle", handle),
		zap.Int("bytes", size),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
