package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "FORMNAV_LOG_LEVEL"

// LogFileEnvVar names a file that receives log output instead of stdout.
// The interactive form sets this implicitly so log lines never land on
// the alternate screen.
const LogFileEnvVar = "FORMNAV_LOG_FILE"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks FORMNAV_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
// Output goes to outputPath when given, else FORMNAV_LOG_FILE, else stdout.
func Initialize(level string, outputPath string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	zapLevel, err := ParseLevel(level)
	if err != nil {
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	if outputPath == "" {
		outputPath = os.Getenv(LogFileEnvVar)
	}
	if outputPath == "" {
		outputPath = "stdout"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{outputPath},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if outputPath == "stdout" || outputPath == "stderr" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built

	return nil
}

// ParseLevel maps a level name to a zap level
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// SetLogger replaces the global logger. Tests use this with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
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

// LogFormLoaded logs a form definition being turned into a view tree
func LogFormLoaded(form string, fields int, scroll bool) {
	Info("Form loaded",
		zap.String("form", form),
		zap.Int("fields", fields),
		zap.Bool("scroll_list", scroll),
	)
}

// LogNavigationSettings logs the ordering policy in effect
func LogNavigationSettings(behaviour, lastLabel string) {
	Info("Navigation settings",
		zap.String("behaviour", behaviour),
		zap.String("last_submit_label", lastLabel),
	)
}

// LogNavigationStats logs outcome counters, typically at exit
func LogNavigationStats(registered, advances, releases, refusals int64) {
	Info("Navigation stats",
		zap.Int64("registered", registered),
		zap.Int64("advances", advances),
		zap.Int64("releases", releases),
		zap.Int64("refusals", refusals),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
