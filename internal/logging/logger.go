package logging

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

const (
	// LogLevelEnvVar controls logging verbosity. When unset or empty, logging
	// is silent. Valid values: "debug", "info", "warn", "error".
	LogLevelEnvVar = "ORBYTRIXX_LOG_LEVEL"

	// LogFileEnvVar redirects log output to a file. The TUI owns the
	// terminal, so interactive sessions only log when this is set.
	LogFileEnvVar = "ORBYTRIXX_LOG_FILE"
)

// maxBodyLog is the number of response bytes kept in debug logs.
const maxBodyLog = 256

// Initialize creates the global logger with the given level and output path.
// An empty level falls back to ORBYTRIXX_LOG_LEVEL and an empty output to
// ORBYTRIXX_LOG_FILE, then to stderr. With no level at all the logger is a
// no-op.
func Initialize(level, output string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if output == "" {
		output = os.Getenv(LogFileEnvVar)
	}
	if output == "" {
		output = "stderr"
	}

	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	zapLevel, err := ParseLevel(level)
	if err != nil {
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	if output == "stderr" || output == "stdout" {
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

// InitializeFromEnv initializes the logger purely from the environment.
func InitializeFromEnv() error {
	return Initialize("", "")
}

// ParseLevel maps a level name to a zap level.
func ParseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
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

// LogNavigation logs a page change.
func LogNavigation(from, to string) {
	Info("Navigation",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogSelector logs a country selector event such as "open", "close" or
// "choose".
func LogSelector(event string, code string) {
	Debug("Selector event",
		zap.String("event", event),
		zap.String("dial_code", code),
	)
}

// LogSubmission logs the end of a submission attempt.
func LogSubmission(attemptID string, variant string, outcome string, elapsed time.Duration, err error) {
	fields := []zap.Field{
		zap.String("attempt_id", attemptID),
		zap.String("variant", variant),
		zap.String("outcome", outcome),
		zap.Duration("elapsed", elapsed),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
		Warn("Submission finished", fields...)
		return
	}
	Info("Submission finished", fields...)
}

// LogHTTPRequest logs an outgoing request.
func LogHTTPRequest(attemptID string, method string, url string, headers map[string]string) {
	Debug("HTTP request sent",
		zap.String("attempt_id", attemptID),
		zap.String("method", method),
		zap.String("url", url),
		zap.Any("headers", headers),
	)
}

// LogHTTPResponse logs the status and a printable prefix of a response body.
func LogHTTPResponse(attemptID string, statusCode int, body []byte) {
	Debug("HTTP response received",
		zap.String("attempt_id", attemptID),
		zap.Int("status_code", statusCode),
		zap.Int("length", len(body)),
		zap.String("body", asciiDump(body)),
	)
}

// asciiDump keeps printable ASCII and replaces everything else with '.'.
func asciiDump(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	truncated := len(data) > maxBodyLog
	if truncated {
		data = data[:maxBodyLog]
	}

	result := make([]byte, len(data))
	for i, b := range data {
		if b >= 32 && b <= 126 {
			result[i] = b
		} else {
			result[i] = '.'
		}
	}
	if truncated {
		return string(result) + "..."
	}
	return string(result)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
