package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "OSRDESK_LOG_LEVEL"

// LogFileEnvVar selects the log sink. The console owns the terminal, so logs
// must never go to stdout; when unset, stderr is used.
const LogFileEnvVar = "OSRDESK_LOG_FILE"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks OSRDESK_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

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

	sink := os.Getenv(LogFileEnvVar)
	if sink == "" {
		sink = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{sink},
		ErrorOutputPaths: []string{sink},
	}

	var err error
	logger, err = config.Build()
	return err
}

// GetLogger returns the global logger, initializing a nop logger if needed
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// Debug logs a debug message with structured fields
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Info logs an info message with structured fields
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Warn logs a warning message with structured fields
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message with structured fields
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogDispatch logs an order dispatch attempt and its outcome
func LogDispatch(endpoint, orderID string, dryRun bool, err error) {
	fields := []zap.Field{
		zap.String("endpoint", endpoint),
		zap.String("order_id", orderID),
		zap.Bool("dry_run", dryRun),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
		Error("Order dispatch failed", fields...)
		return
	}
	Info("Order dispatched", fields...)
}

// LogCancel logs an order cancellation attempt
func LogCancel(orderType, orderID string, ok bool, detail string) {
	Info("Order cancellation",
		zap.String("order_type", orderType),
		zap.String("order_id", orderID),
		zap.Bool("success", ok),
		zap.String("detail", detail),
	)
}

// LogLookup logs an inventory lookup against the warehouse database
func LogLookup(facility, field string, results int, err error) {
	fields := []zap.Field{
		zap.String("facility", facility),
		zap.String("field", field),
		zap.Int("results", results),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
		Warn("Inventory lookup failed", fields...)
		return
	}
	Debug("Inventory lookup", fields...)
}
