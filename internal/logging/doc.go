// Package logging provides structured logging for the order console.
//
// This package wraps zap with convenience functions for the logging patterns
// used throughout the console. Because the application owns the terminal
// while it runs, the logger never writes to stdout: output goes to the file
// named by OSRDESK_LOG_FILE, or stderr as a fallback, and is disabled
// entirely unless OSRDESK_LOG_LEVEL is set.
//
// # Log Levels
//
//   - Debug: lookup traffic, payload contents
//   - Info: dispatches, cancellations, config saves
//   - Warn: lookup failures, degraded collaborators
//   - Error: dispatch failures, store errors
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Order dispatched",
//	    zap.String("order_id", "src-pick-1"),
//	    zap.String("facility", "osr1"),
//	)
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.Initialize(""); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
