// Package logging provides structured logging for orbytrixx.
//
// This package wraps a global zap logger with a few domain helpers. Logging
// is silent by default: the interactive UI owns the terminal, and CLI
// commands print their own human-readable output.
//
// # Enabling Logs
//
//	ORBYTRIXX_LOG_LEVEL=debug ORBYTRIXX_LOG_FILE=/tmp/orbytrixx.log orbytrixx
//
// Without ORBYTRIXX_LOG_FILE the output goes to stderr, which is fine for
// subcommands such as "orbytrixx apply" but garbles the full-screen UI.
//
// # Domain Helpers
//
//	logging.LogNavigation("home", "careers")
//	logging.LogSelector("choose", "+81")
//	logging.LogSubmission(attemptID, "careers", "failed", elapsed, err)
//
// Submission requests and responses are logged at debug level with the
// attempt id, so one application can be traced end to end.
package logging
