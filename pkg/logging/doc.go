// Package logging configures structured logging on top of log/slog.
//
// Components that report recoverable failures accept a *slog.Logger; when
// the caller does not care about logging, Nop returns a logger that
// discards everything.
//
// Create a configured logger with:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.LevelDebug,
//	    Format: logging.FormatJSON,
//	})
//
// Text output is the default and suits interactive use; JSON suits log
// aggregation.
package logging
