// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production). Log output always goes to stderr so that puzzle
// answers printed on stdout stay machine readable.
//
// # Run IDs
//
// Every CLI invocation gets a RunID (a UUID). WithRunID attaches it to the
// logger so that all lines written while solving belong to one run.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log, logger.NewRunID())
//	log.Info("Solving puzzle", zap.Int("day", 3))
package logger
