// Package logging provides the logging interface used by the library for
// advisory diagnostics. Namespace resolution never fails for a missing schema
// location or a suspicious alias mapping; those conditions are reported
// through a Logger instead.
package logging

import (
	"io"
	"log"
)

// Classification is the log entry classification.
type Classification string

const (
	Warn  Classification = "WARN"
	Debug Classification = "DEBUG"
)

// Logger is an interface for logging entries at certain classifications.
type Logger interface {
	// Logf is expected to support the standard fmt package "verbs".
	Logf(classification Classification, format string, v ...interface{})
}

// Noop is a Logger implementation that performs no logging. It is the default
// logger for registries and resolvers.
type Noop struct{}

// Logf discards the log entry.
func (Noop) Logf(Classification, string, ...interface{}) {}

// StandardLogger is a Logger implementation that delegates to the standard
// library logger's Printf method.
type StandardLogger struct {
	Logger *log.Logger
}

// Logf logs the given classification and message to the underlying logger.
func (s StandardLogger) Logf(classification Classification, format string, v ...interface{}) {
	if len(classification) != 0 {
		format = string(classification) + " " + format
	}

	s.Logger.Printf(format, v...)
}

// NewStandardLogger returns a StandardLogger writing to the given writer.
func NewStandardLogger(writer io.Writer) *StandardLogger {
	return &StandardLogger{
		Logger: log.New(writer, "stix ", log.LstdFlags),
	}
}
