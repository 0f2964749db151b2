package render

import "log"

// StdLogger adapts the standard library's *log.Logger to the render
// package's Logger interface.
type StdLogger struct {
	*log.Logger
}

// NewStdLogger wraps a standard library logger.
func NewStdLogger(logger *log.Logger) StdLogger {
	return StdLogger{Logger: logger}
}

// NoopLogger discards all log output; useful in tests.
type NoopLogger struct{}

func (NoopLogger) Printf(format string, args ...interface{}) {}
