package logger

// NoOpLogger is a logger implementation that performs no actions.
// Useful for tests or for disabling logging entirely.
type NoOpLogger struct{}

// Discard is a ready-to-use NoOpLogger instance
var Discard Logger = NoOpLogger{}

// NewNoOpLogger returns a logger instance that performs no operations
func NewNoOpLogger() Logger {
	return Discard
}

func (l NoOpLogger) Debug(msg string, fields map[string]interface{}) {}

func (l NoOpLogger) Info(msg string, fields map[string]interface{}) {}

func (l NoOpLogger) Warn(msg string, fields map[string]interface{}) {}

func (l NoOpLogger) Error(msg string, fields map[string]interface{}) {}

func (l NoOpLogger) Debugf(format string, args ...interface{}) {}

func (l NoOpLogger) Infof(format string, args ...interface{}) {}

func (l NoOpLogger) Warnf(format string, args ...interface{}) {}

func (l NoOpLogger) Errorf(format string, args ...interface{}) {}

// WithField returns the same NoOpLogger instance, allowing method chaining without effect
func (l NoOpLogger) WithField(key string, value interface{}) Logger {
	return l
}

// WithFields returns the same NoOpLogger instance, allowing method chaining without effect
func (l NoOpLogger) WithFields(fields map[string]interface{}) Logger {
	return l
}

// Sync performs no action and returns nil as there is nothing to sync
func (l NoOpLogger) Sync() error {
	return nil
}

var _ Logger = NoOpLogger{}
