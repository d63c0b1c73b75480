package logger

// LogLevel represents logging levels as strings
type LogLevel string

const (
	// DebugLevel logs are voluminous and usually disabled in production
	DebugLevel LogLevel = "debug"

	// InfoLevel is the default logging priority
	InfoLevel LogLevel = "info"

	// WarnLevel logs are more important than Info, but don't need individual human review
	WarnLevel LogLevel = "warn"

	// ErrorLevel logs are high-priority
	ErrorLevel LogLevel = "error"
)

const (
	// DefaultMaxSizeMB is the maximum size of a log file in megabytes before rotation
	DefaultMaxSizeMB = 50

	// DefaultMaxBackups is the number of rotated log files kept on disk
	DefaultMaxBackups = 3

	// DefaultMaxAgeDays is the maximum age of a rotated log file in days
	DefaultMaxAgeDays = 28

	// DefaultLogLevel is used when no level is configured
	DefaultLogLevel = InfoLevel
)

// Logger defines the logging methods required by the application.
// Kept free of any concrete library types so implementations can be swapped.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})

	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})

	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger

	Sync() error
}
