package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var std = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	l.SetLevel(levelFor(false, DebugEnabled()))
	return l
}

// DebugEnabled returns true if debug mode is enabled via SP_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("SP_DEBUG") != ""
}

func levelFor(verbose, debug bool) logrus.Level {
	switch {
	case debug:
		return logrus.DebugLevel
	case verbose:
		return logrus.InfoLevel
	default:
		return logrus.WarnLevel
	}
}

// Configure sets the log level: warnings only by default, info when verbose,
// everything when debug is requested by flag or SP_DEBUG.
func Configure(verbose, debug bool) {
	std.SetLevel(levelFor(verbose, debug || DebugEnabled()))
}

// SetOutput redirects log output; tests use it to capture lines.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// WithField returns an entry carrying one structured field.
func WithField(key string, value interface{}) *logrus.Entry {
	return std.WithField(key, value)
}

// WithFields returns an entry carrying several structured fields.
func WithFields(fields logrus.Fields) *logrus.Entry {
	return std.WithFields(fields)
}

// Debugf logs a formatted message at debug level
func Debugf(format string, args ...interface{}) {
	std.Debugf(format, args...)
}

// Infof logs a formatted message at info level
func Infof(format string, args ...interface{}) {
	std.Infof(format, args...)
}

// Warnf logs a formatted message at warn level
func Warnf(format string, args ...interface{}) {
	std.Warnf(format, args...)
}
