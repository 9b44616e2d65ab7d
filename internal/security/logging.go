// Package security provides the structured security logger and the login
// rate limiter used by the HTTP layer.
package security

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Security event names attached to log entries.
const (
	EventLoginSuccess = "login_success"
	EventLoginFailure = "login_failure"
	EventRateLimited  = "rate_limited"
)

// Logger emits structured JSON log entries. It wraps logrus so every entry
// carries a timestamp, level and message field, with security events adding
// the acting user, source IP and user agent.
type Logger struct {
	log *logrus.Logger
}

// NewLogger creates a JSON logger at the given level. Unknown levels fall
// back to info.
func NewLogger(level string) *Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return &Logger{log: log}
}

// SetOutput redirects log output, used by tests to capture entries.
func (l *Logger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

// WithFields returns a logrus entry carrying the given fields.
func (l *Logger) WithFields(fields map[string]interface{}) *logrus.Entry {
	return l.log.WithFields(logrus.Fields(fields))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.log.Info(msg)
}

// Warn logs a warning.
func (l *Logger) Warn(msg string) {
	l.log.Warn(msg)
}

// Error logs an error with its cause.
func (l *Logger) Error(msg string, err error) {
	if err != nil {
		l.log.WithError(err).Error(msg)
		return
	}
	l.log.Error(msg)
}

// SecurityEvent logs an auditable security event: authentication results,
// authorization denials, rate limiting.
func (l *Logger) SecurityEvent(event, username, ip, userAgent string, details map[string]interface{}) {
	fields := logrus.Fields{
		"event":      event,
		"ip":         ip,
		"user_agent": userAgent,
	}
	if username != "" {
		fields["username"] = username
	}
	for k, v := range details {
		fields[k] = v
	}
	l.log.WithFields(fields).Warn("security event")
}
