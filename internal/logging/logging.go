package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level is configured or the configured one is invalid.
const DefaultLevel = logrus.WarnLevel

// New returns a logger writing plain text to w at the named level.
func New(level string, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	})
	log.SetLevel(ParseLevel(level))
	return log
}

// ParseLevel parses a logrus level name, falling back to DefaultLevel.
func ParseLevel(level string) logrus.Level {
	if level == "" {
		return DefaultLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return DefaultLevel
	}
	return parsed
}
