package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus so every layer shares one configured instance
type Logger struct {
	*logrus.Logger
}

// NewLogger creates a logger for the given level ("debug", "info", "warn", "error")
// and format ("json" or "text"). Unknown levels fall back to info.
func NewLogger(level, format string) *Logger {
	return newLogger(os.Stdout, level, format)
}

// NewWithWriter creates a logger writing to w, mostly useful in tests
func NewWithWriter(w io.Writer, level, format string) *Logger {
	return newLogger(w, level, format)
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return newLogger(io.Discard, "error", "text")
}

func newLogger(w io.Writer, level, format string) *Logger {
	l := logrus.New()
	l.SetOutput(w)

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.EqualFold(format, "text") {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}

	return &Logger{Logger: l}
}
