package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Init configures the global logger. Empty arguments fall back to LOG_LEVEL and
// LOG_FORMAT, then to info/text.
func Init(level, format string) {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	Log.SetOutput(os.Stderr)
}

// Discard silences the logger, for tests and benchmarks.
func Discard() {
	Log.SetOutput(io.Discard)
}
