package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init (logrus defaults),
// but binaries call Init once from main.
var Log = logrus.New()

// Init configures Log from the environment.
//
// LOG_LEVEL selects the level (default "info"); LOG_FORMAT=json switches to the
// JSON formatter, anything else uses the text formatter with full timestamps.
func Init() {
	Log = newLogger(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"), os.Stdout)
}

func newLogger(levelName, format string, out io.Writer) *logrus.Logger {
	l := logrus.New()

	if levelName == "" {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	l.SetOutput(out)
	return l
}
